// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event repository
	// within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// VoyageRepoFactory provides access to the voyage repository within a transaction.
	VoyageRepoFactory interface {
		VoyageRepository() ports.VoyageRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// BookingUoW manages transactions for cargo booking.
	// Booking resolves locations and creates the cargo aggregate.
	BookingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CargoHistoryUoW manages transactions for operations touching only a
	// cargo and its handling history, such as the periodic inspection.
	CargoHistoryUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// CargoHistoryUoWFactory creates new cargo/history unit of work instances.
	CargoHistoryUoWFactory interface {
		Create() CargoHistoryUoW
	}

	// UoW manages transactions across all repositories.
	// Used for commands that resolve voyages and locations while mutating a
	// cargo and its handling history.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cargoRepo := uow.CargoRepository()
	//   eventRepo := uow.HandlingEventRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
		VoyageRepoFactory
		LocationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
