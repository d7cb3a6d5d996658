package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate to storage.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate, including its
	// route specification, itinerary and delivery snapshot.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its tracking id.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// GetAllUnclaimed retrieves every cargo whose transport has not ended
	// with a claim. Used by the inspection job to re-derive delivery
	// snapshots against late-registered handling events.
	GetAllUnclaimed(ctx context.Context) ([]*cargo.Cargo, error)
}
