package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
)

// LocationRepository defines the persistence contract for the location
// reference data.
type LocationRepository interface {
	// Add persists a new location.
	Add(ctx context.Context, location kernel.Location) error

	// Get retrieves a location by its UN/LOCODE.
	Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error)

	// GetAll retrieves all known locations.
	GetAll(ctx context.Context) ([]kernel.Location, error)
}
