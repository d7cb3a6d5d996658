package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository defines the persistence contract for voyages and their
// schedules.
type VoyageRepository interface {
	// Add persists a new voyage with its schedule.
	Add(ctx context.Context, aggregate *voyage.Voyage) error

	// Get retrieves a voyage by its identifying number.
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)

	// GetAll retrieves all known voyages, used for route-candidate
	// generation and sample data checks.
	GetAll(ctx context.Context) ([]*voyage.Voyage, error)
}
