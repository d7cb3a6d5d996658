package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for the
// append-only handling event log.
type HandlingEventRepository interface {
	// Add persists a new handling event. Events are immutable facts; there
	// is no update or delete.
	Add(ctx context.Context, event handling.HandlingEvent) error

	// GetHistory retrieves the full handling history of one cargo, in the
	// order the events were registered. An empty history is not an error.
	GetHistory(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
