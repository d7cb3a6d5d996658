package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RouteFinder produces candidate itineraries for a route specification.
//
// Candidates are not guaranteed to satisfy the specification; the routing
// service filters them. The search algorithm behind this port is an
// infrastructure concern.
type RouteFinder interface {
	FindRoutes(ctx context.Context, spec cargo.RouteSpecification) ([]*cargo.Itinerary, error)
}
