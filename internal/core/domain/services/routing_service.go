package services

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
)

// ErrRouteFinderIsRequired is returned when a RoutingService is created
// without a route finder.
var ErrRouteFinderIsRequired = errors.New("route finder is required")

// RoutingService is a domain service that turns a route specification into
// acceptable itineraries.
//
// The candidate search itself is delegated to a RouteFinder (an external
// producer whose algorithm is an infrastructure concern); the service's
// responsibility is the business rule: only candidates that satisfy the
// specification are offered for assignment. An empty result is a valid
// outcome, not an error.
type RoutingService struct {
	routeFinder ports.RouteFinder
}

// NewRoutingService creates a RoutingService backed by the given finder.
func NewRoutingService(routeFinder ports.RouteFinder) (RoutingService, error) {
	if routeFinder == nil {
		return RoutingService{}, ErrRouteFinderIsRequired
	}

	return RoutingService{routeFinder: routeFinder}, nil
}

// FetchRoutesForSpecification returns the candidate itineraries that satisfy
// the route specification, preserving the finder's order.
func (s RoutingService) FetchRoutesForSpecification(
	ctx context.Context,
	spec cargo.RouteSpecification,
) ([]*cargo.Itinerary, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.routeFinder.FindRoutes(ctx, spec)
	if err != nil {
		return nil, err
	}

	routes := make([]*cargo.Itinerary, 0, len(candidates))
	for _, candidate := range candidates {
		if spec.IsSatisfiedBy(candidate) {
			routes = append(routes, candidate)
		}
	}

	return routes, nil
}
