// Package routefinder generates candidate itineraries for a route
// specification. The path search is a randomized stand-in for a real
// optimization engine: it strings together one to three intermediate stops
// between origin and destination with day-spaced load/unload windows, drawing
// voyages from the known schedules.
package routefinder

import (
	"context"
	"math/rand/v2"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// ErrLocationRepositoryIsRequired is returned when constructing the finder
// without a location repository.
var ErrLocationRepositoryIsRequired = errs.NewValueIsRequiredError("locationRepository")

// ErrVoyageRepositoryIsRequired is returned when constructing the finder
// without a voyage repository.
var ErrVoyageRepositoryIsRequired = errs.NewValueIsRequiredError("voyageRepository")

// RandomRouteFinder implements ports.RouteFinder with randomized graph
// traversal over the known locations and voyages.
type RandomRouteFinder struct {
	locations ports.LocationRepository
	voyages   ports.VoyageRepository
	now       func() time.Time
}

var _ ports.RouteFinder = &RandomRouteFinder{}

// NewRandomRouteFinder creates a route finder drawing stops from the location
// reference data and voyages from the stored schedules.
func NewRandomRouteFinder(
	locations ports.LocationRepository,
	voyages ports.VoyageRepository,
) (*RandomRouteFinder, error) {
	if locations == nil {
		return nil, ErrLocationRepositoryIsRequired
	}
	if voyages == nil {
		return nil, ErrVoyageRepositoryIsRequired
	}

	return &RandomRouteFinder{
		locations: locations,
		voyages:   voyages,
		now:       time.Now,
	}, nil
}

// FindRoutes generates candidate itineraries from origin to destination.
// Candidates are unfiltered: some may arrive past the deadline, and the
// caller is expected to check them against the route specification. With no
// known voyages there is nothing to travel on and no candidates are produced.
func (f *RandomRouteFinder) FindRoutes(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]*cargo.Itinerary, error) {
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}

	voyages, err := f.voyages.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(voyages) == 0 {
		return []*cargo.Itinerary{}, nil
	}

	stops, err := f.intermediateStops(ctx, routeSpecification)
	if err != nil {
		return nil, err
	}

	candidateCount := 3 + rand.IntN(3)
	candidates := make([]*cargo.Itinerary, 0, candidateCount)
	departure := nextDate(f.now().UTC())

	for range candidateCount {
		itinerary, candidateErr := f.buildCandidate(routeSpecification, stops, voyages, &departure)
		if candidateErr != nil {
			return nil, candidateErr
		}
		candidates = append(candidates, itinerary)
	}

	return candidates, nil
}

// intermediateStops lists every known location except the origin and the
// destination of the specification.
func (f *RandomRouteFinder) intermediateStops(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]kernel.Location, error) {
	all, err := f.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stops := make([]kernel.Location, 0, len(all))
	for _, location := range all {
		if location.IsEqual(routeSpecification.Origin()) ||
			location.IsEqual(routeSpecification.Destination()) {
			continue
		}
		stops = append(stops, location)
	}

	return stops, nil
}

// buildCandidate strings one randomized path from origin to destination.
// The departure cursor advances across candidates so their windows spread out.
func (f *RandomRouteFinder) buildCandidate(
	routeSpecification cargo.RouteSpecification,
	stops []kernel.Location,
	voyages []*voyage.Voyage,
	departure *time.Time,
) (*cargo.Itinerary, error) {
	path := make([]kernel.Location, 0, 5)
	path = append(path, routeSpecification.Origin())
	path = append(path, randomChunk(stops)...)
	path = append(path, routeSpecification.Destination())

	legs := make([]cargo.Leg, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		loadTime := nextDate(*departure)
		unloadTime := nextDate(loadTime)
		*departure = nextDate(unloadTime)

		leg, err := cargo.NewLeg(
			voyages[rand.IntN(len(voyages))],
			path[i],
			path[i+1],
			loadTime,
			unloadTime,
		)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

// randomChunk picks up to three intermediate stops in random order.
func randomChunk(stops []kernel.Location) []kernel.Location {
	if len(stops) == 0 {
		return nil
	}

	shuffled := make([]kernel.Location, len(stops))
	copy(shuffled, stops)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	chunk := 1 + rand.IntN(3)
	if chunk > len(shuffled) {
		chunk = len(shuffled)
	}

	return shuffled[:chunk]
}

// nextDate advances roughly one day with up to half a day of jitter.
func nextDate(date time.Time) time.Time {
	return date.Add(24*time.Hour + time.Duration(rand.IntN(1000)-500)*time.Minute)
}
