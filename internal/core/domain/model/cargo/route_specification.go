package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when attempting to use an
// improperly initialized RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errs.NewValueIsRequiredError(
	"route specification must be created via NewRouteSpecification constructor")

// RouteSatisfier decides whether an itinerary is an acceptable route.
// RouteSpecification is the production implementation; tests may inject
// alternative strategies into the delivery derivation.
type RouteSatisfier interface {
	IsSatisfiedBy(itinerary *Itinerary) bool
}

// RouteSpecification is the acceptance predicate a cargo's itinerary must
// satisfy: start at the origin, end at the destination, arrive strictly
// before the deadline.
//
// Invariant: origin and destination differ.
type RouteSpecification struct {
	origin          kernel.Location
	destination     kernel.Location
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

var _ RouteSatisfier = RouteSpecification{}

// NewRouteSpecification creates a RouteSpecification.
func NewRouteSpecification(
	origin kernel.Location,
	destination kernel.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	spec := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(destination),
		spec.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	if spec.origin.IsEqual(spec.destination) {
		return RouteSpecification{}, errs.NewValueIsInvalidErrorWithCause(
			"destination",
			fmt.Errorf("origin and destination are both %s", spec.origin.UNLocode()))
	}

	return spec, nil
}

// Validate checks if the RouteSpecification was properly constructed.
func (s RouteSpecification) Validate() error {
	return s.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns where the route must start.
func (s RouteSpecification) Origin() kernel.Location {
	return s.origin
}

// Destination returns where the route must end.
func (s RouteSpecification) Destination() kernel.Location {
	return s.destination
}

// ArrivalDeadline returns when the cargo must have arrived.
func (s RouteSpecification) ArrivalDeadline() time.Time {
	return s.arrivalDeadline
}

// IsSatisfiedBy reports whether the itinerary starts at the origin, ends at
// the destination and arrives strictly before the deadline. A nil itinerary
// never satisfies a specification.
func (s RouteSpecification) IsSatisfiedBy(itinerary *Itinerary) bool {
	if itinerary.Validate() != nil {
		return false
	}

	return itinerary.InitialDepartureLocation().IsEqual(s.origin) &&
		itinerary.FinalArrivalLocation().IsEqual(s.destination) &&
		itinerary.FinalArrivalTime().Before(s.arrivalDeadline)
}

// IsEqual compares two specifications by origin, destination and deadline.
func (s RouteSpecification) IsEqual(other RouteSpecification) bool {
	return s.origin.IsEqual(other.origin) &&
		s.destination.IsEqual(other.destination) &&
		s.arrivalDeadline.Equal(other.arrivalDeadline)
}

func (s *RouteSpecification) setOrigin(origin kernel.Location) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	s.origin = origin
	return nil
}

func (s *RouteSpecification) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	s.destination = destination
	return nil
}

func (s *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	s.arrivalDeadline = arrivalDeadline
	return nil
}
