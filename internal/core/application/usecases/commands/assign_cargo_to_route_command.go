package commands

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrAssignCargoToRouteCommandIsNotConstructed = errors.New(
		"AssignCargoToRouteCommand must be created via NewAssignCargoToRouteCommand constructor",
	)
	ErrRouteLegIsNotConstructed = errors.New(
		"RouteLeg must be created via NewRouteLeg constructor",
	)
	ErrRouteLegsAreRequired = errors.New("at least one route leg is required")
	ErrLegTimeIsRequired    = errors.New("leg load and unload times are required")
)

// RouteLeg is one hop of a requested route assignment, expressed in wire
// terms: a voyage number, two UN/LOCODEs and a time window. The handler
// resolves it against the voyage and location repositories into a domain Leg.
type RouteLeg struct { //nolint:recvcheck //using for validation
	voyageNumber   string
	loadLocation   kernel.UNLocode
	unloadLocation kernel.UNLocode
	loadTime       time.Time
	unloadTime     time.Time

	guard guard.ConstructorGuard
}

// NewRouteLeg creates a RouteLeg from wire values.
func NewRouteLeg(
	voyageNumber string,
	loadLocation string,
	unloadLocation string,
	loadTime time.Time,
	unloadTime time.Time,
) (RouteLeg, error) {
	leg := RouteLeg{
		guard: guard.NewConstructorGuard(),
	}

	if voyageNumber == "" {
		return RouteLeg{}, fmt.Errorf("voyage number is required")
	}
	if loadTime.IsZero() || unloadTime.IsZero() {
		return RouteLeg{}, ErrLegTimeIsRequired
	}

	load, err := kernel.NewUNLocode(loadLocation)
	if err != nil {
		return RouteLeg{}, err
	}
	unload, err := kernel.NewUNLocode(unloadLocation)
	if err != nil {
		return RouteLeg{}, err
	}

	leg.voyageNumber = voyageNumber
	leg.loadLocation = load
	leg.unloadLocation = unload
	leg.loadTime = loadTime
	leg.unloadTime = unloadTime

	return leg, nil
}

// Validate ensures the leg was created through the constructor.
func (l RouteLeg) Validate() error {
	return l.guard.Validate(ErrRouteLegIsNotConstructed)
}

// VoyageNumber returns the identifying number of the leg's voyage.
func (l RouteLeg) VoyageNumber() string {
	return l.voyageNumber
}

// LoadLocation returns the UN/LOCODE where the cargo is loaded.
func (l RouteLeg) LoadLocation() kernel.UNLocode {
	return l.loadLocation
}

// UnloadLocation returns the UN/LOCODE where the cargo is unloaded.
func (l RouteLeg) UnloadLocation() kernel.UNLocode {
	return l.unloadLocation
}

// LoadTime returns the planned load time.
func (l RouteLeg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the planned unload time.
func (l RouteLeg) UnloadTime() time.Time {
	return l.unloadTime
}

// AssignCargoToRouteCommand represents a request to assign a booked cargo to
// a chosen route, typically one of the candidates offered by the routing
// service.
type AssignCargoToRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	legs       []RouteLeg

	guard guard.ConstructorGuard
}

// NewAssignCargoToRouteCommand creates a command to assign a cargo to a route.
// The leg list must be non-empty and every leg properly constructed; the
// contiguity of the resulting itinerary is validated by the domain model in
// the handler.
func NewAssignCargoToRouteCommand(
	trackingID kernel.TrackingID,
	legs []RouteLeg,
) (AssignCargoToRouteCommand, error) {
	assignCommand := AssignCargoToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingID.Validate(); err != nil {
		return AssignCargoToRouteCommand{}, err
	}
	if len(legs) == 0 {
		return AssignCargoToRouteCommand{}, ErrRouteLegsAreRequired
	}
	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return AssignCargoToRouteCommand{}, fmt.Errorf("legs[%d]: %w", i, err)
		}
	}

	assignCommand.trackingID = trackingID
	assignCommand.legs = append([]RouteLeg(nil), legs...)

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCargoToRouteCommandIsNotConstructed if validation fails.
func (c AssignCargoToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoToRouteCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo being routed.
func (c AssignCargoToRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Legs returns the requested route legs.
func (c AssignCargoToRouteCommand) Legs() []RouteLeg {
	return append([]RouteLeg(nil), c.legs...)
}
