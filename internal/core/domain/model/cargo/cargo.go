package cargo

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrCargoIsNotConstructed is returned when a Cargo instance was not created
// through the NewCargo or RestoreCargo factory methods.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Cargo is the aggregate root of the tracking model. It owns the route
// specification, the currently assigned itinerary (nil when unrouted) and
// the latest Delivery snapshot, and orchestrates re-derivation whenever the
// handling history, the itinerary or the specification changes.
//
// Cargo follows these invariants:
//   - Identity is the tracking id only; equality ignores all other fields
//   - The Delivery snapshot is always consistent with the specification,
//     itinerary and history that produced it - it is a cache, not a source
//     of truth, and every mutating operation replaces it atomically
//   - Can only be created through NewCargo or RestoreCargo
//
// Callers must serialize mutating calls on the same cargo; snapshots read
// via Delivery are immutable and safe to share.
type Cargo struct {
	trackingID         kernel.TrackingID
	routeSpecification RouteSpecification
	itinerary          *Itinerary
	delivery           Delivery

	// history is the fact set the current delivery was derived against.
	// It starts empty and is replaced by DeriveDeliveryProgress, so route
	// changes can re-derive without the caller re-supplying events.
	history handling.History

	isConstructed bool
}

// NewCargo books a new Cargo with the given identity and route specification.
// The cargo starts unrouted, with an empty handling history and a derived
// "not received" delivery.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}

	cargo := &Cargo{
		trackingID:         trackingID,
		routeSpecification: routeSpecification,
		history:            handling.EmptyHistory(),
		isConstructed:      true,
	}
	cargo.delivery = DeriveDelivery(cargo.routeSpecification, cargo.itinerary, cargo.history)

	return cargo, nil
}

// RestoreCargo reconstructs a Cargo aggregate from persistent storage.
// Unlike NewCargo, the persisted delivery snapshot is restored as-is; the
// caller is expected to replay the handling history through
// DeriveDeliveryProgress before mutating the route.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}
	if itinerary != nil {
		if err := itinerary.Validate(); err != nil {
			return nil, err
		}
	}

	return &Cargo{
		trackingID:         trackingID,
		routeSpecification: routeSpecification,
		itinerary:          itinerary,
		delivery:           delivery,
		history:            handling.EmptyHistory(),
		isConstructed:      true,
	}, nil
}

// Validate ensures the Cargo instance was properly constructed.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// TrackingID returns the cargo's identity.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns where the cargo must be routed from.
func (c *Cargo) Origin() kernel.Location {
	return c.routeSpecification.Origin()
}

// RouteSpecification returns the current acceptance criteria for the route.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the currently assigned route plan, or nil when unrouted.
func (c *Cargo) Itinerary() *Itinerary {
	return c.itinerary
}

// Delivery returns the latest derived snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// SpecifyNewRoute replaces the route specification, e.g. when the customer
// changes the destination, and re-derives the delivery snapshot against the
// existing itinerary and history.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, c.history)
	return nil
}

// AssignToRoute replaces the assigned itinerary and re-derives the delivery
// snapshot against the current specification and history.
func (c *Cargo) AssignToRoute(itinerary *Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}

	c.itinerary = itinerary
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, c.history)
	return nil
}

// DeriveDeliveryProgress replaces the cargo's handling history with the given
// fact set and recomputes the delivery snapshot. All events must concern this
// cargo. The call is idempotent: repeating it with unchanged inputs yields an
// equal snapshot.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) error {
	if event, handled := history.MostRecentlyCompletedEvent(); handled &&
		!event.TrackingID().IsEqual(c.trackingID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"history", fmt.Errorf("events concern cargo %s, expected %s",
				event.TrackingID(), c.trackingID))
	}

	c.history = history
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, c.history)
	return nil
}

// IsEqual compares two cargos by their tracking ids.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}
