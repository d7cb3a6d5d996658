package cargo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// Delivery is the derived snapshot of a cargo's transport and routing state.
//
// It is an immutable value, fully replaced on every derivation and never
// partially mutated. Equality ignores the calculation timestamp, so two
// derivations over identical inputs compare equal.
type Delivery struct {
	transportStatus       TransportStatus
	routingStatus         RoutingStatus
	lastKnownLocation     *kernel.Location
	currentVoyage         *voyage.Voyage
	misdirected           bool
	unloadedAtDestination bool
	eta                   *time.Time
	calculatedAt          time.Time
}

// DeriveDelivery computes a new Delivery snapshot from the route satisfier,
// the assigned itinerary (nil when the cargo is unrouted) and the
// deduplicated handling history.
//
// The derivation is a total function: every combination of empty history and
// absent itinerary has a defined output. It is pure up to the calculation
// timestamp, so re-deriving over unchanged inputs yields an equal Delivery.
func DeriveDelivery(
	routeSpecification RouteSatisfier,
	itinerary *Itinerary,
	history handling.History,
) Delivery {
	delivery := Delivery{
		transportStatus: NotReceived,
		routingStatus:   NotRouted,
		calculatedAt:    time.Now().UTC(),
	}

	distinctEvents := history.DistinctEventsByCompletionTime()
	lastEvent, handled := history.MostRecentlyCompletedEvent()

	if handled {
		location := lastEvent.Location()
		delivery.lastKnownLocation = &location

		switch lastEvent.Type() {
		case handling.Load:
			delivery.transportStatus = OnboardCarrier
			delivery.currentVoyage = lastEvent.Voyage()
		case handling.Claim:
			delivery.transportStatus = Claimed
		case handling.Receive, handling.Unload, handling.Customs:
			delivery.transportStatus = InPort
		case handling.UnknownType:
		}
	}

	if itinerary.Validate() == nil {
		if routeSpecification.IsSatisfiedBy(itinerary) {
			delivery.routingStatus = Routed
		} else {
			delivery.routingStatus = Misrouted
		}

		// One deviation anywhere in the recorded history marks the cargo
		// misdirected, even if later events return to plan.
		for index, event := range distinctEvents {
			if !itinerary.IsExpected(event, distinctEvents[:index]) {
				delivery.misdirected = true
				break
			}
		}

		delivery.unloadedAtDestination = handled &&
			lastEvent.Type() == handling.Unload &&
			itinerary.FinalArrivalLocation().IsEqual(lastEvent.Location())
	}

	if delivery.routingStatus == Routed {
		eta := itinerary.FinalArrivalTime()
		delivery.eta = &eta
	}

	return delivery
}

// RestoreDelivery reconstructs a Delivery snapshot from persistent storage
// without re-deriving it.
func RestoreDelivery(
	transportStatus TransportStatus,
	routingStatus RoutingStatus,
	lastKnownLocation *kernel.Location,
	currentVoyage *voyage.Voyage,
	misdirected bool,
	unloadedAtDestination bool,
	eta *time.Time,
	calculatedAt time.Time,
) (Delivery, error) {
	if err := transportStatus.Validate(); err != nil {
		return Delivery{}, err
	}
	if err := routingStatus.Validate(); err != nil {
		return Delivery{}, err
	}

	return Delivery{
		transportStatus:       transportStatus,
		routingStatus:         routingStatus,
		lastKnownLocation:     lastKnownLocation,
		currentVoyage:         currentVoyage,
		misdirected:           misdirected,
		unloadedAtDestination: unloadedAtDestination,
		eta:                   eta,
		calculatedAt:          calculatedAt,
	}, nil
}

// TransportStatus returns where the cargo is with respect to the network.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus returns how the itinerary relates to the specification.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// LastKnownLocation returns where the cargo was last handled, or nil when no
// handling has been recorded.
func (d Delivery) LastKnownLocation() *kernel.Location {
	return d.lastKnownLocation
}

// CurrentVoyage returns the voyage the cargo is currently on board, or nil
// when it is not on a carrier.
func (d Delivery) CurrentVoyage() *voyage.Voyage {
	return d.currentVoyage
}

// IsMisdirected reports whether the recorded handling history has deviated
// from the assigned itinerary.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// IsUnloadedAtDestination reports whether the cargo's last handling was an
// unload at the itinerary's final arrival location.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.unloadedAtDestination
}

// ETA returns the estimated time of arrival, or nil when the cargo is not
// correctly routed.
func (d Delivery) ETA() *time.Time {
	return d.eta
}

// CalculatedAt returns the wall-clock time of the derivation. It exists for
// observability only and takes no part in equality.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// IsEqual compares two snapshots field by field, ignoring calculatedAt.
func (d Delivery) IsEqual(other Delivery) bool {
	return d.transportStatus == other.transportStatus &&
		d.routingStatus == other.routingStatus &&
		locationPtrEqual(d.lastKnownLocation, other.lastKnownLocation) &&
		voyagePtrEqual(d.currentVoyage, other.currentVoyage) &&
		d.misdirected == other.misdirected &&
		d.unloadedAtDestination == other.unloadedAtDestination &&
		timePtrEqual(d.eta, other.eta)
}

func locationPtrEqual(a, b *kernel.Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func voyagePtrEqual(a, b *voyage.Voyage) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(b)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
