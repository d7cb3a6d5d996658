package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrItineraryIsNotConstructed is returned when attempting to use an
// improperly initialized Itinerary.
var ErrItineraryIsNotConstructed = errs.NewValueIsRequiredError(
	"itinerary must be created via NewItinerary constructor")

// Itinerary is an ordered, contiguous plan of voyage legs describing how a
// cargo is routed from its origin to its destination.
//
// An Itinerary is always non-empty; "no route assigned" is represented by a
// nil *Itinerary on the Cargo aggregate, never by an empty itinerary.
type Itinerary struct {
	legs []Leg

	isConstructed bool
}

// NewItinerary creates an Itinerary from an ordered list of legs.
// The list must be non-empty and contiguous: every leg loads at the location
// where the previous leg unloaded.
func NewItinerary(legs []Leg) (*Itinerary, error) {
	if len(legs) == 0 {
		return nil, errs.NewValueIsRequiredError("legs")
	}

	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("legs[%d]", i), err)
		}
	}

	for i := 0; i < len(legs)-1; i++ {
		if !legs[i].UnloadLocation().IsEqual(legs[i+1].LoadLocation()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"legs",
				fmt.Errorf("leg %d unloads at %s but leg %d loads at %s",
					i, legs[i].UnloadLocation().UNLocode(), i+1, legs[i+1].LoadLocation().UNLocode()),
			)
		}
	}

	return &Itinerary{
		legs:          append([]Leg(nil), legs...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Itinerary instance was properly constructed through
// NewItinerary.
func (i *Itinerary) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItineraryIsNotConstructed
	}
	return nil
}

// Legs returns a copy of the ordered legs.
func (i *Itinerary) Legs() []Leg {
	return append([]Leg(nil), i.legs...)
}

// InitialDepartureLocation returns the load location of the first leg.
func (i *Itinerary) InitialDepartureLocation() kernel.Location {
	return i.legs[0].LoadLocation()
}

// FinalArrivalLocation returns the unload location of the last leg.
func (i *Itinerary) FinalArrivalLocation() kernel.Location {
	return i.legs[len(i.legs)-1].UnloadLocation()
}

// FinalArrivalTime returns the planned unload time of the last leg.
func (i *Itinerary) FinalArrivalTime() time.Time {
	return i.legs[len(i.legs)-1].UnloadTime()
}

// IsExpected reports whether a handling event is consistent with the plan,
// given the distinct ordered events recorded before it.
//
// An event is expected when its (type, location, voyage) triple corresponds
// to one of:
//   - Receive at the first leg's load location
//   - Load at some leg's load location on that leg's voyage
//   - Unload at some leg's unload location on that leg's voyage
//   - Claim at the final arrival location
//   - Customs at a location already traversed by a completed leg, where a
//     leg counts as completed once its unload has been recorded
func (i *Itinerary) IsExpected(event handling.HandlingEvent, recordedBefore []handling.HandlingEvent) bool {
	switch event.Type() {
	case handling.Receive:
		return i.InitialDepartureLocation().IsEqual(event.Location())

	case handling.Load:
		for _, leg := range i.legs {
			if leg.LoadLocation().IsEqual(event.Location()) && leg.Voyage().IsEqual(event.Voyage()) {
				return true
			}
		}
		return false

	case handling.Unload:
		for _, leg := range i.legs {
			if leg.UnloadLocation().IsEqual(event.Location()) && leg.Voyage().IsEqual(event.Voyage()) {
				return true
			}
		}
		return false

	case handling.Claim:
		return i.FinalArrivalLocation().IsEqual(event.Location())

	case handling.Customs:
		for _, leg := range i.legs {
			if !legCompleted(leg, recordedBefore) {
				continue
			}
			if leg.LoadLocation().IsEqual(event.Location()) || leg.UnloadLocation().IsEqual(event.Location()) {
				return true
			}
		}
		return false

	case handling.UnknownType:
		return false
	}

	return false
}

// legCompleted reports whether the leg's unload has been recorded.
func legCompleted(leg Leg, recorded []handling.HandlingEvent) bool {
	for _, event := range recorded {
		if event.Type() == handling.Unload &&
			leg.UnloadLocation().IsEqual(event.Location()) &&
			leg.Voyage().IsEqual(event.Voyage()) {
			return true
		}
	}
	return false
}

// IsEqual compares two itineraries leg by leg.
func (i *Itinerary) IsEqual(other *Itinerary) bool {
	if other == nil || len(i.legs) != len(other.legs) {
		return false
	}
	for idx, leg := range i.legs {
		if !leg.IsEqual(other.legs[idx]) {
			return false
		}
	}
	return true
}
