package handling

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// EventType classifies what happened to a cargo at a location.
//
// Load and Unload events take place on board a carrier and therefore require
// a voyage; Receive, Claim and Customs happen on the ground and prohibit one.
type EventType int

const (
	// UnknownType represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized EventType values.
	UnknownType EventType = iota

	// Receive marks the cargo entering the transport network at its origin.
	Receive

	// Load marks the cargo being loaded onto a carrier on a voyage.
	Load

	// Unload marks the cargo being unloaded from a carrier on a voyage.
	Unload

	// Claim marks the cargo being claimed by the customer at the destination.
	Claim

	// Customs marks the cargo passing a customs inspection.
	Customs
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		UnknownType: "Unknown",
		Receive:     "Receive",
		Load:        "Load",
		Unload:      "Unload",
		Claim:       "Claim",
		Customs:     "Customs",
	}
}

func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[EventType]string{
		Receive: "Receive",
		Load:    "Load",
		Unload:  "Unload",
		Claim:   "Claim",
		Customs: "Customs",
	}
}

// EventTypeFromString parses an EventType from its string representation,
// e.g. when binding API requests.
func EventTypeFromString(s string) (EventType, error) {
	for eventType, str := range getValidEventTypeStrings() {
		if str == s {
			return eventType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"eventType", fmt.Errorf("%q is not a valid handling event type", s))
}

// Validate checks if the EventType value is valid.
// Valid types are: Receive, Load, Unload, Claim, Customs.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType", fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// String returns the human-readable name of the event type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// RequiresVoyage reports whether events of this type must reference a voyage.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not reference a voyage.
func (t EventType) ProhibitsVoyage() bool {
	return !t.RequiresVoyage()
}
