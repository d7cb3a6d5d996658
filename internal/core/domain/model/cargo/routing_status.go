package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// RoutingStatus describes how a cargo's assigned itinerary relates to its
// route specification: no itinerary yet, an itinerary that satisfies the
// specification, or one that no longer does (e.g. after the destination or
// deadline changed).
type RoutingStatus int

const (
	// UnknownRoutingStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized RoutingStatus values.
	UnknownRoutingStatus RoutingStatus = iota

	// NotRouted means no itinerary has been assigned to the cargo.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification.
	Routed

	// Misrouted means the assigned itinerary does not satisfy the route
	// specification.
	Misrouted
)

func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		UnknownRoutingStatus: "Unknown",
		NotRouted:            "NotRouted",
		Routed:               "Routed",
		Misrouted:            "Misrouted",
	}
}

func getValidRoutingStatusStrings() map[RoutingStatus]string {
	//nolint:exhaustive // UnknownRoutingStatus is intentionally excluded as it's invalid
	return map[RoutingStatus]string{
		NotRouted: "NotRouted",
		Routed:    "Routed",
		Misrouted: "Misrouted",
	}
}

// RoutingStatusFromString parses a RoutingStatus from its string
// representation, e.g. when restoring a persisted delivery snapshot.
func RoutingStatusFromString(s string) (RoutingStatus, error) {
	for status, str := range getValidRoutingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownRoutingStatus, errs.NewValueIsInvalidErrorWithCause(
		"routingStatus", fmt.Errorf("%q is not a valid routing status", s))
}

// Validate checks if the RoutingStatus value is valid.
// Valid statuses are: NotRouted, Routed, Misrouted.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"routingStatus", fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the human-readable name of the routing status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
