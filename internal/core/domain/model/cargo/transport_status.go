package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus describes where a cargo physically is with respect to the
// transport network: not yet handed over, sitting in a port, on board a
// carrier, or claimed by the customer.
type TransportStatus int

const (
	// UnknownTransportStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized TransportStatus values.
	UnknownTransportStatus TransportStatus = iota

	// NotReceived means the cargo has not entered the transport network yet.
	NotReceived

	// InPort means the cargo is on the ground at a location.
	InPort

	// OnboardCarrier means the cargo is travelling on a voyage.
	OnboardCarrier

	// Claimed means the cargo has been picked up by the customer.
	Claimed
)

func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		UnknownTransportStatus: "Unknown",
		NotReceived:            "NotReceived",
		InPort:                 "InPort",
		OnboardCarrier:         "OnboardCarrier",
		Claimed:                "Claimed",
	}
}

func getValidTransportStatusStrings() map[TransportStatus]string {
	//nolint:exhaustive // UnknownTransportStatus is intentionally excluded as it's invalid
	return map[TransportStatus]string{
		NotReceived:    "NotReceived",
		InPort:         "InPort",
		OnboardCarrier: "OnboardCarrier",
		Claimed:        "Claimed",
	}
}

// TransportStatusFromString parses a TransportStatus from its string
// representation, e.g. when restoring a persisted delivery snapshot.
func TransportStatusFromString(s string) (TransportStatus, error) {
	for status, str := range getValidTransportStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownTransportStatus, errs.NewValueIsInvalidErrorWithCause(
		"transportStatus", fmt.Errorf("%q is not a valid transport status", s))
}

// Validate checks if the TransportStatus value is valid.
// Valid statuses are: NotReceived, InPort, OnboardCarrier, Claimed.
func (s TransportStatus) Validate() error {
	if _, ok := getValidTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transportStatus", fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the human-readable name of the transport status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
