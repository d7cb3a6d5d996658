package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not created
// through NewTrackingID or NextTrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID or NextTrackingID")

// TrackingID uniquely identifies a cargo. It is an opaque value: the only
// operations the domain performs on it are equality comparison and rendering.
//
// The zero value is invalid and fails Validate; use the constructors.
type TrackingID struct {
	id string
}

// NewTrackingID creates a TrackingID from its string representation.
// The value is upper-cased; leading and trailing whitespace is rejected
// by the non-empty check after trimming.
func NewTrackingID(id string) (TrackingID, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackingID{id: strings.ToUpper(trimmed)}, nil
}

// NextTrackingID generates a new unique TrackingID.
// The value is derived from a random UUID, shortened to a form that is
// practical to read over the phone and print on documents.
func NextTrackingID() TrackingID {
	raw := strings.ToUpper(uuid.New().String())
	return TrackingID{id: raw[:strings.Index(raw, "-")]}
}

// String returns the tracking id as a plain string.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual compares two tracking ids by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

// Validate checks that the TrackingID was properly constructed.
func (t TrackingID) Validate() error {
	if t.id == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
