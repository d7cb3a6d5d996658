package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// unLocodePattern matches the United Nations location code format:
// two letters for the country followed by three letters or digits 2-9
// for the place (e.g. "SESTO" for Stockholm, "CNSHA" for Shanghai).
var unLocodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// UNLocode is a United Nations location code uniquely identifying a port,
// terminal or station in the transport network.
type UNLocode string

// NewUNLocode creates a UNLocode from its string representation.
// The input is upper-cased before validation, so "sesto" and "SESTO"
// produce the same code. Returns an error if the string does not match
// the UN/LOCODE format.
func NewUNLocode(code string) (UNLocode, error) {
	if code == "" {
		return "", errs.NewValueIsRequiredError("unLocode")
	}

	normalized := strings.ToUpper(code)
	if !unLocodePattern.MatchString(normalized) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"unLocode", fmt.Errorf("%q is not a valid UN location code", code))
	}

	return UNLocode(normalized), nil
}

// String returns the code as a plain string.
func (c UNLocode) String() string {
	return string(c)
}

// Validate checks that the code matches the UN/LOCODE format.
// The zero value fails validation; use NewUNLocode.
func (c UNLocode) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("unLocode")
	}
	if !unLocodePattern.MatchString(string(c)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"unLocode", fmt.Errorf("%q is not a valid UN location code", string(c)))
	}
	return nil
}

// Location is a physical place in the transport network, such as a port or a
// customs station, identified by its UN location code.
//
// Location is an immutable value object. Two locations are considered the same
// when their UN location codes are equal; the human-readable name carries no
// identity. The zero value is invalid - use NewLocation to create instances.
//
// Absence of a location (for example the last known location of a cargo that
// has not been handled yet) is modeled as a nil *Location, never as a
// placeholder value.
type Location struct { //nolint:recvcheck //using for validation
	unLocode UNLocode
	name     string
	guard    guard.ConstructorGuard
}

// NewLocation creates a Location with the given UN location code and name.
// Returns an error if the code is invalid or the name is empty.
func NewLocation(code UNLocode, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setUNLocode(code), loc.setName(name)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// UNLocode returns the UN location code identifying this location.
func (l Location) UNLocode() UNLocode {
	return l.unLocode
}

// Name returns the human-readable name of the location.
func (l Location) Name() string {
	return l.name
}

// String implements fmt.Stringer, e.g. "Stockholm (SESTO)".
func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.name, l.unLocode)
}

// IsEqual compares two locations by identity. Locations with the same
// UN location code are the same place regardless of their names.
func (l Location) IsEqual(other Location) bool {
	return l.unLocode == other.unLocode
}

// setUNLocode sets the code with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setUNLocode(code UNLocode) error {
	validated, err := NewUNLocode(string(code))
	if err != nil {
		return err
	}

	l.unLocode = validated
	return nil
}

func (l *Location) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	l.name = name
	return nil
}
