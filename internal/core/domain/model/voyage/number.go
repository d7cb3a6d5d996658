package voyage

import (
	"strings"

	"cargotracker/internal/pkg/errs"
)

// ErrNumberIsNotConstructed indicates that a Number was not created via NewNumber.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"voyage number must be created via NewNumber constructor")

// Number uniquely identifies a voyage, e.g. "V0100".
// The zero value is invalid; use NewNumber.
type Number struct {
	number string
}

// NewNumber creates a voyage Number from its string representation.
func NewNumber(number string) (Number, error) {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return Number{}, errs.NewValueIsRequiredError("voyageNumber")
	}

	return Number{number: strings.ToUpper(trimmed)}, nil
}

// String returns the voyage number as a plain string.
func (n Number) String() string {
	return n.number
}

// IsEqual compares two voyage numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.number == other.number
}

// Validate checks that the Number was properly constructed.
func (n Number) Validate() error {
	if n.number == "" {
		return ErrNumberIsNotConstructed
	}
	return nil
}
