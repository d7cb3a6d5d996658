package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned when attempting to use an improperly
// initialized Leg.
var ErrLegIsNotConstructed = errs.NewValueIsRequiredError(
	"leg must be created via NewLeg constructor")

// Leg is one planned hop of an itinerary: the cargo is loaded onto a voyage
// at one location and unloaded at another.
//
// Invariants:
//   - the voyage, both locations and both times are required
//   - the load and unload locations differ
type Leg struct {
	voyage         *voyage.Voyage
	loadLocation   kernel.Location
	unloadLocation kernel.Location
	loadTime       time.Time
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg creates a Leg for the given voyage, locations and time window.
func NewLeg(
	legVoyage *voyage.Voyage,
	loadLocation kernel.Location,
	unloadLocation kernel.Location,
	loadTime time.Time,
	unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyage(legVoyage),
		leg.setLoadLocation(loadLocation),
		leg.setUnloadLocation(unloadLocation),
		leg.setLoadTime(loadTime),
		leg.setUnloadTime(unloadTime),
	); err != nil {
		return Leg{}, err
	}

	if leg.loadLocation.IsEqual(leg.unloadLocation) {
		return Leg{}, errs.NewValueIsInvalidErrorWithCause(
			"unloadLocation",
			fmt.Errorf("leg loads and unloads at the same location %s", leg.loadLocation.UNLocode()))
	}

	return leg, nil
}

// Validate checks if the Leg was properly constructed.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Voyage returns the voyage the cargo travels on for this leg.
func (l Leg) Voyage() *voyage.Voyage {
	return l.voyage
}

// LoadLocation returns where the cargo is loaded.
func (l Leg) LoadLocation() kernel.Location {
	return l.loadLocation
}

// UnloadLocation returns where the cargo is unloaded.
func (l Leg) UnloadLocation() kernel.Location {
	return l.unloadLocation
}

// LoadTime returns the planned load time.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the planned unload time.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual compares two legs by value.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyage.IsEqual(other.voyage) &&
		l.loadLocation.IsEqual(other.loadLocation) &&
		l.unloadLocation.IsEqual(other.unloadLocation) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

// String implements fmt.Stringer, e.g. "V0100: SESTO -> DEHAM".
func (l Leg) String() string {
	return fmt.Sprintf("%s: %s -> %s",
		l.voyage.Number(), l.loadLocation.UNLocode(), l.unloadLocation.UNLocode())
}

func (l *Leg) setVoyage(legVoyage *voyage.Voyage) error {
	if err := legVoyage.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("voyage", err)
	}
	l.voyage = legVoyage
	return nil
}

func (l *Leg) setLoadLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadLocation", err)
	}
	l.loadLocation = location
	return nil
}

func (l *Leg) setUnloadLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unloadLocation", err)
	}
	l.unloadLocation = location
	return nil
}

func (l *Leg) setLoadTime(loadTime time.Time) error {
	if loadTime.IsZero() {
		return errs.NewValueIsRequiredError("loadTime")
	}
	l.loadTime = loadTime
	return nil
}

func (l *Leg) setUnloadTime(unloadTime time.Time) error {
	if unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("unloadTime")
	}
	l.unloadTime = unloadTime
	return nil
}
