package voyage

import (
	"errors"
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// ErrVoyageIsNotConstructed is returned when a Voyage instance was not created
// through the NewVoyage factory method.
var ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage constructor")

// Schedule is the ordered chain of carrier movements a voyage follows.
//
// Invariant: the movements are contiguous - every movement departs from the
// location where the previous one arrived.
type Schedule struct {
	movements []CarrierMovement
}

// NewSchedule creates a Schedule from an ordered list of carrier movements.
// The list must be non-empty and form a contiguous chain.
func NewSchedule(movements []CarrierMovement) (Schedule, error) {
	if len(movements) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("movements")
	}

	for i, movement := range movements {
		if err := movement.Validate(); err != nil {
			return Schedule{}, errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("movements[%d]", i), err)
		}
	}

	for i := 0; i < len(movements)-1; i++ {
		if !movements[i].ArrivalLocation().IsEqual(movements[i+1].DepartureLocation()) {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
				"movements",
				fmt.Errorf("movement %d arrives at %s but movement %d departs from %s",
					i, movements[i].ArrivalLocation(), i+1, movements[i+1].DepartureLocation()),
			)
		}
	}

	return Schedule{movements: append([]CarrierMovement(nil), movements...)}, nil
}

// Movements returns a copy of the ordered carrier movements.
func (s Schedule) Movements() []CarrierMovement {
	return append([]CarrierMovement(nil), s.movements...)
}

// Voyage is a uniquely identifiable series of carrier movements.
//
// Voyage is an entity: two voyages with the same number are the same voyage
// even if their schedules differ (a schedule may be revised).
type Voyage struct {
	number   Number
	schedule Schedule

	isConstructed bool
}

// NewVoyage creates a Voyage with the given number and schedule.
func NewVoyage(number Number, schedule Schedule) (*Voyage, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if len(schedule.movements) == 0 {
		return nil, errs.NewValueIsRequiredError("schedule")
	}

	return &Voyage{
		number:        number,
		schedule:      schedule,
		isConstructed: true,
	}, nil
}

// Validate ensures the Voyage instance was properly constructed through NewVoyage.
func (v *Voyage) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVoyageIsNotConstructed
	}
	return nil
}

// Number returns the voyage's identifying number.
func (v *Voyage) Number() Number {
	return v.number
}

// Schedule returns the voyage's schedule.
func (v *Voyage) Schedule() Schedule {
	return v.schedule
}

// IsEqual compares two voyages by their identifying numbers.
func (v *Voyage) IsEqual(other *Voyage) bool {
	return other != nil && v.number.IsEqual(other.number)
}

// String implements fmt.Stringer.
func (v *Voyage) String() string {
	return fmt.Sprintf("Voyage %s", v.number)
}
