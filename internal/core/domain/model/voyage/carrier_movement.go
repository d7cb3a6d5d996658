package voyage

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCarrierMovementIsNotConstructed is returned when attempting to use an
// improperly initialized CarrierMovement.
var ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
	"carrier movement must be created via NewCarrierMovement constructor")

// CarrierMovement is a vessel voyage from one location to another: one hop
// of a voyage's schedule. It is an immutable value object.
type CarrierMovement struct { //nolint:recvcheck //using for validation
	departureLocation kernel.Location
	arrivalLocation   kernel.Location
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a CarrierMovement. All arguments are required;
// missing locations or zero times fail with a validation error.
func NewCarrierMovement(
	departureLocation kernel.Location,
	arrivalLocation kernel.Location,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	movement := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		movement.setDepartureLocation(departureLocation),
		movement.setArrivalLocation(arrivalLocation),
		movement.setDepartureTime(departureTime),
		movement.setArrivalTime(arrivalTime),
	); err != nil {
		return CarrierMovement{}, err
	}

	return movement, nil
}

// Validate checks if the CarrierMovement was properly constructed.
func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns the location the carrier departs from.
func (m CarrierMovement) DepartureLocation() kernel.Location {
	return m.departureLocation
}

// ArrivalLocation returns the location the carrier arrives at.
func (m CarrierMovement) ArrivalLocation() kernel.Location {
	return m.arrivalLocation
}

// DepartureTime returns the scheduled time of departure.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns the scheduled time of arrival.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

// IsEqual compares two carrier movements by value: locations and times.
func (m CarrierMovement) IsEqual(other CarrierMovement) bool {
	return m.departureLocation.IsEqual(other.departureLocation) &&
		m.arrivalLocation.IsEqual(other.arrivalLocation) &&
		m.departureTime.Equal(other.departureTime) &&
		m.arrivalTime.Equal(other.arrivalTime)
}

func (m *CarrierMovement) setDepartureLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departureLocation", err)
	}
	m.departureLocation = location
	return nil
}

func (m *CarrierMovement) setArrivalLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arrivalLocation", err)
	}
	m.arrivalLocation = location
	return nil
}

func (m *CarrierMovement) setDepartureTime(departureTime time.Time) error {
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	m.departureTime = departureTime
	return nil
}

func (m *CarrierMovement) setArrivalTime(arrivalTime time.Time) error {
	if arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("arrivalTime")
	}
	m.arrivalTime = arrivalTime
	return nil
}
