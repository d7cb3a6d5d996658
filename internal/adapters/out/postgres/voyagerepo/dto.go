// Package voyagerepo provides data transfer objects and mapping functions for
// voyage persistence. A voyage row owns an ordered set of carrier movement
// rows; the movement index preserves the schedule order across round trips.
package voyagerepo

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents the database structure for persisting voyages.
type VoyageDTO struct {
	Number    string               `gorm:"type:varchar(32);primaryKey;column:number"`
	Movements []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for voyage entities.
// Overrides GORM's default naming convention to use "voyages".
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one scheduled movement of a voyage.
// Locations are stored by UN/LOCODE and resolved against the locations
// table when the schedule is reconstructed.
type CarrierMovementDTO struct {
	VoyageNumber      string    `gorm:"type:varchar(32);primaryKey;column:voyage_number"`
	MovementIndex     int       `gorm:"primaryKey;column:movement_index"`
	DepartureLocation string    `gorm:"type:varchar(5);not null"`
	ArrivalLocation   string    `gorm:"type:varchar(5);not null"`
	DepartureTime     time.Time `gorm:"not null"`
	ArrivalTime       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for carrier movement entities.
// Overrides GORM's default naming convention to use "carrier_movements".
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// locationResolver resolves UN/LOCODEs against the location reference data.
type locationResolver interface {
	Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error)
}

// fromDomain converts a voyage entity to its database representation.
// Movements keep their schedule position via the movement index.
func fromDomain(aggregate *voyage.Voyage) VoyageDTO {
	number := aggregate.Number().String()
	schedule := aggregate.Schedule().Movements()
	movements := make([]CarrierMovementDTO, 0, len(schedule))

	for i, movement := range schedule {
		movements = append(movements, CarrierMovementDTO{
			VoyageNumber:      number,
			MovementIndex:     i,
			DepartureLocation: movement.DepartureLocation().UNLocode().String(),
			ArrivalLocation:   movement.ArrivalLocation().UNLocode().String(),
			DepartureTime:     movement.DepartureTime(),
			ArrivalTime:       movement.ArrivalTime(),
		})
	}

	return VoyageDTO{
		Number:    number,
		Movements: movements,
	}
}

// toDomain converts a database DTO back to a voyage entity, resolving the
// movement locations against the location reference data.
func toDomain(ctx context.Context, dto VoyageDTO, locations locationResolver) (*voyage.Voyage, error) {
	number, err := voyage.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, movementDTO := range dto.Movements {
		movement, movementErr := movementToDomain(ctx, movementDTO, locations)
		if movementErr != nil {
			return nil, movementErr
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(number, schedule)
}

// movementToDomain converts a carrier movement DTO to its domain value object.
func movementToDomain(
	ctx context.Context,
	dto CarrierMovementDTO,
	locations locationResolver,
) (voyage.CarrierMovement, error) {
	departure, err := resolveLocation(ctx, dto.DepartureLocation, locations)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}

	arrival, err := resolveLocation(ctx, dto.ArrivalLocation, locations)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}

	return voyage.NewCarrierMovement(departure, arrival, dto.DepartureTime, dto.ArrivalTime)
}

// resolveLocation looks up a stored UN/LOCODE in the location reference data.
func resolveLocation(ctx context.Context, code string, locations locationResolver) (kernel.Location, error) {
	unLocode, err := kernel.NewUNLocode(code)
	if err != nil {
		return kernel.Location{}, err
	}

	return locations.Get(ctx, unLocode)
}
