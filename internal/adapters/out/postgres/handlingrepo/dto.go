// Package handlingrepo provides data transfer objects and mapping functions
// for the handling event log. Events are immutable facts: rows are only ever
// inserted, never updated or deleted.
package handlingrepo

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/google/uuid"
)

// HandlingEventDTO represents the database structure for persisting handling
// events. The tracking id is indexed so a cargo's history can be read back
// efficiently.
type HandlingEventDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"type:varchar(255);not null;index"`
	EventType        string    `gorm:"type:varchar(32);not null"`
	Location         string    `gorm:"type:varchar(5);not null"`
	VoyageNumber     *string   `gorm:"type:varchar(32)"`
	CompletionTime   time.Time `gorm:"not null"`
	RegistrationTime time.Time `gorm:"not null"`
}

// TableName specifies the database table name for handling events.
// Overrides GORM's default naming convention to use "handling_events".
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// locationResolver resolves UN/LOCODEs against the location reference data.
type locationResolver interface {
	Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error)
}

// voyageResolver resolves voyage numbers against the voyage schedules.
type voyageResolver interface {
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)
}

// fromDomain converts a handling event to its database representation.
func fromDomain(event handling.HandlingEvent) HandlingEventDTO {
	var voyageNumber *string
	if v := event.Voyage(); v != nil {
		number := v.Number().String()
		voyageNumber = &number
	}

	return HandlingEventDTO{
		ID:               event.ID().Bytes(),
		TrackingID:       event.TrackingID().String(),
		EventType:        event.Type().String(),
		Location:         event.Location().UNLocode().String(),
		VoyageNumber:     voyageNumber,
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}
}

// toDomain converts a database DTO back to a handling event, resolving the
// location and the optional voyage against their own tables.
func toDomain(
	ctx context.Context,
	dto HandlingEventDTO,
	locations locationResolver,
	voyages voyageResolver,
) (handling.HandlingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	eventType, err := handling.EventTypeFromString(dto.EventType)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	unLocode, err := kernel.NewUNLocode(dto.Location)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	location, err := locations.Get(ctx, unLocode)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	var eventVoyage *voyage.Voyage
	if dto.VoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*dto.VoyageNumber)
		if numberErr != nil {
			return handling.HandlingEvent{}, numberErr
		}

		if eventVoyage, err = voyages.Get(ctx, number); err != nil {
			return handling.HandlingEvent{}, err
		}
	}

	return handling.NewHandlingEvent(
		id,
		trackingID,
		eventType,
		location,
		eventVoyage,
		dto.CompletionTime,
		dto.RegistrationTime,
	)
}
