// Package cargorepo provides data transfer objects and mapping functions for
// cargo persistence. The cargo row stores the route specification and the
// denormalized delivery snapshot; itinerary legs live in their own table,
// ordered by leg index. Locations and voyages are stored by identifier and
// resolved against their own tables on the way back to the domain.
package cargorepo

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The delivery snapshot is flattened into the row so that read-side queries
// can serve tracking views without touching the domain model.
type CargoDTO struct {
	TrackingID              string     `gorm:"type:varchar(255);primaryKey;column:tracking_id"`
	Origin                  string     `gorm:"type:varchar(5);not null"`
	Destination             string     `gorm:"type:varchar(5);not null"`
	ArrivalDeadline         time.Time  `gorm:"not null"`
	TransportStatus         string     `gorm:"type:varchar(32);not null"`
	RoutingStatus           string     `gorm:"type:varchar(32);not null"`
	LastKnownLocation       *string    `gorm:"type:varchar(5)"`
	CurrentVoyage           *string    `gorm:"type:varchar(32)"`
	IsMisdirected           bool       `gorm:"not null"`
	IsUnloadedAtDestination bool       `gorm:"not null"`
	ETA                     *time.Time `gorm:"column:eta"`
	CalculatedAt            time.Time  `gorm:"not null"`
	Legs                    []LegDTO   `gorm:"foreignKey:CargoTrackingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cargo entities.
// Overrides GORM's default naming convention to use "cargos".
func (CargoDTO) TableName() string {
	return "cargos"
}

// LegDTO represents one itinerary leg of a routed cargo.
// The leg index preserves the travel order of the itinerary.
type LegDTO struct {
	CargoTrackingID string    `gorm:"type:varchar(255);primaryKey;column:cargo_tracking_id"`
	LegIndex        int       `gorm:"primaryKey;column:leg_index"`
	VoyageNumber    string    `gorm:"type:varchar(32);not null"`
	LoadLocation    string    `gorm:"type:varchar(5);not null"`
	UnloadLocation  string    `gorm:"type:varchar(5);not null"`
	LoadTime        time.Time `gorm:"not null"`
	UnloadTime      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for itinerary legs.
// Overrides GORM's default naming convention to use "legs".
func (LegDTO) TableName() string {
	return "legs"
}

// locationResolver resolves UN/LOCODEs against the location reference data.
type locationResolver interface {
	Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error)
}

// voyageResolver resolves voyage numbers against the voyage schedules.
type voyageResolver interface {
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)
}

// fromDomain converts a cargo aggregate to its database representation.
// An unrouted cargo produces no leg rows.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	trackingID := aggregate.TrackingID().String()
	routeSpecification := aggregate.RouteSpecification()
	delivery := aggregate.Delivery()

	var lastKnownLocation *string
	if location := delivery.LastKnownLocation(); location != nil {
		code := location.UNLocode().String()
		lastKnownLocation = &code
	}

	var currentVoyage *string
	if v := delivery.CurrentVoyage(); v != nil {
		number := v.Number().String()
		currentVoyage = &number
	}

	legs := make([]LegDTO, 0)
	if itinerary := aggregate.Itinerary(); itinerary != nil {
		for i, leg := range itinerary.Legs() {
			legs = append(legs, LegDTO{
				CargoTrackingID: trackingID,
				LegIndex:        i,
				VoyageNumber:    leg.Voyage().Number().String(),
				LoadLocation:    leg.LoadLocation().UNLocode().String(),
				UnloadLocation:  leg.UnloadLocation().UNLocode().String(),
				LoadTime:        leg.LoadTime(),
				UnloadTime:      leg.UnloadTime(),
			})
		}
	}

	return CargoDTO{
		TrackingID:              trackingID,
		Origin:                  routeSpecification.Origin().UNLocode().String(),
		Destination:             routeSpecification.Destination().UNLocode().String(),
		ArrivalDeadline:         routeSpecification.ArrivalDeadline(),
		TransportStatus:         delivery.TransportStatus().String(),
		RoutingStatus:           delivery.RoutingStatus().String(),
		LastKnownLocation:       lastKnownLocation,
		CurrentVoyage:           currentVoyage,
		IsMisdirected:           delivery.IsMisdirected(),
		IsUnloadedAtDestination: delivery.IsUnloadedAtDestination(),
		ETA:                     delivery.ETA(),
		CalculatedAt:            delivery.CalculatedAt(),
		Legs:                    legs,
	}
}

// toDomain converts a database DTO back to a cargo aggregate.
// Reconstructs the route specification, itinerary and delivery snapshot
// using RestoreCargo; the handling history is replayed separately by the
// application layer.
func toDomain(
	ctx context.Context,
	dto CargoDTO,
	locations locationResolver,
	voyages voyageResolver,
) (*cargo.Cargo, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	routeSpecification, err := routeSpecificationToDomain(ctx, dto, locations)
	if err != nil {
		return nil, err
	}

	itinerary, err := itineraryToDomain(ctx, dto.Legs, locations, voyages)
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(ctx, dto, locations, voyages)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, routeSpecification, itinerary, delivery)
}

func routeSpecificationToDomain(
	ctx context.Context,
	dto CargoDTO,
	locations locationResolver,
) (cargo.RouteSpecification, error) {
	origin, err := resolveLocation(ctx, dto.Origin, locations)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	destination, err := resolveLocation(ctx, dto.Destination, locations)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	return cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
}

// itineraryToDomain rebuilds the assigned itinerary from its leg rows.
// Returns nil for an unrouted cargo.
func itineraryToDomain(
	ctx context.Context,
	dtos []LegDTO,
	locations locationResolver,
	voyages voyageResolver,
) (*cargo.Itinerary, error) {
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil //absence of an itinerary is a valid state
	}

	legs := make([]cargo.Leg, 0, len(dtos))
	for _, dto := range dtos {
		leg, err := legToDomain(ctx, dto, locations, voyages)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func legToDomain(
	ctx context.Context,
	dto LegDTO,
	locations locationResolver,
	voyages voyageResolver,
) (cargo.Leg, error) {
	legVoyage, err := resolveVoyage(ctx, dto.VoyageNumber, voyages)
	if err != nil {
		return cargo.Leg{}, err
	}

	loadLocation, err := resolveLocation(ctx, dto.LoadLocation, locations)
	if err != nil {
		return cargo.Leg{}, err
	}

	unloadLocation, err := resolveLocation(ctx, dto.UnloadLocation, locations)
	if err != nil {
		return cargo.Leg{}, err
	}

	return cargo.NewLeg(legVoyage, loadLocation, unloadLocation, dto.LoadTime, dto.UnloadTime)
}

func deliveryToDomain(
	ctx context.Context,
	dto CargoDTO,
	locations locationResolver,
	voyages voyageResolver,
) (cargo.Delivery, error) {
	transportStatus, err := cargo.TransportStatusFromString(dto.TransportStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}

	routingStatus, err := cargo.RoutingStatusFromString(dto.RoutingStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}

	var lastKnownLocation *kernel.Location
	if dto.LastKnownLocation != nil {
		location, locationErr := resolveLocation(ctx, *dto.LastKnownLocation, locations)
		if locationErr != nil {
			return cargo.Delivery{}, locationErr
		}
		lastKnownLocation = &location
	}

	var currentVoyage *voyage.Voyage
	if dto.CurrentVoyage != nil {
		currentVoyage, err = resolveVoyage(ctx, *dto.CurrentVoyage, voyages)
		if err != nil {
			return cargo.Delivery{}, err
		}
	}

	return cargo.RestoreDelivery(
		transportStatus,
		routingStatus,
		lastKnownLocation,
		currentVoyage,
		dto.IsMisdirected,
		dto.IsUnloadedAtDestination,
		dto.ETA,
		dto.CalculatedAt,
	)
}

// resolveLocation looks up a stored UN/LOCODE in the location reference data.
func resolveLocation(ctx context.Context, code string, locations locationResolver) (kernel.Location, error) {
	unLocode, err := kernel.NewUNLocode(code)
	if err != nil {
		return kernel.Location{}, err
	}

	return locations.Get(ctx, unLocode)
}

// resolveVoyage looks up a stored voyage number in the voyage schedules.
func resolveVoyage(ctx context.Context, number string, voyages voyageResolver) (*voyage.Voyage, error) {
	voyageNumber, err := voyage.NewNumber(number)
	if err != nil {
		return nil, err
	}

	return voyages.Get(ctx, voyageNumber)
}
