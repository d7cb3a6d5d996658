package cargorepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	locations locationResolver
	voyages   voyageResolver
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
// The resolvers rebuild locations and voyages from the identifiers
// stored in the cargo and leg rows.
func NewGormCargoRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	locations locationResolver,
	voyages voyageResolver,
) *GormCargoRepository {
	return &GormCargoRepository{
		db:        db,
		tracker:   tracker,
		locations: locations,
		voyages:   voyages,
	}
}

// Add saves a newly booked cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID().String(), aggregate)
	return nil
}

// Update saves an existing cargo to the database. The leg rows are replaced
// wholesale: re-routing may shrink the itinerary, which an association upsert
// would leave stale rows behind for.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("cargo_tracking_id = ?", dto.TrackingID).
		Delete(&LegDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.TrackingID().String(), aggregate)
	return nil
}

// Get retrieves a cargo by its tracking id.
func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	if err := r.db.WithContext(ctx).
		Preload("Legs", legOrder).
		First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	return toDomain(ctx, dto, r.locations, r.voyages)
}

// GetAllUnclaimed retrieves every cargo whose transport has not ended with a
// claim, for the delivery inspection job.
func (r *GormCargoRepository) GetAllUnclaimed(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	if err := r.db.WithContext(ctx).
		Preload("Legs", legOrder).
		Where("transport_status <> ?", cargo.Claimed.String()).
		Order("tracking_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(ctx, dto, r.locations, r.voyages)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, aggregate)
	}

	return cargos, nil
}

// legOrder keeps preloaded legs in itinerary order.
func legOrder(db *gorm.DB) *gorm.DB {
	return db.Order("legs.leg_index")
}
