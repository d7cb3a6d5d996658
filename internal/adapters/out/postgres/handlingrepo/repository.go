package handlingrepo

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
type GormHandlingEventRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	locations locationResolver
	voyages   voyageResolver
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormHandlingEventRepository creates a new GORM handling event repository.
// The resolvers rebuild event locations and voyages from the identifiers
// stored in the event rows.
func NewGormHandlingEventRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	locations locationResolver,
	voyages voyageResolver,
) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{
		db:        db,
		tracker:   tracker,
		locations: locations,
		voyages:   voyages,
	}
}

// Add appends a new handling event to the log.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID().String(), event)
	return nil
}

// GetHistory retrieves the full handling history of one cargo, in
// registration order. The event id breaks registration-time ties so repeated
// reads return the same sequence. An empty history is not an error.
func (r *GormHandlingEventRepository) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", trackingID.String()).
		Order("registration_time, id").
		Find(&dtos).Error; err != nil {
		return handling.History{}, err
	}

	if len(dtos) == 0 {
		return handling.EmptyHistory(), nil
	}

	events := make([]handling.HandlingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(ctx, dto, r.locations, r.voyages)
		if err != nil {
			return handling.History{}, err
		}
		events = append(events, event)
	}

	return handling.NewHistory(events)
}
