package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db        *gorm.DB
	locations locationResolver
}

// NewGormVoyageRepository creates a new GORM voyage repository.
// The location resolver is used to rebuild schedule locations from
// their stored UN/LOCODEs.
func NewGormVoyageRepository(db *gorm.DB, locations locationResolver) *GormVoyageRepository {
	return &GormVoyageRepository{
		db:        db,
		locations: locations,
	}
}

// Add saves a new voyage with its full schedule to the database.
func (r *GormVoyageRepository) Add(ctx context.Context, aggregate *voyage.Voyage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Get retrieves a voyage by its identifying number.
func (r *GormVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto VoyageDTO
	if err := r.db.WithContext(ctx).
		Preload("Movements", movementOrder).
		First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return nil, err
	}

	return toDomain(ctx, dto, r.locations)
}

// GetAll retrieves all known voyages with their schedules.
func (r *GormVoyageRepository) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	var dtos []VoyageDTO
	if err := r.db.WithContext(ctx).
		Preload("Movements", movementOrder).
		Order("number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	voyages := make([]*voyage.Voyage, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(ctx, dto, r.locations)
		if err != nil {
			return nil, err
		}
		voyages = append(voyages, v)
	}

	return voyages, nil
}

// movementOrder keeps preloaded movements in schedule order.
func movementOrder(db *gorm.DB) *gorm.DB {
	return db.Order("carrier_movements.movement_index")
}
