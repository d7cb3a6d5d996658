package locationrepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add saves a new location to the database.
func (r *GormLocationRepository) Add(ctx context.Context, location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := fromDomain(location)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Get retrieves a location by its UN/LOCODE.
func (r *GormLocationRepository) Get(ctx context.Context, code kernel.UNLocode) (kernel.Location, error) {
	if err := code.Validate(); err != nil {
		return kernel.Location{}, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "un_locode = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Location{}, errs.NewObjectNotFoundError("location", code.String())
		}
		return kernel.Location{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves all known locations, sorted by name.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]kernel.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]kernel.Location, 0, len(dtos))
	for _, dto := range dtos {
		location, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}
