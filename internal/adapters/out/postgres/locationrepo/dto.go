// Package locationrepo provides data transfer objects and mapping functions for
// location persistence. Locations are reference data: a small, stable registry
// of ports and terminals keyed by UN/LOCODE.
package locationrepo

import (
	"cargotracker/internal/core/domain/model/kernel"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	UNLocode string `gorm:"type:varchar(5);primaryKey;column:un_locode"`
	Name     string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for location entities.
// Overrides GORM's default naming convention to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location value object to its database representation.
func fromDomain(location kernel.Location) LocationDTO {
	return LocationDTO{
		UNLocode: location.UNLocode().String(),
		Name:     location.Name(),
	}
}

// toDomain converts a database DTO back to a location value object.
func toDomain(dto LocationDTO) (kernel.Location, error) {
	code, err := kernel.NewUNLocode(dto.UNLocode)
	if err != nil {
		return kernel.Location{}, err
	}

	return kernel.NewLocation(code, dto.Name)
}
