package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllLocationsQueryHandler retrieves location reference data from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAllLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLocationsQueryHandler creates a handler for location retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetAllLocationsQueryHandler(db *gorm.DB) GetAllLocationsQueryHandler {
	return GetAllLocationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all locations, sorted by name.
func (h GetAllLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLocationsQuery,
) ([]GetAllLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetAllLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			un_locode,
			name
		FROM locations
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location GetAllLocationsQueryResponse

		if err = rows.Scan(&location.UNLocode, &location.Name); err != nil {
			return nil, err
		}

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
