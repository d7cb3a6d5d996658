package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCargosQueryHandler retrieves the cargo routing overview from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAllCargosQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCargosQueryHandler creates a handler for cargo overview queries.
// Requires a GORM database connection for query execution.
func NewGetAllCargosQueryHandler(db *gorm.DB) GetAllCargosQueryHandler {
	return GetAllCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all cargos, sorted by tracking id.
func (h GetAllCargosQueryHandler) Handle(
	ctx context.Context,
	query GetAllCargosQuery,
) ([]GetAllCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]GetAllCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline,
			routing_status,
			transport_status,
			is_misdirected
		FROM cargos
		ORDER BY tracking_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var overview GetAllCargosQueryResponse

		err = rows.Scan(
			&overview.TrackingID,
			&overview.Origin,
			&overview.Destination,
			&overview.ArrivalDeadline,
			&overview.RoutingStatus,
			&overview.TransportStatus,
			&overview.IsMisdirected,
		)
		if err != nil {
			return nil, err
		}

		cargos = append(cargos, overview)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}
