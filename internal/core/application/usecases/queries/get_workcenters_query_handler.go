package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkcentersQueryHandler retrieves workcenter read models from the
// database.
type GetWorkcentersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkcentersQueryHandler creates a handler for workcenter queries.
// Requires a GORM database connection for query execution.
func NewGetWorkcentersQueryHandler(db *gorm.DB) GetWorkcentersQueryHandler {
	return GetWorkcentersQueryHandler{db: db}
}

// Handle executes the query to retrieve workcenters sorted by name,
// optionally restricted to one phase.
func (h GetWorkcentersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkcentersQuery,
) ([]GetWorkcentersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phase,
			capacity,
			created_at
		FROM workcenters`
	args := make([]any, 0, 1)
	if query.Phase() != nil {
		sql += `
		WHERE phase = ?`
		args = append(args, query.Phase().String())
	}
	sql += `
		ORDER BY name`

	workcenters := make([]GetWorkcentersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workcenter GetWorkcentersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&workcenter.Name,
			&workcenter.Phase,
			&workcenter.Capacity,
			&workcenter.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		workcenterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workcenter.ID = workcenterID
		workcenters = append(workcenters, workcenter)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workcenters, nil
}
