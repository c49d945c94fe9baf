package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPansQueryHandler retrieves pan read models from the database.
type GetPansQueryHandler struct {
	db *gorm.DB
}

// NewGetPansQueryHandler creates a handler for pan queries.
// Requires a GORM database connection for query execution.
func NewGetPansQueryHandler(db *gorm.DB) GetPansQueryHandler {
	return GetPansQueryHandler{db: db}
}

// Handle executes the query to retrieve pans sorted by name.
// When the query is restricted, claimed pans are filtered out.
func (h GetPansQueryHandler) Handle(
	ctx context.Context,
	query GetPansQuery,
) ([]GetPansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			is_available,
			created_at
		FROM pans`
	if query.OnlyAvailable() {
		sql += `
		WHERE is_available`
	}
	sql += `
		ORDER BY name`

	pans := make([]GetPansQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pan GetPansQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&pan.Name,
			&pan.IsAvailable,
			&pan.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		panID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pan.ID = panID
		pans = append(pans, pan)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pans, nil
}
