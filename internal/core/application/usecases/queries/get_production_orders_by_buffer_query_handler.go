package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductionOrdersByBufferQueryHandler retrieves the order read models
// for one buffer from the database.
type GetProductionOrdersByBufferQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrdersByBufferQueryHandler creates a handler for
// per-buffer order queries. Requires a GORM database connection for query
// execution.
func NewGetProductionOrdersByBufferQueryHandler(db *gorm.DB) GetProductionOrdersByBufferQueryHandler {
	return GetProductionOrdersByBufferQueryHandler{db: db}
}

// Handle executes the query for orders waiting in the given buffer, sorted
// by creation time, newest first. Buffered orders never carry resources, so
// the joined detail columns come back NULL by construction.
func (h GetProductionOrdersByBufferQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrdersByBufferQuery,
) ([]ProductionOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ProductionOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productionOrderColumns+`
		FROM production_orders o
		LEFT JOIN workcenters w ON w.id = o.workcenter_id
		LEFT JOIN pans p ON p.id = o.pan_id
		WHERE o.buffer_name = ?
		ORDER BY o.created_at DESC
	`, query.Buffer().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanProductionOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
