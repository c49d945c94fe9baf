package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductionOrdersByPhaseQueryHandler retrieves the order read models for
// one phase from the database.
type GetProductionOrdersByPhaseQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrdersByPhaseQueryHandler creates a handler for per-phase
// order queries. Requires a GORM database connection for query execution.
func NewGetProductionOrdersByPhaseQueryHandler(db *gorm.DB) GetProductionOrdersByPhaseQueryHandler {
	return GetProductionOrdersByPhaseQueryHandler{db: db}
}

// Handle executes the query for orders in the given phase, sorted by
// creation time, newest first.
func (h GetProductionOrdersByPhaseQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrdersByPhaseQuery,
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
		WHERE o.phase = ?
		ORDER BY o.created_at DESC
	`, query.Phase().String()).Rows()
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
