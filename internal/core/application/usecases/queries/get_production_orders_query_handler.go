package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductionOrdersQueryHandler retrieves all order read models from the
// database. Uses direct SQL with LEFT JOINs for optimal read performance in
// the CQRS pattern.
//
// Example:
//
//	handler := NewGetProductionOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetProductionOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetProductionOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrdersQueryHandler creates a handler for order list
// queries. Requires a GORM database connection for query execution.
func NewGetProductionOrdersQueryHandler(db *gorm.DB) GetProductionOrdersQueryHandler {
	return GetProductionOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with resolved resource
// details, sorted by creation time, newest first.
func (h GetProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrdersQuery,
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
		ORDER BY o.created_at DESC
	`).Rows()
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
