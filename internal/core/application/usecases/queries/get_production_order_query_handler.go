package queries

import (
	"context"

	"production/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductionOrderQueryHandler retrieves a single order read model from
// the database.
type GetProductionOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrderQueryHandler creates a handler for single-order
// queries. Requires a GORM database connection for query execution.
func NewGetProductionOrderQueryHandler(db *gorm.DB) GetProductionOrderQueryHandler {
	return GetProductionOrderQueryHandler{db: db}
}

// Handle executes the query for one order with resolved resource details.
// Returns an error wrapping errs.ErrObjectNotFound when no order matches.
func (h GetProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrderQuery,
) (ProductionOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productionOrderColumns+`
		FROM production_orders o
		LEFT JOIN workcenters w ON w.id = o.workcenter_id
		LEFT JOIN pans p ON p.id = o.pan_id
		WHERE o.id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return ProductionOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductionOrderResponse{}, err
		}
		return ProductionOrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	return scanProductionOrder(rows)
}
