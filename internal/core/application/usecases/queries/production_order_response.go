package queries

import (
	"database/sql"
	"time"

	"production/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// WorkcenterDetails carries the resolved workcenter on an order read model.
type WorkcenterDetails struct {
	ID       kernel.UUID
	Name     string
	Phase    string
	Capacity int
}

// PanDetails carries the resolved pan on an order read model.
type PanDetails struct {
	ID          kernel.UUID
	Name        string
	IsAvailable bool
}

// ProductionOrderResponse is the order read model returned by every order
// query. Location is flattened to wire strings; the bound workcenter and
// pan are resolved into nested detail objects, or nil when unbound.
type ProductionOrderResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	Quantity     float64
	Status       string
	LocationType string
	Phase        *string
	Buffer       *string
	Workcenter   *WorkcenterDetails
	Pan          *PanDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// productionOrderColumns is the SELECT list every order query shares; the
// scan below depends on this exact column order.
const productionOrderColumns = `
		o.id,
		o.order_number,
		o.quantity,
		o.status,
		o.location_type,
		o.phase,
		o.buffer_name,
		w.id,
		w.name,
		w.phase,
		w.capacity,
		p.id,
		p.name,
		p.is_available,
		o.created_at,
		o.updated_at`

// scanProductionOrder reads one joined row into the read model, resolving
// the LEFT JOINed workcenter and pan columns into nested details when
// present.
func scanProductionOrder(rows *sql.Rows) (ProductionOrderResponse, error) {
	var response ProductionOrderResponse
	var id uuid.UUID
	var phase, bufferName sql.NullString
	var workcenterID, panID uuid.NullUUID
	var workcenterName, workcenterPhase, panName sql.NullString
	var workcenterCapacity sql.NullInt64
	var panAvailable sql.NullBool

	err := rows.Scan(
		&id,
		&response.OrderNumber,
		&response.Quantity,
		&response.Status,
		&response.LocationType,
		&phase,
		&bufferName,
		&workcenterID,
		&workcenterName,
		&workcenterPhase,
		&workcenterCapacity,
		&panID,
		&panName,
		&panAvailable,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return ProductionOrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductionOrderResponse{}, err
	}
	response.ID = orderID

	if phase.Valid {
		response.Phase = &phase.String
	}
	if bufferName.Valid {
		response.Buffer = &bufferName.String
	}

	if workcenterID.Valid {
		workcenterUUID, idErr := kernel.UUIDFromBytes(workcenterID.UUID[:])
		if idErr != nil {
			return ProductionOrderResponse{}, idErr
		}
		response.Workcenter = &WorkcenterDetails{
			ID:       workcenterUUID,
			Name:     workcenterName.String,
			Phase:    workcenterPhase.String,
			Capacity: int(workcenterCapacity.Int64),
		}
	}

	if panID.Valid {
		panUUID, idErr := kernel.UUIDFromBytes(panID.UUID[:])
		if idErr != nil {
			return ProductionOrderResponse{}, idErr
		}
		response.Pan = &PanDetails{
			ID:          panUUID,
			Name:        panName.String,
			IsAvailable: panAvailable.Bool,
		}
	}

	return response, nil
}
