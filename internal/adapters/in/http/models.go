package http

import (
	"time"

	"production/internal/core/application/usecases/queries"
)

// Error is the JSON body returned on every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by the create endpoints with the new resource id.
type Created struct {
	ID string `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber string  `json:"order_number"`
	Quantity    float64 `json:"quantity"`
}

// CreatePanRequest is the body of POST /api/v1/pans.
type CreatePanRequest struct {
	Name string `json:"name"`
}

// CreateWorkcenterRequest is the body of POST /api/v1/workcenters.
type CreateWorkcenterRequest struct {
	Name     string `json:"name"`
	Phase    string `json:"phase"`
	Capacity int    `json:"capacity"`
}

// MoveOrderRequest is the body of POST /api/v1/orders/:id/move. Phase and
// buffer are mutually exclusive; workcenter and pan bindings accompany
// phase targets only.
type MoveOrderRequest struct {
	LocationType string  `json:"location_type"`
	Phase        *string `json:"phase,omitempty"`
	Buffer       *string `json:"buffer,omitempty"`
	WorkcenterID *string `json:"workcenter_id,omitempty"`
	PanID        *string `json:"pan_id,omitempty"`
}

// AssignPanRequest is the body of POST /api/v1/orders/:id/pan.
type AssignPanRequest struct {
	PanID string `json:"pan_id"`
}

// WorkcenterDetails is the workcenter object nested in an order response.
type WorkcenterDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phase    string `json:"phase"`
	Capacity int    `json:"capacity"`
}

// PanDetails is the pan object nested in an order response.
type PanDetails struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
}

// ProductionOrder is the order representation returned by every order
// endpoint. Workcenter and pan are resolved details, or null when unbound.
type ProductionOrder struct {
	ID           string             `json:"id"`
	OrderNumber  string             `json:"order_number"`
	Quantity     float64            `json:"quantity"`
	Status       string             `json:"status"`
	LocationType string             `json:"location_type"`
	Phase        *string            `json:"phase,omitempty"`
	Buffer       *string            `json:"buffer,omitempty"`
	Workcenter   *WorkcenterDetails `json:"workcenter,omitempty"`
	Pan          *PanDetails        `json:"pan,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Pan is the representation returned by the pan endpoints.
type Pan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// Workcenter is the representation returned by the workcenter endpoints.
type Workcenter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phase     string    `json:"phase"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func toProductionOrder(response queries.ProductionOrderResponse) ProductionOrder {
	result := ProductionOrder{
		ID:           response.ID.String(),
		OrderNumber:  response.OrderNumber,
		Quantity:     response.Quantity,
		Status:       response.Status,
		LocationType: response.LocationType,
		Phase:        response.Phase,
		Buffer:       response.Buffer,
		CreatedAt:    response.CreatedAt,
		UpdatedAt:    response.UpdatedAt,
	}

	if response.Workcenter != nil {
		result.Workcenter = &WorkcenterDetails{
			ID:       response.Workcenter.ID.String(),
			Name:     response.Workcenter.Name,
			Phase:    response.Workcenter.Phase,
			Capacity: response.Workcenter.Capacity,
		}
	}
	if response.Pan != nil {
		result.Pan = &PanDetails{
			ID:          response.Pan.ID.String(),
			Name:        response.Pan.Name,
			IsAvailable: response.Pan.IsAvailable,
		}
	}

	return result
}

func toProductionOrders(responses []queries.ProductionOrderResponse) []ProductionOrder {
	result := make([]ProductionOrder, len(responses))
	for i, response := range responses {
		result[i] = toProductionOrder(response)
	}
	return result
}

func toPans(responses []queries.GetPansQueryResponse) []Pan {
	result := make([]Pan, len(responses))
	for i, response := range responses {
		result[i] = Pan{
			ID:          response.ID.String(),
			Name:        response.Name,
			IsAvailable: response.IsAvailable,
			CreatedAt:   response.CreatedAt,
		}
	}
	return result
}

func toWorkcenters(responses []queries.GetWorkcentersQueryResponse) []Workcenter {
	result := make([]Workcenter, len(responses))
	for i, response := range responses {
		result[i] = Workcenter{
			ID:        response.ID.String(),
			Name:      response.Name,
			Phase:     response.Phase,
			Capacity:  response.Capacity,
			CreatedAt: response.CreatedAt,
		}
	}
	return result
}
