package queries

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetPansQueryIsNotConstructed = errors.New(
	"GetPansQuery must be created via NewGetPansQuery or NewGetAvailablePansQuery constructor",
)

// GetPansQuery retrieves pans, optionally restricted to the ones currently
// available for claiming.
//
// Example:
//
//	handler := NewGetPansQueryHandler(db)
//	all, err := handler.Handle(ctx, NewGetPansQuery())
//	free, err := handler.Handle(ctx, NewGetAvailablePansQuery())
type GetPansQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetPansQuery creates a query to retrieve every pan.
func NewGetPansQuery() GetPansQuery {
	return GetPansQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAvailablePansQuery creates a query restricted to available pans.
func NewGetAvailablePansQuery() GetPansQuery {
	return GetPansQuery{onlyAvailable: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetPansQuery) Validate() error {
	return q.guard.Validate(ErrGetPansQueryIsNotConstructed)
}

// OnlyAvailable reports whether claimed pans are filtered out.
func (q GetPansQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetPansQueryResponse represents pan information in the read model.
type GetPansQueryResponse struct {
	ID          kernel.UUID
	Name        string
	IsAvailable bool
	CreatedAt   time.Time
}
