package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetProductionOrdersByBufferQueryIsNotConstructed = errors.New(
	"GetProductionOrdersByBufferQuery must be created via NewGetProductionOrdersByBufferQuery constructor",
)

// GetProductionOrdersByBufferQuery retrieves the orders currently waiting in
// one of the two inter-phase buffers.
type GetProductionOrdersByBufferQuery struct { //nolint:recvcheck //using for validation
	buffer kernel.Buffer

	guard guard.ConstructorGuard
}

// NewGetProductionOrdersByBufferQuery creates a query for orders in the
// given buffer. Validates that the buffer is one of the two known buffers.
func NewGetProductionOrdersByBufferQuery(buffer kernel.Buffer) (GetProductionOrdersByBufferQuery, error) {
	if err := buffer.Validate(); err != nil {
		return GetProductionOrdersByBufferQuery{}, err
	}

	return GetProductionOrdersByBufferQuery{
		buffer: buffer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrdersByBufferQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrdersByBufferQueryIsNotConstructed)
}

// Buffer returns the buffer to filter by.
func (q GetProductionOrdersByBufferQuery) Buffer() kernel.Buffer {
	return q.buffer
}
