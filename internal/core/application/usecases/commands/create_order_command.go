package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production order.
// New orders always start in the buffer between charging and mixing with no
// resources bound.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "PO-2024-001", 500)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	quantity    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that the order ID is valid, the order number is not empty, and
// the quantity is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID kernel.UUID, orderNumber string, quantity float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderNumber(orderNumber),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
