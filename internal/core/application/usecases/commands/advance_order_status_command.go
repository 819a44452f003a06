package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Transitions are driven externally: the kitchen reports
// Preparing, the partner reports OutForDelivery and Delivered, the customer
// may request Cancelled while the order is still pending.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	next    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's
// status. The target status must be a valid lifecycle status; whether the
// transition is legal from the current status is decided by the aggregate.
func NewAdvanceOrderStatusCommand(orderID kernel.ID, next order.Status) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AdvanceOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// Next returns the requested status.
func (c AdvanceOrderStatusCommand) Next() order.Status {
	return c.next
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
