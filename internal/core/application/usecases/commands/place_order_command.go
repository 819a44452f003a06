package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPaymentModeIsRequired = errors.New("payment mode is required")
)

// PlaceOrderCommand represents a request to place (check out) a pending
// order with a chosen payment mode.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	paymentMode string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// The payment mode must match a configured processor by label.
func NewPlaceOrderCommand(orderID kernel.ID, paymentMode string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentMode(paymentMode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c PlaceOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// PaymentMode returns the chosen payment mode label.
func (c PlaceOrderCommand) PaymentMode() string {
	return c.paymentMode
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setPaymentMode(paymentMode string) error {
	if paymentMode == "" {
		return ErrPaymentModeIsRequired
	}
	c.paymentMode = paymentMode
	return nil
}
