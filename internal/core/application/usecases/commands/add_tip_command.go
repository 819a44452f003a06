package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var (
	ErrAddTipCommandIsNotConstructed = errors.New(
		"AddTipCommand must be created via NewAddTipCommand constructor",
	)
	ErrTipIsInvalid = errors.New("tip must not be negative")
)

// AddTipCommand represents a request to set the delivery tip on an order.
type AddTipCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewAddTipCommand creates a command to set a tip. The amount must not be
// negative; zero clears a previously set tip.
func NewAddTipCommand(orderID kernel.ID, amount kernel.Money) (AddTipCommand, error) {
	cmd := AddTipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return AddTipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTipCommand) Validate() error {
	return c.guard.Validate(ErrAddTipCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AddTipCommand) OrderID() kernel.ID {
	return c.orderID
}

// Amount returns the tip amount.
func (c AddTipCommand) Amount() kernel.Money {
	return c.amount
}

func (c *AddTipCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddTipCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return ErrTipIsInvalid
	}
	c.amount = amount
	return nil
}
