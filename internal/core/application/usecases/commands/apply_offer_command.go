package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var (
	ErrApplyOfferCommandIsNotConstructed = errors.New(
		"ApplyOfferCommand must be created via NewApplyOfferCommand constructor",
	)
	ErrOfferCodeIsRequired = errors.New("offer code is required")
)

// ApplyOfferCommand represents a request to apply a promotional offer to a
// pending order.
type ApplyOfferCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	offerCode string

	guard guard.ConstructorGuard
}

// NewApplyOfferCommand creates a command to apply an offer.
func NewApplyOfferCommand(orderID kernel.ID, offerCode string) (ApplyOfferCommand, error) {
	cmd := ApplyOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOfferCode(offerCode),
	); err != nil {
		return ApplyOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOfferCommand) Validate() error {
	return c.guard.Validate(ErrApplyOfferCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c ApplyOfferCommand) OrderID() kernel.ID {
	return c.orderID
}

// OfferCode returns the offer code to apply.
func (c ApplyOfferCommand) OfferCode() string {
	return c.offerCode
}

func (c *ApplyOfferCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApplyOfferCommand) setOfferCode(offerCode string) error {
	if offerCode == "" {
		return ErrOfferCodeIsRequired
	}
	c.offerCode = offerCode
	return nil
}
