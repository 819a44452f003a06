package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer rating a delivered order: a food
// score, a delivery score, and optional free-text feedback.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ID
	foodScore     kernel.Stars
	deliveryScore kernel.Stars
	feedback      string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate an order.
// Both scores must be within the 1..5 star range.
func NewRateOrderCommand(orderID kernel.ID, foodScore, deliveryScore kernel.Stars,
	feedback string) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setScores(foodScore, deliveryScore),
	); err != nil {
		return RateOrderCommand{}, err
	}

	cmd.feedback = feedback
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c RateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// FoodScore returns the stars given to the food.
func (c RateOrderCommand) FoodScore() kernel.Stars {
	return c.foodScore
}

// DeliveryScore returns the stars given to the delivery.
func (c RateOrderCommand) DeliveryScore() kernel.Stars {
	return c.deliveryScore
}

// Feedback returns the optional free-text feedback.
func (c RateOrderCommand) Feedback() string {
	return c.feedback
}

func (c *RateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setScores(foodScore, deliveryScore kernel.Stars) error {
	if err := errors.Join(foodScore.Validate(), deliveryScore.Validate()); err != nil {
		return err
	}
	c.foodScore = foodScore
	c.deliveryScore = deliveryScore
	return nil
}
