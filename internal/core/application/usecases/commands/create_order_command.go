package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
	ErrQuantityIsInvalid     = errors.New("item quantity must be positive")
)

// OrderItem is one requested cart entry: a dish reference and a quantity.
type OrderItem struct {
	DishID   kernel.ID
	Quantity int
}

// CreateOrderCommand represents a request to open a new order for a
// customer at a restaurant.
//
// The order ID is supplied by the caller: the interaction layer generates
// it and can return it to the client before the command runs.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	customerID   kernel.ID
	restaurantID kernel.ID
	items        []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order.
// Requires at least one item; every quantity must be positive.
func NewCreateOrderCommand(orderID, customerID, restaurantID kernel.ID, items []OrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID, restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// CustomerID returns the ordering customer's ID.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// RestaurantID returns the chosen restaurant's ID.
func (c CreateOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Items returns the requested cart entries.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

func (c *CreateOrderCommand) setIDs(orderID, customerID, restaurantID kernel.ID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.customerID = customerID
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}
	c.items = append([]OrderItem(nil), items...)
	return nil
}
