package commands

import (
	"context"
	"errors"

	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
)

// ErrNotCustomer is returned when the acting account exists but is not a
// customer.
var ErrNotCustomer = errors.New("account is not a customer")

// CreateOrderCommandHandler handles opening a new order: resolving the
// customer and restaurant, pricing the requested dishes from the live menu,
// and persisting the frozen order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The cart is built from the restaurant's current menu, so names and prices
// are snapshotted at this moment. The order starts Pending and unplaced.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	customer, ok := account.(*user.Customer)
	if !ok {
		return ErrNotCustomer
	}

	aggregate, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	cart := order.NewCart()
	for _, item := range cmd.Items() {
		dish, found := aggregate.Menu().DishByID(item.DishID)
		if !found {
			return errs.NewObjectNotFoundError("dish", item.DishID)
		}
		if err = cart.AddItem(dish, item.Quantity); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), customer.ID(), aggregate.ID(),
		customer.DeliveryAddress(), cart)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
