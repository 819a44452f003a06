package commands

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/ports"
)

// loyaltyRatePercent is the share of the final amount credited to the
// customer as loyalty points when an order is delivered.
var loyaltyRatePercent = kernel.NewMoneyFromInt(5)

// AdvanceOrderStatusCommandHandler handles externally driven status
// transitions, including settlement side effects when an order reaches
// Delivered: the customer's history grows and loyalty points accrue, exactly
// once because Delivered is terminal.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status
// transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status transition command.
// An unknown order ID is a not-found error and leaves all state untouched.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Next() == order.Cancelled {
		err = aggregate.Cancel()
	} else {
		err = aggregate.AdvanceTo(cmd.Next())
	}
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		if err = h.settleCustomer(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, aggregate)
	return nil
}

// settleCustomer appends the delivered order to the customer's history and
// accrues loyalty points worth 5% of the final amount.
func (h AdvanceOrderStatusCommandHandler) settleCustomer(ctx context.Context, uow UoW, aggregate *order.Order) error {
	account, err := uow.UserRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}
	customer, ok := account.(*user.Customer)
	if !ok {
		return ErrNotCustomer
	}

	if err = customer.AddLoyaltyPoints(aggregate.Total().Percent(loyaltyRatePercent)); err != nil {
		return err
	}
	if err = customer.AppendOrderHistory(aggregate.ID()); err != nil {
		return err
	}

	return uow.UserRepository().Update(ctx, customer)
}
