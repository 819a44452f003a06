package commands

import (
	"context"
)

// AddTipCommandHandler handles setting the delivery tip on an order.
type AddTipCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddTipCommandHandler creates a handler for tip updates.
func NewAddTipCommandHandler(uowFactory OrderUoWFactory) AddTipCommandHandler {
	return AddTipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-tip command.
// Tips are accepted up to the moment the order is rated; the aggregate
// enforces the cutoff.
func (h AddTipCommandHandler) Handle(ctx context.Context, cmd AddTipCommand) error {
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

	if err = aggregate.AddTip(cmd.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
