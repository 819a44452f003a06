package commands

import (
	"context"
	"errors"
	"fmt"

	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/domain/services"
	"foodmate/internal/core/ports"
)

// ErrUnknownPaymentMode is returned when the requested payment mode has no
// configured processor.
var ErrUnknownPaymentMode = errors.New("unknown payment mode")

// PlaceOrderCommandHandler handles checkout: charging the customer,
// marking the order placed, and trying to hand it to a delivery partner.
//
// A payment decline cancels the order and surfaces ErrPaymentDeclined; the
// cancellation is committed so a declined order never enters the active set.
// Having no free partner is not an error: the order stays placed and
// unassigned, and the assignment job retries later.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	processors map[string]services.PaymentProcessor
	dispatcher services.PartnerDispatcher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Processors are indexed by their Mode label.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier,
	processors ...services.PaymentProcessor) PlaceOrderCommandHandler {
	indexed := make(map[string]services.PaymentProcessor, len(processors))
	for _, p := range processors {
		indexed[p.Mode()] = p
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		processors: indexed,
		dispatcher: services.NewPartnerDispatcher(),
	}
}

// Handle processes the place-order command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	processor, ok := h.processors[cmd.PaymentMode()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPaymentMode, cmd.PaymentMode())
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
	if aggregate.IsPlaced() {
		return order.ErrOrderAlreadyPlaced
	}

	if err = processor.Process(aggregate.Total()); err != nil {
		if !errors.Is(err, services.ErrPaymentDeclined) {
			return err
		}
		return h.cancelDeclined(ctx, uow, aggregate, err)
	}

	if err = aggregate.Place(); err != nil {
		return err
	}

	partner, err := h.tryAssign(ctx, uow, aggregate)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, aggregate)
	if partner != nil {
		h.notifier.PartnerAssigned(ctx, aggregate, partner.ID())
	}
	return nil
}

// cancelDeclined commits the cancellation of an order whose payment was
// declined, then surfaces the decline.
func (h PlaceOrderCommandHandler) cancelDeclined(ctx context.Context, uow UoW,
	aggregate *order.Order, declineErr error) error {
	if err := aggregate.Cancel(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, aggregate)
	return declineErr
}

// tryAssign scans partners first-match-wins and persists the one that takes
// the order. No free partner leaves the order unassigned and returns nil.
func (h PlaceOrderCommandHandler) tryAssign(ctx context.Context, uow UoW,
	aggregate *order.Order) (*user.DeliveryPartner, error) {
	partners, err := uow.UserRepository().GetAllPartners(ctx)
	if err != nil {
		return nil, err
	}

	partner, err := h.dispatcher.Dispatch(aggregate, partners)
	if errors.Is(err, services.ErrPartnerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Update(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}
