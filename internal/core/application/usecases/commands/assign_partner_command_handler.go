package commands

import (
	"context"
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/services"
	"foodmate/internal/core/ports"
)

var (
	// ErrNoUnassignedOrdersFound is returned when the sweep finds no order
	// waiting for a partner.
	ErrNoUnassignedOrdersFound = errors.New("no unassigned orders found")
	// ErrNoAvailablePartnersFound is returned when orders are waiting but
	// every partner is busy.
	ErrNoAvailablePartnersFound = errors.New("no available partners found")
)

// AssignPartnerCommandHandler sweeps the unassigned backlog and pairs each
// waiting order with a free partner, first-match-wins, until either side
// runs out. Both empty-backlog and all-busy outcomes surface as sentinel
// errors so the job can log them quietly.
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	dispatcher services.PartnerDispatcher
}

// NewAssignPartnerCommandHandler creates a handler for assignment sweeps.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		dispatcher: services.NewPartnerDispatcher(),
	}
}

// Handle processes the assignment sweep.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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
	waiting, err := orderRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(waiting) == 0 {
		return ErrNoUnassignedOrdersFound
	}

	partners, err := uow.UserRepository().GetAllPartners(ctx)
	if err != nil {
		return err
	}

	type assignment struct {
		o         *order.Order
		partnerID kernel.ID
	}
	var assignments []assignment

	for _, aggregate := range waiting {
		partner, dispatchErr := h.dispatcher.Dispatch(aggregate, partners)
		if errors.Is(dispatchErr, services.ErrPartnerNotFound) {
			break
		}
		if dispatchErr != nil {
			return dispatchErr
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		if err = uow.UserRepository().Update(ctx, partner); err != nil {
			return err
		}
		assignments = append(assignments, assignment{o: aggregate, partnerID: partner.ID()})
	}

	if len(assignments) == 0 {
		return ErrNoAvailablePartnersFound
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, a := range assignments {
		h.notifier.PartnerAssigned(ctx, a.o, a.partnerID)
	}
	return nil
}
