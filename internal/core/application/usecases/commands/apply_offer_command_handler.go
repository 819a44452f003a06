package commands

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/core/domain/model/user"
)

// ApplyOfferResult reports the outcome of an offer application. An
// ineligible offer is not an error: the discount is zero and the reason
// explains why, so the interaction layer can show it to the customer.
type ApplyOfferResult struct {
	Discount kernel.Money
	Reason   offer.Reason
}

// Applied reports whether a discount was granted.
func (r ApplyOfferResult) Applied() bool {
	return r.Reason == offer.ReasonEligible
}

// ApplyOfferCommandHandler handles applying a promotional offer to a
// pending order: resolving the offer by code, evaluating eligibility
// against the order's subtotal and the customer's loyalty balance, and
// recording the discount.
type ApplyOfferCommandHandler struct {
	uowFactory UoWFactory
}

// NewApplyOfferCommandHandler creates a handler for offer application.
func NewApplyOfferCommandHandler(uowFactory UoWFactory) ApplyOfferCommandHandler {
	return ApplyOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the apply-offer command.
// Unknown order or offer codes are not-found errors. An ineligible offer
// returns a zero-discount result with the reason and leaves the order
// untouched.
func (h ApplyOfferCommandHandler) Handle(ctx context.Context, cmd ApplyOfferCommand) (ApplyOfferResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyOfferResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyOfferResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ApplyOfferResult{}, err
	}

	account, err := uow.UserRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return ApplyOfferResult{}, err
	}
	customer, ok := account.(*user.Customer)
	if !ok {
		return ApplyOfferResult{}, ErrNotCustomer
	}

	promo, err := uow.OfferRepository().GetByCode(ctx, cmd.OfferCode())
	if err != nil {
		return ApplyOfferResult{}, err
	}

	discount, reason := promo.ApplyDiscount(aggregate.Subtotal(), customer)
	result := ApplyOfferResult{Discount: discount, Reason: reason}
	if !result.Applied() {
		return result, nil
	}

	if err = aggregate.ApplyOffer(promo.Code(), discount); err != nil {
		return ApplyOfferResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ApplyOfferResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyOfferResult{}, err
	}

	return result, nil
}
