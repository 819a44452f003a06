package memstore

import (
	"context"

	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/pkg/errs"
)

// offerRepository implements ports.OfferRepository over the staged store.
// Offers are immutable, so aggregates are shared by pointer.
type offerRepository struct {
	uow *UnitOfWork
}

func (r *offerRepository) Add(_ context.Context, aggregate *offer.Offer) error {
	r.uow.stagedOffers = append(r.uow.stagedOffers, aggregate)
	return nil
}

func (r *offerRepository) GetByCode(_ context.Context, code string) (*offer.Offer, error) {
	for _, promo := range r.uow.stagedOffers {
		if promo.Code() == code {
			return promo, nil
		}
	}
	if promo, ok := r.uow.store.offers[code]; ok {
		return promo, nil
	}
	return nil, errs.NewObjectNotFoundError("offer", code)
}

// GetAll lists offers in creation order.
func (r *offerRepository) GetAll(_ context.Context) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(r.uow.store.offerCodes)+len(r.uow.stagedOffers))
	for _, code := range r.uow.store.offerCodes {
		offers = append(offers, r.uow.store.offers[code])
	}
	offers = append(offers, r.uow.stagedOffers...)
	return offers, nil
}
