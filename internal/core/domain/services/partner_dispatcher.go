package services

import (
	"errors"

	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/user"
)

// ErrPartnerNotFound is returned when no delivery partner is available for
// an order. Callers treat this as a degraded state rather than a failure:
// the order stays unassigned and is retried later.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// PartnerDispatcher is a domain service that pairs an order with a delivery
// partner.
//
// Selection is first-match-wins over the partners whose availability flag is
// set; there is no load balancing or proximity ranking. The dispatch is
// atomic from the caller's perspective: the partner is marked busy and the
// order records the partner ID, or neither happens.
type PartnerDispatcher struct{}

// NewPartnerDispatcher creates a new PartnerDispatcher instance.
func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Dispatch assigns the first available partner to the order.
//
// Returns ErrPartnerNotFound when every partner is busy. Orders that already
// have a partner, or that are no longer in flight, are rejected by the
// order's own assignment rules.
func (d PartnerDispatcher) Dispatch(o *order.Order, partners []*user.DeliveryPartner) (*user.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			continue
		}

		if err := o.AssignPartner(p.ID()); err != nil {
			return nil, err
		}
		if err := p.StartDelivery(); err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, ErrPartnerNotFound
}
