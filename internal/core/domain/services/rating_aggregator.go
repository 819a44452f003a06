package services

import (
	"log/slog"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
)

var (
	// ErrOrderIsNotDelivered is returned when rating an order that has not
	// reached the Delivered status.
	ErrOrderIsNotDelivered = errs.NewValueIsInvalidError("only delivered orders can be rated")
	// ErrPartnerMismatch is returned when the partner passed for rating is
	// not the one assigned to the order.
	ErrPartnerMismatch = errs.NewValueIsInvalidError("partner was not assigned to this order")
)

// RatingAggregator is a domain service that fans a delivered order's rating
// out to every party involved.
//
// The food score folds into the restaurant's running average and into every
// dish on the live menu whose name appears in the order's frozen lines —
// every dish sharing a name receives the score, mirroring name-based menu
// removal. The delivery score and the order's tip settle the partner via
// CompleteDelivery, which also frees the partner for the next order.
// Free-text feedback is logged, not stored.
type RatingAggregator struct {
	logger *slog.Logger
}

// NewRatingAggregator creates a RatingAggregator that logs free-text
// feedback through the given logger.
func NewRatingAggregator(logger *slog.Logger) RatingAggregator {
	return RatingAggregator{logger: logger}
}

// Apply distributes the order's ratings.
//
// The partner may be nil only when the order has no assigned partner. Stars
// are validated before any aggregate is touched, so a bad score leaves all
// averages unchanged.
func (a RatingAggregator) Apply(o *order.Order, r *restaurant.Restaurant,
	p *user.DeliveryPartner, foodScore, deliveryScore kernel.Stars, feedback string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Delivered {
		return ErrOrderIsNotDelivered
	}
	if err := foodScore.Validate(); err != nil {
		return err
	}
	if err := deliveryScore.Validate(); err != nil {
		return err
	}
	if o.HasPartner() {
		if p == nil || !p.ID().IsEqual(o.PartnerID()) {
			return ErrPartnerMismatch
		}
	}

	if err := r.ApplyRating(foodScore); err != nil {
		return err
	}

	for _, name := range distinctDishNames(o.Lines()) {
		for _, dish := range r.Menu().DishesByName(name) {
			if err := dish.ApplyRating(foodScore); err != nil {
				return err
			}
		}
	}

	if o.HasPartner() {
		if err := p.CompleteDelivery(o.Tip(), deliveryScore); err != nil {
			return err
		}
	}

	if feedback != "" {
		a.logger.Info("customer feedback",
			"order_id", o.ID().String(),
			"restaurant_id", r.ID().String(),
			"feedback", feedback,
		)
	}

	return nil
}

// distinctDishNames returns each dish name once, preserving line order.
func distinctDishNames(lines []order.Line) []string {
	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.DishName()]; ok {
			continue
		}
		seen[line.DishName()] = struct{}{}
		names = append(names, line.DishName())
	}
	return names
}
