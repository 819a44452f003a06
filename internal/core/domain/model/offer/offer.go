// Package offer contains the promotional offer catalog entry and its
// eligibility rules.
//
// An offer is an immutable discount rule: a public code, either a flat
// amount or a percentage of the cart subtotal, a minimum order value, and an
// optional loyalty requirement. Eligibility is evaluated against a concrete
// subtotal and customer; an ineligible offer yields a zero discount and a
// machine-readable reason rather than an error.
package offer

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

// loyaltyPointsThreshold is the balance a customer must hold before
// loyalty-gated offers apply.
var loyaltyPointsThreshold = kernel.NewMoneyFromInt(10)

var (
	// ErrOfferCodeIsRequired is returned when creating an offer without a code.
	ErrOfferCodeIsRequired = errs.NewValueIsRequiredError("offer code")
	// ErrOfferValueIsInvalid is returned when the discount value is not positive.
	ErrOfferValueIsInvalid = errs.NewValueIsInvalidError("offer value must be positive")
	// ErrOfferIsNotConstructed is returned when an Offer was created bypassing the constructor.
	ErrOfferIsNotConstructed = errs.NewValueIsRequiredError("offer must be created via NewOffer")
)

// Reason explains why an offer did or did not produce a discount.
type Reason int

const (
	// ReasonEligible means the discount was granted.
	ReasonEligible Reason = iota
	// ReasonBelowMinimum means the subtotal is below the offer's minimum order value.
	ReasonBelowMinimum
	// ReasonInsufficientLoyalty means the customer's loyalty balance is below the threshold.
	ReasonInsufficientLoyalty
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		ReasonEligible:            "eligible",
		ReasonBelowMinimum:        "order below minimum value",
		ReasonInsufficientLoyalty: "insufficient loyalty points",
	}
}

func (r Reason) String() string {
	return getReasonStrings()[r]
}

// Offer is a promotional discount rule. Offers are immutable after creation.
type Offer struct {
	code           string
	value          kernel.Money
	percentage     bool
	minOrderValue  kernel.Money
	requireLoyalty bool

	guard guard.ConstructorGuard
}

// NewOffer creates a validated Offer.
//
// A percentage offer's value is interpreted as percent of the subtotal; a
// flat offer's value is a fixed amount, clamped to the subtotal when applied.
func NewOffer(code string, value kernel.Money, percentage bool,
	minOrderValue kernel.Money, requireLoyalty bool) (*Offer, error) {
	o := &Offer{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		o.setCode(code),
		o.setValue(value),
		o.setMinOrderValue(minOrderValue),
	)
	if err != nil {
		return nil, err
	}

	o.percentage = percentage
	o.requireLoyalty = requireLoyalty
	return o, nil
}

func (o *Offer) setCode(code string) error {
	if code == "" {
		return ErrOfferCodeIsRequired
	}
	o.code = code
	return nil
}

func (o *Offer) setValue(value kernel.Money) error {
	if !value.IsPositive() {
		return ErrOfferValueIsInvalid
	}
	o.value = value
	return nil
}

func (o *Offer) setMinOrderValue(minOrderValue kernel.Money) error {
	if minOrderValue.IsNegative() {
		return errs.NewValueIsInvalidError("minimum order value must not be negative")
	}
	o.minOrderValue = minOrderValue
	return nil
}

// Code returns the public offer code.
func (o *Offer) Code() string {
	return o.code
}

// Value returns the discount value (percent or flat amount).
func (o *Offer) Value() kernel.Money {
	return o.value
}

// IsPercentage reports whether the value is a percentage of the subtotal.
func (o *Offer) IsPercentage() bool {
	return o.percentage
}

// MinOrderValue returns the minimum subtotal the offer applies to.
func (o *Offer) MinOrderValue() kernel.Money {
	return o.minOrderValue
}

// RequiresLoyalty reports whether the offer is gated on loyalty points.
func (o *Offer) RequiresLoyalty() bool {
	return o.requireLoyalty
}

// ApplyDiscount evaluates the offer against a subtotal and customer.
//
// Eligibility checks run in order: minimum order value first, then the
// loyalty gate. An ineligible offer yields a zero discount together with the
// reason; callers decide whether that is an error. The discount never
// exceeds the subtotal.
func (o *Offer) ApplyDiscount(subtotal kernel.Money, customer *user.Customer) (kernel.Money, Reason) {
	if subtotal.LessThan(o.minOrderValue) {
		return kernel.ZeroMoney(), ReasonBelowMinimum
	}
	if o.requireLoyalty && customer.LoyaltyPoints().LessThan(loyaltyPointsThreshold) {
		return kernel.ZeroMoney(), ReasonInsufficientLoyalty
	}

	if o.percentage {
		return subtotal.Percent(o.value), ReasonEligible
	}
	return o.value.Min(subtotal), ReasonEligible
}

// Validate checks that the Offer was built via its constructor.
func (o *Offer) Validate() error {
	return o.guard.Validate(ErrOfferIsNotConstructed)
}
