package services

import (
	"errors"
	"fmt"
	"math/rand"

	"foodmate/internal/core/domain/model/kernel"
)

// ErrPaymentDeclined is returned when a payment attempt fails. The order
// stays unplaced and the customer may retry.
var ErrPaymentDeclined = errors.New("payment declined")

// upiSuccessRate is the simulated share of UPI charges that go through.
const upiSuccessRate = 0.9

// PaymentProcessor charges the customer for an order. Implementations are
// simulations: no real gateway is involved.
type PaymentProcessor interface {
	// Process attempts to charge the amount. A decline is reported as an
	// error wrapping ErrPaymentDeclined.
	Process(amount kernel.Money) error
	// Mode returns the payment mode label, e.g. "UPI".
	Mode() string
}

// UPI simulates an instant-transfer payment that occasionally fails.
// Roughly nine in ten charges succeed; the rand source is injected so tests
// can make the outcome deterministic.
type UPI struct {
	rnd *rand.Rand
}

// NewUPI creates a UPI processor drawing from the given source.
func NewUPI(source rand.Source) *UPI {
	return &UPI{rnd: rand.New(source)}
}

// Process charges the amount, failing with ErrPaymentDeclined about 10% of
// the time.
func (u *UPI) Process(amount kernel.Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("invalid charge amount %s", amount)
	}
	if u.rnd.Float64() >= upiSuccessRate {
		return fmt.Errorf("UPI charge of %s failed: %w", amount, ErrPaymentDeclined)
	}
	return nil
}

// Mode returns "UPI".
func (u *UPI) Mode() string {
	return "UPI"
}

// CashOnDelivery is the payment mode that always succeeds: the customer
// settles with the partner at the door.
type CashOnDelivery struct{}

// NewCashOnDelivery creates a CashOnDelivery processor.
func NewCashOnDelivery() CashOnDelivery {
	return CashOnDelivery{}
}

// Process accepts any non-negative amount.
func (CashOnDelivery) Process(amount kernel.Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("invalid charge amount %s", amount)
	}
	return nil
}

// Mode returns "Cash on Delivery".
func (CashOnDelivery) Mode() string {
	return "Cash on Delivery"
}
