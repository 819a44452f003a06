package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point decimal amount of currency.
//
// All monetary fields in the system (prices, subtotals, discounts, tips,
// earnings, loyalty points) use Money so that sums and discounts round-trip
// exactly; binary floating point never touches a financial total.
//
// The zero value is a valid zero amount. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromString parses a decimal amount such as "12.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float to Money. Intended only for the
// interaction-layer boundary where amounts arrive as JSON numbers; the
// conversion picks the shortest exact decimal representation.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// NewMoneyFromInt converts whole currency units to Money.
func NewMoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m − other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns m × quantity. Used for cart line totals.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns pct percent of m, e.g. m.Percent(NewMoneyFromInt(50))
// is half of m. Used for percentage discounts and loyalty accrual.
func (m Money) Percent(pct Money) Money {
	return Money{amount: m.amount.Mul(pct.amount).Div(decimal.NewFromInt(100))}
}

// Min returns the smaller of m and other. Used to clamp flat discounts to
// the subtotal so a final amount can never go negative.
func (m Money) Min(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return other
	}
	return m
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsNegative reports m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports m > 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by numeric value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the closest float64 to the amount. Display only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
