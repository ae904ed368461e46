package money

import (
	"fmt"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// Money is an exact monetary value: a decimal major-unit amount tied to an
// ISO 4217 currency code. The canonical transport representation is integer
// minor units (cents); Money exists so that intermediate arithmetic never
// touches floating point.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// FromMinorUnits builds a Money from integer minor units (cents), quantized
// to two decimal places with round-half-up.
func FromMinorUnits(cents int64, currencyCode string) (Money, error) {
	if !ValidCurrency(currencyCode) {
		return Money{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, currencyCode)
	}
	amount := decimal.NewFromInt(cents).Div(centsPerUnit).Round(2)
	return Money{amount: amount, currency: currencyCode}, nil
}

// Zero returns a zero-valued Money in the given currency.
func Zero(currencyCode string) (Money, error) {
	return FromMinorUnits(0, currencyCode)
}

// MinorUnits converts back to integer minor units, rounding half-up to the
// nearest cent. Inverse of FromMinorUnits for all integer cent inputs.
func (m Money) MinorUnits() int64 {
	return m.amount.Mul(centsPerUnit).Round(0).IntPart()
}

// Amount returns the decimal major-unit amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO 4217 code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns m + other. Values of different currencies must never be added;
// mismatches fail with ErrMixedCurrency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", apperrors.ErrMixedCurrency, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other, with the same currency guard as Add.
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", apperrors.ErrMixedCurrency, m.currency, other.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Equal reports whether two Money values have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String formats the value as "12.34 USD".
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
