package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MUR is the store currency.
var MUR = currency.MustParseISO("MUR")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: MUR}
}

func MustMoney(amount string) Money {
	return NewMoney(decimal.RequireFromString(amount))
}

func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// minorUnitScale is the number of fractional digits prices are kept at.
const minorUnitScale int32 = 2

func (m Money) scale() int32 {
	return minorUnitScale
}

// Round rounds half away from zero to the minor unit (cents).
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(m.scale()), Currency: m.Currency}
}

func (m Money) MinorUnits() int64 {
	return m.Amount.Shift(m.scale()).Round(0).IntPart()
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.currencyOr(other)}
}

func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(rate), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(m.scale()))
}

// currencyOr lets a zero-value Money (no currency) act as an additive identity.
func (m Money) currencyOr(other Money) currency.Unit {
	if m.Currency == (currency.Unit{}) {
		return other.Currency
	}
	return m.Currency
}
