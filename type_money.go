package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency every total is expressed in.
const ReportingCurrency = "AUD"

// Money is a monetary value in a currency, kept exact as a decimal and
// rendered with the currency's own formatting.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// M builds a Money in the reporting currency.
func M(value decimal.Decimal) Money { return Money{value: value, cur: ReportingCurrency} }

// MF builds a Money in the reporting currency from a float.
func MF(value float64) Money { return Money{value: decimal.NewFromFloat(value), cur: ReportingCurrency} }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and grouping, e.g.
// "$12,345.67".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) IsPositive() bool  { return m.value.IsPositive() }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg(), cur: m.cur} }

// Decimal exposes the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }
