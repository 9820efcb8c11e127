package stashmate

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency every amount in a stash is denominated in.
const ReportingCurrency = "USD"

// Money represents a monetary value. Arithmetic stays in exact decimals,
// formatting goes through the currency definition.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is a shorthand for M(value, ReportingCurrency).
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, ReportingCurrency)
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// currency returns the money's currency definition.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency.
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted as currency, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Neg() Money           { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) MulInt(n int) Money   { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur} }
func (m Money) Amount() decimal.Decimal { return m.value }

// AsFloat returns the amount as a float64. Aggregation keeps exact decimals;
// this is only for the chart scaling math.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON writes the amount as a plain number, rounded to the currency
// fraction (2 for USD).
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return rounded.MarshalJSON()
}
