package fintra

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the ledger currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
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
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency we go through the money constructor.
	return *money.New(0, m.cur).Currency()
}

// String returns the money value with the currency's separators followed
// by its symbol (e.g. "1.234,56 €").
func (m Money) String() string {
	return m.Separated() + " " + m.currency().Grapheme
}

// Separated returns the money value with the currency's thousands and
// decimal separators but without the symbol. This is the amount form of
// the exchange files.
func (m Money) Separated() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	f := money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, cur.Grapheme, "1")
	return f.Format(minor.IntPart())
}

// Decimal returns the underlying exact decimal value in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Min returns the smaller of the two values.
func (m Money) Min(n Money) Money {
	if m.LessThan(n) {
		return m
	}
	return n
}

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

// thousandsRE matches an amount whose dots can only be thousands separators
// (groups of exactly three digits).
var thousandsRE = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseAmount parses a user supplied amount into a Money of the given
// currency. Besides the plain decimal form ("1234.56") it tolerates the
// continental exchange convention where '.' separates thousands and ','
// is the decimal point ("1.234,56").
func ParseAmount(str, currency string) (Money, error) {
	s := strings.TrimSpace(str)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	switch {
	case strings.ContainsRune(s, ','):
		// Continental: dots are thousands separators, comma is the decimal point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsRE.MatchString(s):
		// All dots group exactly three digits: thousands separators.
		s = strings.ReplaceAll(s, ".", "")
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return M(value, currency), nil
}
