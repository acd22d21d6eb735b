package tradepnl

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the single currency of the engine. The source records
// carry no currency column, so every amount is reported in it.
const reportingCurrency = "USD"

// Money represents a monetary value, kept exact as a decimal.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from a float amount.
func M(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// NewMoney creates a Money from an exact decimal amount.
func NewMoney(value decimal.Decimal) Money { return Money{value: value} }

// ParseMoney parses a money amount from a broker record field. It tolerates
// currency signs, thousands separators and parenthesized negatives, and
// returns zero for anything unparsable: malformed upstream data degrades,
// it never rejects a record.
func ParseMoney(s string) Money {
	return Money{value: parseDecimal(s)}
}

// parseDecimal is the permissive numeric coercion shared by Money and
// Quantity parsing.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	if after, ok := strings.CutPrefix(s, "-$"); ok {
		// keep the sign, drop the symbol
		s = "-" + after
	} else {
		s = strings.TrimPrefix(s, "$")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		v = v.Neg()
	}
	return v
}

// currency returns the reporting currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency the Money constructor must be called.
	return *money.New(0, reportingCurrency).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Compare(n Money) int      { return m.value.Cmp(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Mul scales the money value by a quantity (e.g. price by shares).
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// Div divides the money value by a quantity (e.g. total by trade count).
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// InexactFloat64 returns the nearest float64 for display-only consumers.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface for Money.
// Amounts are persisted as plain numbers in the reporting currency.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	return m.value.UnmarshalJSON(bytes)
}
