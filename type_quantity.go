package tradepnl

import "github.com/shopspring/decimal"

// Quantity is a number of shares or contracts, kept exact as a decimal.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a float value.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// NewQuantity creates a Quantity from an exact decimal value.
func NewQuantity(value decimal.Decimal) Quantity { return Quantity{value: value} }

// ParseQuantity parses a quantity from a broker record field, returning zero
// for anything unparsable. Signs are kept as supplied, quantities are not
// validated positive.
func ParseQuantity(s string) Quantity {
	return Quantity{value: parseDecimal(s)}
}

func (q Quantity) Equal(p Quantity) bool           { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool        { return q.value.LessThan(p.value) }
func (q Quantity) LessThanOrEqual(p Quantity) bool { return q.value.LessThanOrEqual(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool     { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity         { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity         { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Div(p Quantity) Quantity         { return Quantity{value: q.value.Div(p.value)} }
func (q Quantity) IsNegative() bool                { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool                { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                    { return q.value.IsZero() }
func (q Quantity) String() string                  { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Quantity.
func (q *Quantity) UnmarshalJSON(bytes []byte) error {
	return q.value.UnmarshalJSON(bytes)
}
