package query

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is a request decimal. It encodes as plain digits (0.00000012,
// 100) so AddObject never emits exponent notation.
type Decimal struct {
	apd.Decimal
}

// NewDecimal copies d.
func NewDecimal(d *apd.Decimal) *Decimal {
	out := &Decimal{}
	out.Set(d)
	return out
}

// ParseDecimal parses s, which may use exponent notation.
func ParseDecimal(s string) (*Decimal, error) {
	out := &Decimal{}
	if _, _, err := out.SetString(s); err != nil {
		return nil, err
	}
	return out, nil
}

// String returns the plain form.
func (d *Decimal) String() string {
	return d.Text('f')
}

// MarshalText implements encoding.TextMarshaler.
func (d *Decimal) MarshalText() ([]byte, error) {
	return d.Append(nil, 'f'), nil
}

// MarshalJSON encodes the plain form as a JSON string.
func (d *Decimal) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.Text('f')), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	_, _, err := d.SetString(string(text))
	return err
}

// UnmarshalJSON accepts a JSON string or number.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if s, err := strconv.Unquote(string(data)); err == nil {
		return d.UnmarshalText([]byte(s))
	}
	return d.UnmarshalText(data)
}
