package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents stores a monetary amount as an integer number of minor units,
// so comparisons against a wish price are exact and MongoDB can apply
// $inc to it atomically.
type Cents int64

var hundred = decimal.New(100, 0)

// FromDecimal converts a decimal amount to Cents. Amounts with more than
// two fraction digits are rejected rather than rounded.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	scaled := d.Mul(hundred)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than two decimal places", d.String())
	}
	return Cents(scaled.IntPart()), nil
}

// Parse converts a decimal string such as "100.00" to Cents.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return FromDecimal(d)
}

// Decimal returns the amount as a decimal with two fraction digits.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount as a plain JSON number with two
// fraction digits, e.g. 100.00.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
