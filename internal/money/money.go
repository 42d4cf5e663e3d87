package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by every Money value.
const Scale = 2

var (
	ErrInvalidAmount = errors.New("invalid amount")

	// MaxAmount is the largest magnitude a numeric(14,2) column holds.
	MaxAmount = Money{d: decimal.New(99999999999999, -Scale)}

	settledEpsilon = decimal.New(5, -3)
	hundred        = decimal.NewFromInt(100)
)

// Money is an exact decimal amount with two fractional digits.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{}

// FromDecimalString parses a signed decimal string such as "-12.5" or "30.00".
// Exponent notation, more than two fractional digits and magnitudes above
// MaxAmount are rejected.
func FromDecimalString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if strings.ContainsAny(s, "eE") {
		return Money{}, fmt.Errorf("%w: %q uses exponent notation", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.Exponent() < -Scale {
		return Money{}, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidAmount, s, Scale)
	}
	m := Money{d: d.Round(Scale)}
	if m.Abs().GreaterThan(MaxAmount) {
		return Money{}, fmt.Errorf("%w: %q exceeds %s", ErrInvalidAmount, s, MaxAmount)
	}
	return m, nil
}

// ParseAmount parses a non-negative amount, the form used for expense totals,
// split amounts and settlements.
func ParseAmount(s string) (Money, error) {
	m, err := FromDecimalString(s)
	if err != nil {
		return Money{}, err
	}
	if m.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return m, nil
}

// MustParse is ParseAmount's signed sibling for constants and tests. It panics on error.
func MustParse(s string) Money {
	m, err := FromDecimalString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromMinorUnits builds a Money from a count of minor units (cents).
func FromMinorUnits(units int64) Money {
	return Money{d: decimal.New(units, -Scale)}
}

// FromDecimal rounds d half away from zero to the minor unit.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d.Round(Scale)}
}

// MinorUnits returns the amount as an integer count of cents. The result is
// exact for any amount within MaxAmount.
func (m Money) MinorUnits() int64 {
	return m.d.Shift(Scale).IntPart()
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

func (m Money) Abs() Money {
	return Money{d: m.d.Abs()}
}

// MultiplyByRatio returns m*ratio rounded half away from zero to the minor unit.
func (m Money) MultiplyByRatio(ratio decimal.Decimal) Money {
	return FromDecimal(m.d.Mul(ratio))
}

// MultiplyByPercent returns m*percent/100 rounded half away from zero.
func (m Money) MultiplyByPercent(percent decimal.Decimal) Money {
	return FromDecimal(m.d.Mul(percent).Div(hundred))
}

// Compare returns -1, 0 or +1.
func (m Money) Compare(o Money) int {
	return m.d.Cmp(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) LessThan(o Money) bool {
	return m.d.LessThan(o.d)
}

func (m Money) GreaterThan(o Money) bool {
	return m.d.GreaterThan(o.d)
}

// IsZero reports whether m is within half a minor unit of zero, i.e. settled.
func (m Money) IsZero() bool {
	return m.d.Abs().LessThan(settledEpsilon)
}

func (m Money) IsPositive() bool {
	return m.d.Sign() > 0
}

func (m Money) IsNegative() bool {
	return m.d.Sign() < 0
}

func (m Money) Sign() int {
	return m.d.Sign()
}

// String renders the canonical form: exactly two fractional digits, no exponent.
func (m Money) String() string {
	return m.d.StringFixed(Scale)
}

// Sum adds all amounts.
func Sum(amounts ...Money) Money {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MarshalJSON encodes Money as a decimal string so it survives the wire exactly.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: amounts must be JSON strings", ErrInvalidAmount)
	}
	parsed, err := FromDecimalString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores Money in a numeric column.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan reads a numeric column. Values with more than two fractional digits are
// rounded half away from zero.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("money: scan: %w", err)
	}
	*m = FromDecimal(d)
	return nil
}
