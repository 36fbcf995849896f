// Package money provides the decimal monetary value type all aggregation
// math is performed with. Arithmetic runs at full internal precision; only
// the display and storage serializations round.
package money

import (
	"database/sql/driver"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "takatrack/internal/errors"
)

// displayScale is the number of fractional digits in display output.
const displayScale = 2

// divisionScale bounds the precision of division results. It is a package
// constant rather than the process-global decimal.DivisionPrecision so that
// concurrent callers cannot change each other's rounding behavior.
const divisionScale = 28

// Money is an immutable decimal amount. The zero value is zero money.
// Operations never mutate the receiver.
type Money struct {
	d decimal.Decimal
}

// amountCleaner strips currency glyphs, grouping commas and whitespace so
// inputs like "৳1,200.50" and "$ 99" parse.
var amountCleaner = strings.NewReplacer("৳", "", "$", "", ",", "", " ", "", "\t", "")

// Parse builds a Money from a user-entered amount string. It accepts plain
// numerics, comma-grouped strings and strings prefixed with a currency glyph.
func Parse(s string) (Money, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return Money{}, &apperrors.ErrInvalidAmount{Input: s}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, &apperrors.ErrInvalidAmount{Input: s}
	}
	return Money{d: d}, nil
}

// MustParse is Parse that panics on error, for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromDecimal wraps an existing decimal without changing its precision.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// FromInt builds a Money from an integer amount.
func FromInt(n int64) Money {
	return Money{d: decimal.NewFromInt(n)}
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

// Mul returns m scaled by factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{d: m.d.Mul(factor)}
}

// Div returns m divided by factor. A zero divisor is an error, never a
// silent Infinity or NaN.
func (m Money) Div(factor decimal.Decimal) (Money, error) {
	if factor.IsZero() {
		return Money{}, apperrors.ErrDivisionByZero
	}
	return Money{d: m.d.DivRound(factor, divisionScale)}, nil
}

// PercentageOf returns value × percent ÷ 100.
func (m Money) PercentageOf(percent decimal.Decimal) Money {
	return Money{d: m.d.Mul(percent).DivRound(decimal.NewFromInt(100), divisionScale)}
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	return Money{d: m.d.Abs()}
}

// Neg returns the negated value.
func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

func (m Money) IsZero() bool     { return m.d.IsZero() }
func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Equal reports numeric equality: Money("1.50") equals Money("1.5").
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }
func (m Money) LessThan(o Money) bool    { return m.d.LessThan(o.d) }

// Cmp compares m and o, returning -1, 0 or 1.
func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

// Ratio returns m ÷ o × 100 as a decimal percentage. Callers that need the
// documented zero-denominator policy (0%, not an error) must check o first.
func (m Money) Ratio(o Money) (decimal.Decimal, error) {
	if o.IsZero() {
		return decimal.Decimal{}, apperrors.ErrDivisionByZero
	}
	return m.d.DivRound(o.d, divisionScale).Mul(decimal.NewFromInt(100)), nil
}

// DisplayString renders the amount with exactly two fractional digits,
// rounded half-up. This is one of only two rounding points.
func (m Money) DisplayString() string {
	return m.d.StringFixed(displayScale)
}

// StorageValue returns the full-precision decimal for persistence. Nothing
// is rounded on the storage path.
func (m Money) StorageValue() decimal.Decimal {
	return m.d
}

// String renders the full-precision value, for logs and debugging.
func (m Money) String() string {
	return m.d.String()
}

// Sum accumulates amounts in decimal space, never floating point, so totals
// do not drift across many small entries. Order independent.
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.d)
	}
	return Money{d: total}
}

// Value implements driver.Valuer so Money persists as a decimal column.
func (m Money) Value() (driver.Value, error) {
	return m.d.Value()
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value interface{}) error {
	return m.d.Scan(value)
}

// MarshalJSON renders the display serialization; API consumers get the
// rounded 2-decimal string, never an intermediate precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.DisplayString() + `"`), nil
}

// UnmarshalJSON accepts both quoted amount strings and bare JSON numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
