package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in an unspecified currency
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Whole rounds the amount to whole currency units, half away from zero
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// AfterTax returns the amount left once a fractional tax rate is deducted
func (m Money) AfterTax(rate decimal.Decimal) Money {
	return Money{m.Decimal.Sub(m.Decimal.Mul(rate))}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped renders the amount rounded to whole units with comma thousands
// separators, e.g. 75937 -> "75,937".
func (m Money) Grouped() string {
	digits := m.Decimal.Abs().StringFixed(0)
	var b strings.Builder
	if m.Whole().IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
