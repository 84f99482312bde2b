package output

import (
	money "github.com/rpgo/pension-fund-comparator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a currency amount rounded to whole units with
// thousands separators, e.g. 75936.88 -> "75,937".
func FormatAmount(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Grouped()
}

// FormatPercentage formats a percentage with one decimal.
func FormatPercentage(pct decimal.Decimal) string { return pct.StringFixed(1) + "%" }

// FormatRate formats an input rate as entered, e.g. 11.5 -> "11.5%".
func FormatRate(pct decimal.Decimal) string { return pct.String() + "%" }
