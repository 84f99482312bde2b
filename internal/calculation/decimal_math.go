package calculation

import "github.com/shopspring/decimal"

// Precision is the number of fractional digits kept in intermediate results.
const Precision int32 = 24

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// powInt raises base to an integer exponent by square-and-multiply, rounding
// every intermediate product to Precision digits so long horizons stay cheap.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	if exp < 0 {
		return one.DivRound(powInt(base, -exp), Precision)
	}
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(Precision)
		}
		base = base.Mul(base).Round(Precision)
		exp >>= 1
	}
	return result
}
