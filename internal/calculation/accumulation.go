package calculation

import (
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
)

// FutureValue returns the value after contributing monthly for the given
// number of years with monthly compounding at annualRate (a fraction):
//
//	FV = p * ((1 + r/12)^(12n) - 1) / (r/12)
//
// A zero rate accumulates linearly (p * 12 * n) instead of dividing by zero.
func FutureValue(monthly, annualRate decimal.Decimal, years int) (decimal.Decimal, error) {
	if monthly.IsNegative() {
		return decimal.Zero, domain.NewInputError("monthly contribution", "must not be negative")
	}
	if years < 1 {
		return decimal.Zero, domain.NewInputError("years", "must be at least 1")
	}
	if annualRate.LessThanOrEqual(one.Neg()) {
		return decimal.Zero, domain.NewInputError("annual rate", "must be greater than -100%")
	}

	months := 12 * years
	if annualRate.IsZero() {
		return monthly.Mul(decimal.NewFromInt(int64(months))), nil
	}

	monthlyRate := annualRate.DivRound(twelve, Precision)
	growth := powInt(one.Add(monthlyRate), months).Sub(one)
	return monthly.Mul(growth).DivRound(monthlyRate, Precision), nil
}

// AccumulateCorpus runs FutureValue for a route and wraps the result.
func AccumulateCorpus(route domain.Route, monthly, annualRate decimal.Decimal, years int) (domain.CorpusResult, error) {
	value, err := FutureValue(monthly, annualRate, years)
	if err != nil {
		return domain.CorpusResult{}, err
	}
	return domain.CorpusResult{Route: route, MonthlyInvestment: monthly, Value: value}, nil
}
