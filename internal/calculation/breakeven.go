package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoBreakEven is returned when the search interval does not bracket a
// pension return at which both routes pay the same income.
var ErrNoBreakEven = errors.New("no break-even pension return in search range")

var (
	breakEvenMinReturn = decimal.NewFromInt(-50)
	breakEvenMaxReturn = decimal.NewFromInt(100)
	breakEvenTolerance = decimal.NewFromFloat(0.0001)
)

const breakEvenMaxIterations = 100

// BreakEvenPensionReturn bisects the pension pre-retirement return (percent)
// until both routes' incomes match. Pension income grows monotonically with
// its return, so a sign change across the interval brackets a single root.
func (pe *ProjectionEngine) BreakEvenPensionReturn(params domain.InputParameters) (*domain.BreakEven, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !params.MonthlyContribution.IsPositive() {
		return nil, fmt.Errorf("%w: nothing is invested", ErrNoBreakEven)
	}

	gap := func(pensionReturn decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
		p := params
		p.PensionReturn = pensionReturn
		res, err := pe.project(p)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		return res.Pension.Income.Total.Sub(res.MutualFund.Income.Total), res.MutualFund.Income.Total, nil
	}

	low, high := breakEvenMinReturn, breakEvenMaxReturn
	lowGap, _, err := gap(low)
	if err != nil {
		return nil, err
	}
	highGap, _, err := gap(high)
	if err != nil {
		return nil, err
	}
	if lowGap.IsPositive() || highGap.IsNegative() {
		return nil, fmt.Errorf("%w [%s%%, %s%%]", ErrNoBreakEven, low, high)
	}

	var mid, income decimal.Decimal
	iterations := 0
	for iterations < breakEvenMaxIterations {
		iterations++
		mid = low.Add(high).Div(decimal.NewFromInt(2))
		midGap, fundIncome, err := gap(mid)
		if err != nil {
			return nil, err
		}
		income = fundIncome
		if midGap.IsZero() || high.Sub(low).LessThan(breakEvenTolerance) {
			break
		}
		if midGap.IsNegative() {
			low = mid
		} else {
			high = mid
		}
	}

	pe.Logger.Debugf("break-even pension return %s%% after %d iterations", mid.StringFixed(4), iterations)
	return &domain.BreakEven{PensionReturn: mid, Income: income, Iterations: iterations}, nil
}
