package calculation

import (
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CompareIncomes picks the route with the higher total post-tax income and
// computes its advantage as (winner / loser - 1) * 100. Ties go to the
// mutual fund route with a 0% advantage. When either total is zero or
// negative the verdict is indeterminate.
func CompareIncomes(pension, fund domain.IncomeResult) domain.Verdict {
	switch {
	case !pension.Total.IsPositive() && !fund.Total.IsPositive():
		return domain.Verdict{Outcome: domain.OutcomeIndeterminate, Reason: "neither route produces a positive income"}
	case !pension.Total.IsPositive():
		return domain.Verdict{Outcome: domain.OutcomeIndeterminate, Reason: "the NPS route produces no positive income"}
	case !fund.Total.IsPositive():
		return domain.Verdict{Outcome: domain.OutcomeIndeterminate, Reason: "the Mutual Fund route produces no positive income"}
	}

	winner, loser := fund, pension
	if pension.Total.GreaterThan(fund.Total) {
		winner, loser = pension, fund
	}
	advantage := winner.Total.DivRound(loser.Total, Precision).Sub(one).Mul(hundred)
	return domain.Verdict{
		Outcome:   domain.OutcomeDecided,
		Winner:    winner.Route,
		Loser:     loser.Route,
		Advantage: advantage,
	}
}
