package output

import (
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// VerdictText renders the one-line verdict shown under the results, e.g.
// "Mutual Fund is better by 9.1% in annual post-tax retirement income."
func VerdictText(v domain.Verdict) string {
	if v.IsIndeterminate() {
		return fmt.Sprintf("Comparison is indeterminate: %s.", v.Reason)
	}
	return fmt.Sprintf("%s is better by %s in annual post-tax retirement income.",
		v.Winner.DisplayName(), FormatPercentage(v.Advantage))
}

// RouteRow is the flattened, display-ready view of one route shared by the
// text, CSV and HTML formatters.
type RouteRow struct {
	Name             string
	MonthlyInvested  string
	Corpus           string
	Withdrawable     string
	Annuitized       string
	AnnuityIncome    string
	WithdrawalIncome string
	TotalIncome      string
}

// RouteRows returns the pension row followed by the mutual fund row.
func RouteRows(result *domain.ComparisonResult) []RouteRow {
	rows := make([]RouteRow, 0, 2)
	for _, r := range []domain.Route{domain.RoutePension, domain.RouteMutualFund} {
		sum := result.Summary(r)
		row := RouteRow{
			Name:             r.DisplayName(),
			MonthlyInvested:  FormatAmount(sum.Corpus.MonthlyInvestment),
			Corpus:           FormatAmount(sum.Corpus.Value),
			Withdrawable:     FormatAmount(sum.Corpus.Value),
			Annuitized:       "0",
			AnnuityIncome:    FormatAmount(sum.Income.AnnuityIncome),
			WithdrawalIncome: FormatAmount(sum.Income.WithdrawalIncome),
			TotalIncome:      FormatAmount(sum.Income.Total),
		}
		if sum.Split != nil {
			row.Withdrawable = FormatAmount(sum.Split.Withdrawable)
			row.Annuitized = FormatAmount(sum.Split.Annuitized)
		}
		rows = append(rows, row)
	}
	return rows
}
