package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	money "github.com/rpgo/pension-fund-comparator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes one row per route with amounts in cents.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Route", "MonthlyInvestment", "Corpus", "Withdrawable", "Annuitized", "AnnuityIncome", "WithdrawalIncome", "TotalIncome", "Winner", "AdvantagePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range []domain.Route{domain.RoutePension, domain.RouteMutualFund} {
		sum := result.Summary(r)
		withdrawable, annuitized := cents(sum.Corpus.Value), cents(decimal.Zero)
		if sum.Split != nil {
			withdrawable = cents(sum.Split.Withdrawable)
			annuitized = cents(sum.Split.Annuitized)
		}
		winner, advantage := "", ""
		if !result.Verdict.IsIndeterminate() && result.Verdict.Winner == r {
			winner = "yes"
			advantage = result.Verdict.Advantage.StringFixed(2)
		}
		row := []string{
			r.DisplayName(),
			cents(sum.Corpus.MonthlyInvestment),
			cents(sum.Corpus.Value),
			withdrawable,
			annuitized,
			cents(sum.Income.AnnuityIncome),
			cents(sum.Income.WithdrawalIncome),
			cents(sum.Income.Total),
			winner,
			advantage,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func cents(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).String()
}
