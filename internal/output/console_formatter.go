package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// ConsoleFormatter renders a plain-text side-by-side summary of both routes.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters
	rows := RouteRows(result)

	fmt.Fprintln(&buf, "NPS VS MUTUAL FUND RETIREMENT COMPARISON")
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "Monthly contribution: %s for %d years, drawn over %d years\n",
		FormatAmount(p.MonthlyContribution), p.YearsToRetirement, p.YearsInRetirement)
	fmt.Fprintf(&buf, "NPS allocation (withdrawable/annuity): %s\n", result.Allocation)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-26s %15s %15s\n", "", rows[0].Name, rows[1].Name)
	line := func(label string, get func(RouteRow) string) {
		fmt.Fprintf(&buf, "%-26s %15s %15s\n", label, get(rows[0]), get(rows[1]))
	}
	line("Monthly invested", func(r RouteRow) string { return r.MonthlyInvested })
	line("Corpus at retirement", func(r RouteRow) string { return r.Corpus })
	line("Withdrawable corpus", func(r RouteRow) string { return r.Withdrawable })
	line("Annuitized corpus", func(r RouteRow) string { return r.Annuitized })
	line("Annuity income (post-tax)", func(r RouteRow) string { return r.AnnuityIncome })
	line("Withdrawal income", func(r RouteRow) string { return r.WithdrawalIncome })
	line("Total annual income", func(r RouteRow) string { return r.TotalIncome })
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, VerdictText(result.Verdict))
	if be := result.BreakEven; be != nil {
		fmt.Fprintf(&buf, "Break-even NPS return: %s (income %s)\n",
			FormatPercentage(be.PensionReturn), FormatAmount(be.Income))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}
