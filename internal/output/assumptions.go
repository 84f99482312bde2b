package output

import (
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a result, using
// the actual parameter values.
func GenerateAssumptions(result *domain.ComparisonResult) []string {
	p := result.Parameters
	return []string{
		fmt.Sprintf("Contributions are made monthly for %d years and compound monthly.", p.YearsToRetirement),
		fmt.Sprintf("NPS invests the full pre-tax amount; the mutual fund invests what remains after %s income tax.", FormatRate(p.PreRetirementTaxRate)),
		fmt.Sprintf("At retirement the NPS corpus is split %s between a systematic withdrawal plan and an annuity.", result.Allocation),
		fmt.Sprintf("Annuity pays %s a year, taxed at %s.", FormatRate(p.AnnuityRate), FormatRate(p.PostRetirementTaxRate)),
		fmt.Sprintf("Invested corpus earns %s a year and is drawn down evenly over %d years.", FormatRate(p.FundReturnPostRetirement), p.YearsInRetirement),
		fmt.Sprintf("Withdrawals bear a flat effective capital gains tax of %s.", FormatRate(p.WithdrawalTaxRate)),
		"Returns are constant; inflation, market risk and changes to tax law are ignored.",
	}
}
