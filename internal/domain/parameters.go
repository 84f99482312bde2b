package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InputParameters holds the user-supplied assumptions for a single comparison.
// All rates are expressed as percentages (10 means 10%).
type InputParameters struct {
	MonthlyContribution      decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	YearsToRetirement        int             `yaml:"years_to_retirement" json:"years_to_retirement"`
	YearsInRetirement        int             `yaml:"years_in_retirement" json:"years_in_retirement"`
	PreRetirementTaxRate     decimal.Decimal `yaml:"pre_retirement_tax_rate" json:"pre_retirement_tax_rate"`
	PostRetirementTaxRate    decimal.Decimal `yaml:"post_retirement_tax_rate" json:"post_retirement_tax_rate"`
	PensionReturn            decimal.Decimal `yaml:"pension_return" json:"pension_return"`
	FundReturnPreRetirement  decimal.Decimal `yaml:"fund_return_pre_retirement" json:"fund_return_pre_retirement"`
	FundReturnPostRetirement decimal.Decimal `yaml:"fund_return_post_retirement" json:"fund_return_post_retirement"`
	AnnuityRate              decimal.Decimal `yaml:"annuity_rate" json:"annuity_rate"`
	WithdrawalTaxRate        decimal.Decimal `yaml:"withdrawal_tax_rate" json:"withdrawal_tax_rate"`
}

// Parameter keys, shared by validation messages, CLI flags and form fields.
const (
	ParamMonthlyContribution      = "monthly_contribution"
	ParamYearsToRetirement        = "years_to_retirement"
	ParamYearsInRetirement        = "years_in_retirement"
	ParamPreRetirementTaxRate     = "pre_retirement_tax_rate"
	ParamPostRetirementTaxRate    = "post_retirement_tax_rate"
	ParamPensionReturn            = "pension_return"
	ParamFundReturnPreRetirement  = "fund_return_pre_retirement"
	ParamFundReturnPostRetirement = "fund_return_post_retirement"
	ParamAnnuityRate              = "annuity_rate"
	ParamWithdrawalTaxRate        = "withdrawal_tax_rate"
)

var (
	hundred        = decimal.NewFromInt(100)
	minReturnRate  = decimal.NewFromInt(-100)
	percentCeiling = decimal.NewFromInt(100)
)

// Validate checks every parameter against its documented domain and returns
// an *InputError naming the first offending parameter.
func (p InputParameters) Validate() error {
	if p.MonthlyContribution.IsNegative() {
		return NewInputError(ParamMonthlyContribution, "must not be negative")
	}
	if p.YearsToRetirement < 1 {
		return NewInputError(ParamYearsToRetirement, "must be at least 1 year")
	}
	if p.YearsInRetirement < 1 {
		return NewInputError(ParamYearsInRetirement, "must be at least 1 year")
	}

	taxRates := []struct {
		name string
		rate decimal.Decimal
	}{
		{ParamPreRetirementTaxRate, p.PreRetirementTaxRate},
		{ParamPostRetirementTaxRate, p.PostRetirementTaxRate},
		{ParamWithdrawalTaxRate, p.WithdrawalTaxRate},
	}
	for _, tr := range taxRates {
		if tr.rate.IsNegative() || tr.rate.GreaterThan(percentCeiling) {
			return NewInputError(tr.name, "must be between 0 and 100 percent")
		}
	}

	// Returns may exceed 100% but a -100% return wipes out the corpus and
	// makes the drawdown formula undefined.
	returns := []struct {
		name string
		rate decimal.Decimal
	}{
		{ParamPensionReturn, p.PensionReturn},
		{ParamFundReturnPreRetirement, p.FundReturnPreRetirement},
		{ParamFundReturnPostRetirement, p.FundReturnPostRetirement},
	}
	for _, r := range returns {
		if r.rate.LessThanOrEqual(minReturnRate) {
			return NewInputError(r.name, "must be greater than -100 percent")
		}
	}

	if p.AnnuityRate.IsNegative() {
		return NewInputError(ParamAnnuityRate, "must not be negative")
	}
	return nil
}

// CacheKey returns a canonical string for the full input tuple.
func (p InputParameters) CacheKey() string {
	parts := []string{
		p.MonthlyContribution.String(),
		fmt.Sprint(p.YearsToRetirement),
		fmt.Sprint(p.YearsInRetirement),
		p.PreRetirementTaxRate.String(),
		p.PostRetirementTaxRate.String(),
		p.PensionReturn.String(),
		p.FundReturnPreRetirement.String(),
		p.FundReturnPostRetirement.String(),
		p.AnnuityRate.String(),
		p.WithdrawalTaxRate.String(),
	}
	return strings.Join(parts, "|")
}

// Fraction converts a percentage to a fraction (10 -> 0.10).
func Fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}
