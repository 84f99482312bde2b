package main

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// decimalValue lets pflag parse decimals without a float round-trip.
type decimalValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = decimalValue{}

func (v decimalValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string { return "decimal" }

// flagName turns a parameter key into its flag spelling.
func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

// parameterFlags binds one flag per InputParameters field. Values start at
// defaults; apply copies only the flags the user set onto a base.
type parameterFlags struct {
	values domain.InputParameters
	fs     *pflag.FlagSet
}

func bindParameterFlags(fs *pflag.FlagSet, defaults domain.InputParameters) *parameterFlags {
	pf := &parameterFlags{values: defaults, fs: fs}
	v := &pf.values

	fs.Var(decimalValue{&v.MonthlyContribution}, flagName(domain.ParamMonthlyContribution), "amount contributed each month")
	fs.IntVar(&v.YearsToRetirement, flagName(domain.ParamYearsToRetirement), v.YearsToRetirement, "years of contributions")
	fs.IntVar(&v.YearsInRetirement, flagName(domain.ParamYearsInRetirement), v.YearsInRetirement, "years the corpus must last")
	fs.Var(decimalValue{&v.PreRetirementTaxRate}, flagName(domain.ParamPreRetirementTaxRate), "income tax rate while working (%)")
	fs.Var(decimalValue{&v.PostRetirementTaxRate}, flagName(domain.ParamPostRetirementTaxRate), "income tax rate on annuity income (%)")
	fs.Var(decimalValue{&v.PensionReturn}, flagName(domain.ParamPensionReturn), "NPS annual return (%)")
	fs.Var(decimalValue{&v.FundReturnPreRetirement}, flagName(domain.ParamFundReturnPreRetirement), "fund annual return before retirement (%)")
	fs.Var(decimalValue{&v.FundReturnPostRetirement}, flagName(domain.ParamFundReturnPostRetirement), "annual return on invested corpus after retirement (%)")
	fs.Var(decimalValue{&v.AnnuityRate}, flagName(domain.ParamAnnuityRate), "annuity payout rate (%)")
	fs.Var(decimalValue{&v.WithdrawalTaxRate}, flagName(domain.ParamWithdrawalTaxRate), "effective capital gains tax on withdrawals (%)")
	return pf
}

// apply overlays explicitly set flags onto base.
func (pf *parameterFlags) apply(base domain.InputParameters) domain.InputParameters {
	out := base
	set := func(param string, copyField func()) {
		if pf.fs.Changed(flagName(param)) {
			copyField()
		}
	}
	v := pf.values
	set(domain.ParamMonthlyContribution, func() { out.MonthlyContribution = v.MonthlyContribution })
	set(domain.ParamYearsToRetirement, func() { out.YearsToRetirement = v.YearsToRetirement })
	set(domain.ParamYearsInRetirement, func() { out.YearsInRetirement = v.YearsInRetirement })
	set(domain.ParamPreRetirementTaxRate, func() { out.PreRetirementTaxRate = v.PreRetirementTaxRate })
	set(domain.ParamPostRetirementTaxRate, func() { out.PostRetirementTaxRate = v.PostRetirementTaxRate })
	set(domain.ParamPensionReturn, func() { out.PensionReturn = v.PensionReturn })
	set(domain.ParamFundReturnPreRetirement, func() { out.FundReturnPreRetirement = v.FundReturnPreRetirement })
	set(domain.ParamFundReturnPostRetirement, func() { out.FundReturnPostRetirement = v.FundReturnPostRetirement })
	set(domain.ParamAnnuityRate, func() { out.AnnuityRate = v.AnnuityRate })
	set(domain.ParamWithdrawalTaxRate, func() { out.WithdrawalTaxRate = v.WithdrawalTaxRate })
	return out
}
