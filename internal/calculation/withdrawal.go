package calculation

import (
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
)

// WithdrawalModel turns a retirement corpus into a post-tax annual income.
type WithdrawalModel interface {
	AnnualIncome(corpus decimal.Decimal) decimal.Decimal
}

// AnnuityModel converts a lump sum into a fixed payout taxed as income.
type AnnuityModel struct {
	PayoutRate decimal.Decimal // fraction of principal paid each year
	TaxRate    decimal.Decimal // fraction
}

// NewAnnuityModel creates an AnnuityModel from fractional rates.
func NewAnnuityModel(payoutRate, taxRate decimal.Decimal) *AnnuityModel {
	return &AnnuityModel{PayoutRate: payoutRate, TaxRate: taxRate}
}

// AnnualIncome returns corpus * payoutRate * (1 - taxRate).
func (am *AnnuityModel) AnnualIncome(corpus decimal.Decimal) decimal.Decimal {
	return nonNegative(corpus.Mul(am.PayoutRate).Mul(one.Sub(am.TaxRate)))
}

// SystematicWithdrawalModel draws a level annual amount that exhausts the
// corpus after Years years while the balance keeps earning Return.
type SystematicWithdrawalModel struct {
	Return  decimal.Decimal // fraction
	Years   int
	TaxRate decimal.Decimal // effective tax on withdrawals, fraction
}

// NewSystematicWithdrawalModel creates a SystematicWithdrawalModel from
// fractional rates.
func NewSystematicWithdrawalModel(annualReturn decimal.Decimal, years int, taxRate decimal.Decimal) *SystematicWithdrawalModel {
	return &SystematicWithdrawalModel{Return: annualReturn, Years: years, TaxRate: taxRate}
}

// AnnualIncome returns the level withdrawal net of the withdrawal tax.
func (sw *SystematicWithdrawalModel) AnnualIncome(corpus decimal.Decimal) decimal.Decimal {
	gross := AmortizedWithdrawal(corpus, sw.Return, sw.Years)
	return nonNegative(gross.Mul(one.Sub(sw.TaxRate)))
}

// AmortizedWithdrawal returns the end-of-year payment that depletes corpus
// over years at annualRate:
//
//	W = C * r / (1 - (1+r)^(-n))
//
// A zero rate depletes the corpus in straight line (C / n). Callers must pass
// years >= 1 and annualRate > -1; AmortizedWithdrawal returns zero otherwise.
func AmortizedWithdrawal(corpus, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years < 1 || annualRate.LessThanOrEqual(one.Neg()) {
		return decimal.Zero
	}
	if annualRate.IsZero() {
		return corpus.DivRound(decimal.NewFromInt(int64(years)), Precision)
	}
	discount := one.Sub(powInt(one.Add(annualRate), -years))
	return corpus.Mul(annualRate).DivRound(discount, Precision)
}

// EstimateIncome applies the annuity model to the annuitised part of a split
// and the withdrawal model to the rest. A nil split means the whole corpus is
// drawn down systematically.
func EstimateIncome(route domain.Route, corpus domain.CorpusResult, split *domain.AllocationSplit, annuity, withdrawal WithdrawalModel) domain.IncomeResult {
	result := domain.IncomeResult{Route: route}
	if split == nil {
		result.WithdrawalIncome = withdrawal.AnnualIncome(corpus.Value)
	} else {
		result.AnnuityIncome = annuity.AnnualIncome(split.Annuitized)
		result.WithdrawalIncome = withdrawal.AnnualIncome(split.Withdrawable)
	}
	result.Total = result.AnnuityIncome.Add(result.WithdrawalIncome)
	return result
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
