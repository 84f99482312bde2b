package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	money "github.com/rpgo/pension-fund-comparator/pkg/decimal"
)

// ResultCache memoizes projections on the full input tuple. Implementations
// must treat misses and backend failures the same way: return false.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.ComparisonResult, bool)
	Set(ctx context.Context, key string, result *domain.ComparisonResult)
}

// ProjectionEngine runs the pension vs mutual fund comparison.
type ProjectionEngine struct {
	Allocator *CorpusAllocator
	Cache     ResultCache
	// BreakEven enables the break-even pension return search on every run.
	BreakEven bool
	Logger    Logger
}

// NewProjectionEngine creates an engine using the default 60/40 policy.
func NewProjectionEngine() *ProjectionEngine {
	allocator, err := NewCorpusAllocator(DefaultAllocationPolicy)
	if err != nil {
		panic(fmt.Sprintf("default allocation policy: %v", err))
	}
	return &ProjectionEngine{
		Allocator: allocator,
		Logger:    NopLogger{},
	}
}

// NewProjectionEngineWithPolicy creates an engine with a custom split policy.
func NewProjectionEngineWithPolicy(policy AllocationPolicy) (*ProjectionEngine, error) {
	allocator, err := NewCorpusAllocator(policy)
	if err != nil {
		return nil, err
	}
	return &ProjectionEngine{Allocator: allocator, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// SetCache enables memoization. A nil cache disables it.
func (pe *ProjectionEngine) SetCache(c ResultCache) {
	pe.Cache = c
}

// Project validates params and computes both routes, their incomes and the
// verdict. Invalid parameters yield an error matching domain.ErrInvalidInput;
// an indeterminate comparison is reported in the verdict, not as an error.
func (pe *ProjectionEngine) Project(ctx context.Context, params domain.InputParameters) (*domain.ComparisonResult, error) {
	if err := params.Validate(); err != nil {
		pe.Logger.Debugf("rejecting parameters: %v", err)
		return nil, err
	}

	key := pe.cacheKey(params)
	if pe.Cache != nil {
		if cached, ok := pe.Cache.Get(ctx, key); ok {
			pe.Logger.Debugf("projection cache hit for %s", key)
			return cached, nil
		}
	}

	result, err := pe.project(params)
	if err != nil {
		return nil, err
	}

	if pe.BreakEven {
		if be, err := pe.BreakEvenPensionReturn(params); err == nil {
			result.BreakEven = be
		} else {
			pe.Logger.Debugf("break-even search skipped: %v", err)
		}
	}

	if pe.Cache != nil {
		pe.Cache.Set(ctx, key, result)
	}
	return result, nil
}

// project is the uncached pipeline. params must already be valid.
func (pe *ProjectionEngine) project(params domain.InputParameters) (*domain.ComparisonResult, error) {
	preTax := domain.Fraction(params.PreRetirementTaxRate)
	postTax := domain.Fraction(params.PostRetirementTaxRate)
	withdrawalTax := domain.Fraction(params.WithdrawalTaxRate)
	fundPost := domain.Fraction(params.FundReturnPostRetirement)

	// The pension route invests pre-tax money; the fund route invests what is
	// left after income tax.
	fundMonthly := money.NewMoneyFromDecimal(params.MonthlyContribution).AfterTax(preTax).Decimal

	pensionCorpus, err := AccumulateCorpus(domain.RoutePension, params.MonthlyContribution, domain.Fraction(params.PensionReturn), params.YearsToRetirement)
	if err != nil {
		return nil, fmt.Errorf("pension corpus: %w", err)
	}
	fundCorpus, err := AccumulateCorpus(domain.RouteMutualFund, fundMonthly, domain.Fraction(params.FundReturnPreRetirement), params.YearsToRetirement)
	if err != nil {
		return nil, fmt.Errorf("mutual fund corpus: %w", err)
	}

	split := pe.Allocator.Split(pensionCorpus.Value)

	annuity := NewAnnuityModel(domain.Fraction(params.AnnuityRate), postTax)
	drawdown := NewSystematicWithdrawalModel(fundPost, params.YearsInRetirement, withdrawalTax)

	pensionIncome := EstimateIncome(domain.RoutePension, pensionCorpus, &split, annuity, drawdown)
	fundIncome := EstimateIncome(domain.RouteMutualFund, fundCorpus, nil, annuity, drawdown)

	pe.Logger.Debugf("pension corpus=%s income=%s; fund corpus=%s income=%s",
		pensionCorpus.Value.StringFixed(2), pensionIncome.Total.StringFixed(2),
		fundCorpus.Value.StringFixed(2), fundIncome.Total.StringFixed(2))

	return &domain.ComparisonResult{
		Parameters: params,
		Allocation: pe.Allocator.Policy().String(),
		Pension:    domain.RouteSummary{Corpus: pensionCorpus, Split: &split, Income: pensionIncome},
		MutualFund: domain.RouteSummary{Corpus: fundCorpus, Income: fundIncome},
		Verdict:    CompareIncomes(pensionIncome, fundIncome),
	}, nil
}

func (pe *ProjectionEngine) cacheKey(params domain.InputParameters) string {
	return fmt.Sprintf("%s|%s|be=%t", params.CacheKey(), pe.Allocator.Policy(), pe.BreakEven)
}
