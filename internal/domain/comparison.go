package domain

import (
	"github.com/shopspring/decimal"
)

// Route identifies one of the two savings strategies being compared.
type Route string

const (
	RoutePension    Route = "pension"
	RouteMutualFund Route = "mutual_fund"
)

// DisplayName returns the label used in rendered verdicts.
func (r Route) DisplayName() string {
	switch r {
	case RoutePension:
		return "NPS"
	case RouteMutualFund:
		return "Mutual Fund"
	default:
		return string(r)
	}
}

// CorpusResult is the accumulated value of one route at retirement.
type CorpusResult struct {
	Route Route `json:"route" yaml:"route"`
	// MonthlyInvestment is the amount actually invested each month after
	// any up-front tax.
	MonthlyInvestment decimal.Decimal `json:"monthly_investment" yaml:"monthly_investment"`
	Value             decimal.Decimal `json:"value" yaml:"value"`
}

// AllocationSplit divides a corpus into a withdrawable (invested) part and
// an annuitised part.
type AllocationSplit struct {
	Withdrawable decimal.Decimal `json:"withdrawable" yaml:"withdrawable"`
	Annuitized   decimal.Decimal `json:"annuitized" yaml:"annuitized"`
}

// Total returns the sum of both parts.
func (s AllocationSplit) Total() decimal.Decimal {
	return s.Withdrawable.Add(s.Annuitized)
}

// IncomeResult is the post-tax annual income a route sustains in retirement.
type IncomeResult struct {
	Route            Route           `json:"route" yaml:"route"`
	AnnuityIncome    decimal.Decimal `json:"annuity_income" yaml:"annuity_income"`
	WithdrawalIncome decimal.Decimal `json:"withdrawal_income" yaml:"withdrawal_income"`
	Total            decimal.Decimal `json:"total" yaml:"total"`
}

// RouteSummary groups every figure computed for a single route.
type RouteSummary struct {
	Corpus CorpusResult     `json:"corpus" yaml:"corpus"`
	Split  *AllocationSplit `json:"split,omitempty" yaml:"split,omitempty"`
	Income IncomeResult     `json:"income" yaml:"income"`
}

// VerdictOutcome distinguishes a decided comparison from an indeterminate one.
type VerdictOutcome string

const (
	OutcomeDecided       VerdictOutcome = "decided"
	OutcomeIndeterminate VerdictOutcome = "indeterminate"
)

// Verdict names the better route and by how much (percent) its income
// exceeds the other route's.
type Verdict struct {
	Outcome   VerdictOutcome  `json:"outcome" yaml:"outcome"`
	Winner    Route           `json:"winner,omitempty" yaml:"winner,omitempty"`
	Loser     Route           `json:"loser,omitempty" yaml:"loser,omitempty"`
	Advantage decimal.Decimal `json:"advantage_percent" yaml:"advantage_percent"`
	Reason    string          `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// IsIndeterminate reports whether no winner could be determined.
func (v Verdict) IsIndeterminate() bool {
	return v.Outcome == OutcomeIndeterminate
}

// Err returns ErrIndeterminateComparison for an indeterminate verdict.
func (v Verdict) Err() error {
	if v.IsIndeterminate() {
		return ErrIndeterminateComparison
	}
	return nil
}

// BreakEven is the pension return at which both routes yield equal income.
type BreakEven struct {
	PensionReturn decimal.Decimal `json:"pension_return" yaml:"pension_return"`
	Income        decimal.Decimal `json:"income" yaml:"income"`
	Iterations    int             `json:"iterations" yaml:"iterations"`
}

// ComparisonResult is the complete output of one projection.
type ComparisonResult struct {
	Parameters InputParameters `json:"parameters" yaml:"parameters"`
	// Allocation describes the pension split as "withdrawable/annuity" percent.
	Allocation string       `json:"allocation" yaml:"allocation"`
	Pension    RouteSummary `json:"pension" yaml:"pension"`
	MutualFund RouteSummary `json:"mutual_fund" yaml:"mutual_fund"`
	Verdict    Verdict      `json:"verdict" yaml:"verdict"`
	BreakEven  *BreakEven   `json:"break_even,omitempty" yaml:"break_even,omitempty"`
}

// Summary returns the summary for the given route.
func (c *ComparisonResult) Summary(r Route) RouteSummary {
	if r == RoutePension {
		return c.Pension
	}
	return c.MutualFund
}

// Clone returns a deep copy. Split and BreakEven are pointers, so a plain
// struct copy would share them with the receiver.
func (c *ComparisonResult) Clone() *ComparisonResult {
	if c == nil {
		return nil
	}
	out := *c
	out.Pension.Split = c.Pension.Split.clone()
	out.MutualFund.Split = c.MutualFund.Split.clone()
	if c.BreakEven != nil {
		be := *c.BreakEven
		out.BreakEven = &be
	}
	return &out
}

func (s *AllocationSplit) clone() *AllocationSplit {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
