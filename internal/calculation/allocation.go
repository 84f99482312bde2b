package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidAllocation is returned when an allocation policy's fractions are
// out of range or do not sum to one.
var ErrInvalidAllocation = errors.New("invalid allocation policy")

var allocationTolerance = decimal.New(1, -9)

// AllocationPolicy fixes how a pension corpus is divided at retirement.
type AllocationPolicy struct {
	WithdrawableFraction decimal.Decimal `yaml:"withdrawable_fraction" json:"withdrawable_fraction"`
	AnnuityFraction      decimal.Decimal `yaml:"annuity_fraction" json:"annuity_fraction"`
}

// DefaultAllocationPolicy keeps 60% invested and buys an annuity with 40%.
var DefaultAllocationPolicy = AllocationPolicy{
	WithdrawableFraction: decimal.NewFromFloat(0.6),
	AnnuityFraction:      decimal.NewFromFloat(0.4),
}

// Validate checks that both fractions lie in [0,1] and sum to 1.
func (p AllocationPolicy) Validate() error {
	fractions := []struct {
		name  string
		value decimal.Decimal
	}{
		{"withdrawable_fraction", p.WithdrawableFraction},
		{"annuity_fraction", p.AnnuityFraction},
	}
	for _, f := range fractions {
		if f.value.IsNegative() || f.value.GreaterThan(one) {
			return fmt.Errorf("%w: %s %s outside [0,1]", ErrInvalidAllocation, f.name, f.value)
		}
	}
	sum := p.WithdrawableFraction.Add(p.AnnuityFraction)
	if sum.Sub(one).Abs().GreaterThan(allocationTolerance) {
		return fmt.Errorf("%w: fractions sum to %s, want 1", ErrInvalidAllocation, sum)
	}
	return nil
}

// String renders the policy as "60/40".
func (p AllocationPolicy) String() string {
	return fmt.Sprintf("%s/%s",
		p.WithdrawableFraction.Mul(decimal.NewFromInt(100)).String(),
		p.AnnuityFraction.Mul(decimal.NewFromInt(100)).String())
}

// CorpusAllocator splits a corpus according to a validated policy.
type CorpusAllocator struct {
	policy AllocationPolicy
}

// NewCorpusAllocator validates the policy once so Split never fails.
func NewCorpusAllocator(policy AllocationPolicy) (*CorpusAllocator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &CorpusAllocator{policy: policy}, nil
}

// Policy returns the allocator's policy.
func (a *CorpusAllocator) Policy() AllocationPolicy {
	return a.policy
}

// Split returns the withdrawable and annuitised parts of corpus. The
// annuitised part is the remainder, so the parts always sum to corpus even
// when the fractions only sum to one within tolerance.
func (a *CorpusAllocator) Split(corpus decimal.Decimal) domain.AllocationSplit {
	withdrawable := corpus.Mul(a.policy.WithdrawableFraction)
	return domain.AllocationSplit{
		Withdrawable: withdrawable,
		Annuitized:   corpus.Sub(withdrawable),
	}
}
