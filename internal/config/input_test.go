package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	pf, err := parser.LoadFromFile("testdata/scenario_a.yaml")
	require.NoError(t, err)

	p := pf.Parameters
	assert.True(t, p.MonthlyContribution.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 20, p.YearsToRetirement)
	assert.Equal(t, 30, p.YearsInRetirement)
	assert.True(t, p.FundReturnPreRetirement.Equal(decimal.NewFromFloat(11.5)))
	assert.True(t, p.WithdrawalTaxRate.Equal(decimal.NewFromInt(5)))
	assert.Nil(t, pf.Allocation)
	assert.Equal(t, calculation.DefaultAllocationPolicy, pf.Policy())
}

func TestLoadFromFile_CustomAllocation(t *testing.T) {
	pf, err := NewInputParser().LoadFromFile("testdata/custom_allocation.yaml")
	require.NoError(t, err)
	require.NotNil(t, pf.Allocation)
	assert.True(t, pf.Policy().WithdrawableFraction.Equal(decimal.NewFromFloat(0.8)))
	assert.True(t, pf.Policy().AnnuityFraction.Equal(decimal.NewFromFloat(0.2)))
	assert.True(t, pf.Parameters.AnnuityRate.Equal(decimal.NewFromFloat(6.5)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	pf, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, pf)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	pf, err := NewInputParser().Parse([]byte("parameters:\n\tmonthly_contribution: [oops\n"))
	assert.Error(t, err)
	assert.Nil(t, pf)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_NamesOffendingParameter(t *testing.T) {
	doc := `
parameters:
  monthly_contribution: 100
  years_to_retirement: 0
  years_in_retirement: 30
`
	pf, err := NewInputParser().Parse([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, pf)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var inputErr *domain.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, domain.ParamYearsToRetirement, inputErr.Parameter)
}

func TestParse_RejectsBadAllocation(t *testing.T) {
	doc := `
parameters:
  monthly_contribution: 100
  years_to_retirement: 20
  years_in_retirement: 30
allocation:
  withdrawable_fraction: 0.7
  annuity_fraction: 0.4
`
	_, err := NewInputParser().Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculation.ErrInvalidAllocation))
}

func TestSaveAndReloadExample(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleParameters()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.SaveToFile(example, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	reloaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example.Parameters.CacheKey(), reloaded.Parameters.CacheKey())
}

func TestDefaultParametersAreValid(t *testing.T) {
	assert.NoError(t, DefaultParameters().Validate())
}
