package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pension-fund-comparator/internal/config"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/rpgo/pension-fund-comparator/internal/output"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeResult(t *testing.T, out string) domain.ComparisonResult {
	t.Helper()
	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	return result
}

func TestCompareDefaults(t *testing.T) {
	out, err := execute(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "Mutual Fund is better by 9.1% in annual post-tax retirement income.")
	assert.Contains(t, out, "Break-even NPS return")
}

func TestCompareFlagsOverrideDefaults(t *testing.T) {
	out, err := execute(t, "compare", "--format", "json", "--pension-return", "12", "--break-even=false")
	require.NoError(t, err)

	result := decodeResult(t, out)
	assert.True(t, result.Parameters.PensionReturn.Equal(decimal.NewFromInt(12)))
	assert.True(t, result.Parameters.FundReturnPreRetirement.Equal(decimal.NewFromFloat(11.5)))
	assert.Equal(t, domain.RoutePension, result.Verdict.Winner)
	assert.Nil(t, result.BreakEven)
}

func TestCompareConfigFile(t *testing.T) {
	out, err := execute(t, "compare", "--config", filepath.Join("..", "..", "internal", "config", "testdata", "custom_allocation.yaml"), "--format", "json")
	require.NoError(t, err)

	result := decodeResult(t, out)
	assert.Equal(t, "80/20", result.Allocation)
	assert.True(t, result.Parameters.AnnuityRate.Equal(decimal.NewFromFloat(6.5)))
}

func TestCompareFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	parser := config.NewInputParser()
	require.NoError(t, parser.SaveToFile(parser.CreateExampleParameters(), path))

	out, err := execute(t, "compare", "-c", path, "--years-in-retirement", "25", "-f", "json")
	require.NoError(t, err)
	result := decodeResult(t, out)
	assert.Equal(t, 25, result.Parameters.YearsInRetirement)
	assert.Equal(t, 20, result.Parameters.YearsToRetirement)
}

func TestCompareInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		param string
	}{
		{"negative contribution", []string{"--monthly-contribution=-5"}, domain.ParamMonthlyContribution},
		{"zero years", []string{"--years-to-retirement", "0"}, domain.ParamYearsToRetirement},
		{"tax above 100", []string{"--post-retirement-tax-rate", "150"}, domain.ParamPostRetirementTaxRate},
		{"return at -100", []string{"--pension-return=-100"}, domain.ParamPensionReturn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"compare"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var inputErr *domain.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.param, inputErr.Parameter)
			assert.Contains(t, out, tt.param)
		})
	}
}

func TestCompareRejectsMalformedDecimal(t *testing.T) {
	_, err := execute(t, "compare", "--annuity-rate", "six")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annuity-rate")
}

func TestCompareUnknownFormat(t *testing.T) {
	_, err := execute(t, "compare", "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestCompareWritesReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	out, err := execute(t, "compare", "--format", "html", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".html"))
}

func TestExampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	pf, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultParameters().CacheKey(), pf.Parameters.CacheKey())
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "Formats: console, csv, html, json, yaml")
	assert.Contains(t, out, "yml")
}

func TestDecimalValue(t *testing.T) {
	var d decimal.Decimal
	v := decimalValue{&d}
	require.NoError(t, v.Set(" 11.5 "))
	assert.Equal(t, "11.5", v.String())
	assert.Equal(t, "decimal", v.Type())
	assert.Error(t, v.Set("abc"))
}
