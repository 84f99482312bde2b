package config

import (
	"fmt"
	"os"

	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ParameterFile is the on-disk form of a comparison request.
type ParameterFile struct {
	Parameters domain.InputParameters `yaml:"parameters"`
	// Allocation overrides the default 60/40 split of the pension corpus.
	Allocation *calculation.AllocationPolicy `yaml:"allocation,omitempty"`
}

// Policy returns the configured allocation policy or the default one.
func (pf *ParameterFile) Policy() calculation.AllocationPolicy {
	if pf.Allocation == nil {
		return calculation.DefaultAllocationPolicy
	}
	return *pf.Allocation
}

// InputParser handles parsing of parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads parameters from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*ParameterFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a parameter document
func (ip *InputParser) Parse(data []byte) (*ParameterFile, error) {
	var pf ParameterFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&pf); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &pf, nil
}

// ValidateParameters validates the parameters and the allocation policy.
// The policy is a configuration-time invariant, so it is checked here rather
// than on every projection.
func (ip *InputParser) ValidateParameters(pf *ParameterFile) error {
	if err := pf.Parameters.Validate(); err != nil {
		return err
	}
	if pf.Allocation != nil {
		if err := pf.Allocation.Validate(); err != nil {
			return fmt.Errorf("allocation: %w", err)
		}
	}
	return nil
}

// SaveToFile writes the parameter file as YAML
func (ip *InputParser) SaveToFile(pf *ParameterFile, filename string) error {
	b, err := yaml.Marshal(pf)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleParameters returns the calculator's default inputs
func (ip *InputParser) CreateExampleParameters() *ParameterFile {
	return &ParameterFile{
		Parameters: DefaultParameters(),
	}
}

// DefaultParameters are the values the input form starts with.
func DefaultParameters() domain.InputParameters {
	return domain.InputParameters{
		MonthlyContribution:      decimal.NewFromInt(100),
		YearsToRetirement:        20,
		YearsInRetirement:        30,
		PreRetirementTaxRate:     decimal.NewFromInt(33),
		PostRetirementTaxRate:    decimal.NewFromInt(30),
		PensionReturn:            decimal.NewFromInt(10),
		FundReturnPreRetirement:  decimal.NewFromFloat(11.5),
		FundReturnPostRetirement: decimal.NewFromFloat(11.5),
		AnnuityRate:              decimal.NewFromInt(6),
		WithdrawalTaxRate:        decimal.NewFromInt(5),
	}
}
