package output

import (
	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the comparison result as YAML, matching the
// layout of the parameter files accepted by the CLI.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	return yaml.Marshal(result)
}
