package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/config"
	"github.com/rpgo/pension-fund-comparator/internal/logger"
	"github.com/rpgo/pension-fund-comparator/internal/output"
)

func newCompareCmd() *cobra.Command {
	var (
		configFile string
		format     string
		outputDir  string
		breakEven  bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project both routes and print the verdict",
		Long: `Project both routes and print the verdict.

Parameters start from the built-in defaults, are replaced by --config when
given, and finally overridden by any parameter flag set on the command line.`,
		Example: `  rpcompare compare
  rpcompare compare --pension-return 11 --format json
  rpcompare compare --config parameters.yaml --output ./reports --format html`,
		Args: cobra.NoArgs,
	}
	params := bindParameterFlags(cmd.Flags(), config.DefaultParameters())

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML parameter file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (see 'rpcompare formats')")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write a timestamped report into this directory instead of stdout")
	cmd.Flags().BoolVar(&breakEven, "break-even", true, "search for the NPS return at which both routes pay the same")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log calculation details to stderr")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.GetFormatterByName(format); err != nil {
			return err
		}

		base := config.DefaultParameters()
		policy := calculation.DefaultAllocationPolicy
		if configFile != "" {
			pf, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			base = pf.Parameters
			policy = pf.Policy()
		}

		engine, err := calculation.NewProjectionEngineWithPolicy(policy)
		if err != nil {
			return err
		}
		engine.BreakEven = breakEven
		if verbose {
			engine.SetLogger(logger.NewAdapter(logger.New(cmd.ErrOrStderr(), "debug", "text")))
		}

		result, err := engine.Project(cmd.Context(), params.apply(base))
		if err != nil {
			return err
		}

		if outputDir == "" {
			return output.WriteTo(cmd.OutOrStdout(), result, format)
		}
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		path, err := output.GenerateReport(result, format, outputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return cmd
}
