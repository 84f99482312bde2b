package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rpcompare",
		Short: "Compare NPS and mutual fund retirement income",
		Long: `rpcompare projects a monthly contribution into either the National Pension
System or a mutual fund, estimates the post-tax annual income each corpus
sustains in retirement, and reports which route comes out ahead.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCompareCmd(),
		newExampleCmd(),
		newFormatsCmd(),
		newServeCmd(),
	)
	return root
}
