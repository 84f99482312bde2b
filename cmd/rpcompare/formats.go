package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/pension-fund-comparator/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
