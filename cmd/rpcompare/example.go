package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/pension-fund-comparator/internal/config"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example parameter file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "parameters_example.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveToFile(parser.CreateExampleParameters(), path); err != nil {
				return fmt.Errorf("writing example parameters: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example parameters written to %s\n", path)
			return nil
		},
	}
}
