package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/config"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example FILE",
		Short: "Write an example batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveBatch(parser.CreateExampleBatch(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example batch written to %s\n", args[0])
			return nil
		},
	}
}
