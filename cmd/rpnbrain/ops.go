package main

import (
	"os"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the known operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		b, err := s.newBrain(os.Stderr)
		if err != nil {
			return err
		}
		newPrinter(cmd.OutOrStdout(), s.useColor(os.Stdout)).operations(b.Operations())
		return nil
	},
}
