package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval TOKEN...",
	Short: "Push tokens and print the resulting value",
	Long: `Eval pushes each token in order: numbers as operands, anything else as an operation
symbol. Unknown symbols are ignored. The value of the final stack is printed, or "-" when
the stack does not reduce.

  rpnbrain eval 5 2 −        # 3
  rpnbrain eval --symbols=ascii 16 sqrt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("stack", false, "print the stack before the value")
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	showStack, err := cmd.Flags().GetBool("stack")
	if err != nil {
		return err
	}
	b, err := s.newBrain(os.Stderr)
	if err != nil {
		return err
	}
	p := newPrinter(cmd.OutOrStdout(), s.useColor(os.Stdout))
	value, ok := feed(b, strings.Join(args, " "))
	if showStack {
		p.stack(b)
	}
	p.result(value, ok)
	return nil
}
