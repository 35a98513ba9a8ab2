package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karrick/rpnbrain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read tokens interactively or from stdin",
	Long: `Repl reads lines of whitespace separated tokens and prints the value of the stack
after each line. A line holding only one of these words is a command:

  clear   empty the stack
  stack   print the stack
  ops     list the known operations
  quit    stop reading

On a terminal an interactive screen is used unless --ui=off.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().String("ui", "auto", "interactive screen (auto|on|off)")
}

func runREPL(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	ui, err := cmd.Flags().GetString("ui")
	if err != nil {
		return errors.Wrap(err, "cannot get ui flag")
	}
	useUI, err := shouldUseUI(ui)
	if err != nil {
		return err
	}
	b, err := s.newBrain(traceOutput(useUI, os.Stderr))
	if err != nil {
		return err
	}
	if useUI {
		_, err = tea.NewProgram(newCalcModel(b), tea.WithOutput(os.Stdout)).Run()
		return errors.Wrap(err, "interactive screen failed")
	}
	return readLines(cmd.InOrStdin(), b, newPrinter(cmd.OutOrStdout(), s.useColor(os.Stdout)))
}

// traceOutput returns where evaluation traces go. The interactive screen owns the terminal, so
// traces are dropped while it runs.
func traceOutput(useUI bool, stderr io.Writer) io.Writer {
	if useUI {
		return io.Discard
	}
	return stderr
}

func shouldUseUI(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdin) && isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, errors.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// readLines feeds every line of r to b, printing the value after each one.
func readLines(r io.Reader, b *rpnbrain.Brain, p *printer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "clear":
			b.Clear()
			p.result(b.Evaluate())
		case "stack":
			p.stack(b)
		case "ops":
			p.operations(b.Operations())
		default:
			p.result(feed(b, line))
		}
	}
	return errors.Wrap(scanner.Err(), "cannot read input")
}
