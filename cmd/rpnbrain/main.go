package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "rpnbrain",
	Short: "Reverse-Polish calculator",
	Long: `rpnbrain keeps a stack of operands and operations and recomputes its value after
every push. Operands are numbers; operations are looked up by symbol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(versionCmd)

	registerFlags(rootCmd)

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		errorPrinter(cmd, os.Stderr).fail(err)
		os.Exit(1)
	}
}

// errorPrinter returns a printer for f that honours the color mode of cmd. When the settings
// themselves are invalid, only the --color flag is consulted.
func errorPrinter(cmd *cobra.Command, f *os.File) *printer {
	s, err := resolveSettings(cmd)
	if err != nil {
		s = defaultSettings()
		if c, err := cmd.Flags().GetString("color"); err == nil {
			s.Color = c
		}
	}
	return newPrinter(f, s.useColor(f))
}

// registerFlags adds the flags shared by every subcommand.
func registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "path to rpnbrain.toml (default: $"+configEnv+" or nearest rpnbrain.toml)")
	cmd.PersistentFlags().String("symbols", "unicode", "operation symbols (unicode|ascii)")
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("trace", false, "log every evaluation to stderr")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
