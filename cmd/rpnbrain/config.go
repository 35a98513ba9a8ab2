package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/karrick/rpnbrain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	configName = "rpnbrain.toml"
	configEnv  = "RPNBRAIN_CONFIG"
)

type fileConfig struct {
	Engine engineConfig `toml:"engine"`
	Output outputConfig `toml:"output"`
}

type engineConfig struct {
	Symbols string `toml:"symbols"`
	Trace   bool   `toml:"trace"`
}

type outputConfig struct {
	Color string `toml:"color"`
}

// settings is the merged result of defaults, the config file and command line flags.
type settings struct {
	ConfigPath string // empty when no file was read
	Symbols    string
	Trace      bool
	Color      string
}

func defaultSettings() settings {
	return settings{Symbols: "unicode", Color: "auto"}
}

// findConfig walks up from startDir looking for rpnbrain.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "cannot resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, errors.Wrapf(err, "cannot stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// loadConfig decodes path on top of base; keys absent from the file keep their base value.
func loadConfig(path string, base settings) (settings, error) {
	cfg := fileConfig{
		Engine: engineConfig{Symbols: base.Symbols, Trace: base.Trace},
		Output: outputConfig{Color: base.Color},
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return settings{}, errors.Wrapf(err, "%s: cannot parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return settings{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return settings{
		ConfigPath: path,
		Symbols:    cfg.Engine.Symbols,
		Trace:      cfg.Engine.Trace,
		Color:      cfg.Output.Color,
	}, nil
}

// resolveSettings merges the config file selected by --config, $RPNBRAIN_CONFIG or a search from
// the working directory with the flags the user set explicitly.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return s, errors.Wrap(err, "cannot get config flag")
	}
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		if path, _, err = findConfig("."); err != nil {
			return s, err
		}
	}
	if path != "" {
		if s, err = loadConfig(path, s); err != nil {
			return s, err
		}
	}

	if flags.Changed("symbols") {
		if s.Symbols, err = flags.GetString("symbols"); err != nil {
			return s, errors.Wrap(err, "cannot get symbols flag")
		}
	}
	if flags.Changed("color") {
		if s.Color, err = flags.GetString("color"); err != nil {
			return s, errors.Wrap(err, "cannot get color flag")
		}
	}
	if flags.Changed("trace") {
		if s.Trace, err = flags.GetBool("trace"); err != nil {
			return s, errors.Wrap(err, "cannot get trace flag")
		}
	}
	return s, s.validate()
}

func (s settings) validate() error {
	switch s.Symbols {
	case "unicode", "ascii":
	default:
		return errors.Errorf("invalid symbols value %q (expected unicode|ascii)", s.Symbols)
	}
	switch s.Color {
	case "auto", "on", "off":
	default:
		return errors.Errorf("invalid color value %q (expected auto|on|off)", s.Color)
	}
	return nil
}

// newBrain builds a Brain for s; trace lines go to traceOut when tracing is on.
func (s settings) newBrain(traceOut io.Writer) (*rpnbrain.Brain, error) {
	var setters []rpnbrain.Configurator
	if s.Symbols == "ascii" {
		setters = append(setters, rpnbrain.WithASCIISymbols())
	}
	if s.Trace {
		setters = append(setters, rpnbrain.WithLogger(log.New(traceOut, "rpnbrain: ", 0)))
	}
	b, err := rpnbrain.New(setters...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create calculator")
	}
	return b, nil
}

// useColor reports whether output written to f should be colorized.
func (s settings) useColor(f *os.File) bool {
	return s.Color == "on" || (s.Color == "auto" && isTerminal(f))
}
