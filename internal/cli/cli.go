package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/pairmaxgo/internal/app"
	"github.com/vk/pairmaxgo/internal/pairing"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pairmaxgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PairMaxGo - An integer number-pairing optimizer.

Finds two non-negative integers that sum to a target value so that
their product multiplied by their absolute difference is maximized.

Usage:
  pairmaxgo [options] [TARGET]

Arguments:
  TARGET
    The sum the pair must reach. Defaults to 8 when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	targetFlag := flagSet.Int("target", pairing.DefaultTarget, "Target sum for the pair.")
	tFlag := flagSet.Int("t", pairing.DefaultTarget, "Target sum for the pair (shorthand).")
	settingsFlag := flagSet.String("settings", "", "Path to an optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Defaults to 'text'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Defaults to 'info'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Only flags the user actually set may override the settings file, so the
	// target needs explicit set-tracking. Visit walks flags in lexical order
	// ("t" before "target"), which gives -target priority over -t.
	target := 0
	targetSet := false
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			target, targetSet = *tFlag, true
		case "target":
			target, targetSet = *targetFlag, true
		}
	})

	if !targetSet && flagSet.NArg() > 0 {
		parsed, err := strconv.Atoi(flagSet.Arg(0))
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid target %q: must be an integer", flagSet.Arg(0))}
		}
		target, targetSet = parsed, true
	}
	slog.Debug("Target determined.", "target", target, "explicit", targetSet)

	config, err := app.NewConfig(app.Config{
		Target:       target,
		TargetSet:    targetSet,
		SettingsPath: *settingsFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
