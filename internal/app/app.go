package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pairmaxgo/internal/pairing"
	"github.com/vk/pairmaxgo/internal/settings"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	target int
}

// NewApp is the constructor for the main application. It resolves the
// effective target and logging setup (flags win over the settings file, which
// wins over built-in defaults) and returns an App with its own isolated
// logger.
func NewApp(outW io.Writer, cfg *Config) *App {
	logLevel := cfg.LogLevel
	logFormat := cfg.LogFormat
	target := pairing.DefaultTarget

	if cfg.SettingsPath != "" {
		// The settings file is read before the App logger exists, so the
		// loader logs through the process-default logger via ctxlog.
		loaded, err := settings.Load(context.Background(), cfg.SettingsPath)
		if err != nil {
			// A failure to load settings is a fatal startup error.
			panic(fmt.Errorf("failed to load settings: %w", err))
		}
		if logLevel == "" {
			logLevel = loaded.LogLevel
		}
		if logFormat == "" {
			logFormat = loaded.LogFormat
		}
		if loaded.Target != nil {
			target = *loaded.Target
		}
	}
	if cfg.TargetSet {
		target = cfg.Target
	}

	logger := newLogger(logLevel, logFormat, outW)
	logger.Debug("Logger configured successfully.", "target", target)

	return &App{
		outW:   outW,
		logger: logger,
		target: target,
	}
}

// Target returns the effective target the App will solve for. This is
// primarily for testing.
func (a *App) Target() int {
	return a.target
}
