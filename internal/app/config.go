package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Target is the sum the pair must reach. Only meaningful when TargetSet
	// is true; otherwise the settings file or the built-in default applies.
	Target    int
	TargetSet bool

	// SettingsPath optionally points at an HCL settings file.
	SettingsPath string

	// LogFormat and LogLevel are empty when the user did not choose one,
	// which lets the settings file fill them in.
	LogFormat string
	LogLevel  string
}

// NewConfig validates the raw configuration and returns it in canonical form.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
