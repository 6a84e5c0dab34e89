package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_AcceptsEmptyAndValidValues(t *testing.T) {
	t.Parallel()

	for _, cfg := range []Config{
		{},
		{LogFormat: "text", LogLevel: "debug"},
		{LogFormat: "json", LogLevel: "error"},
	} {
		validated, err := NewConfig(cfg)

		require.NoError(t, err)
		require.Equal(t, cfg, *validated)
	}
}

func TestNewConfig_RejectsUnknownLogFormat(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{LogFormat: "xml"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-format")
}

func TestNewConfig_RejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{LogLevel: "verbose"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-level")
}
