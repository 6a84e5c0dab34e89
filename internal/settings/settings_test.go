package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSettingsFile writes an inline HCL fixture and returns its path.
func writeSettingsFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.hcl")
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err, "failed to set up settings fixture")
	return path
}

func TestLoad_FullFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeSettingsFile(t, `
		problem {
			target = 12
		}

		logging {
			level  = "debug"
			format = "json"
		}
	`)

	// --- Act ---
	loaded, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, loaded.Target)
	require.Equal(t, 12, *loaded.Target)
	require.Equal(t, "debug", loaded.LogLevel)
	require.Equal(t, "json", loaded.LogFormat)
}

func TestLoad_TargetExpression(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
		problem {
			target = 4 + 4
		}
	`)

	loaded, err := Load(context.Background(), path)

	require.NoError(t, err)
	require.NotNil(t, loaded.Target)
	require.Equal(t, 8, *loaded.Target)
}

func TestLoad_EmptyFileLeavesEverythingUnset(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "")

	loaded, err := Load(context.Background(), path)

	require.NoError(t, err)
	require.Nil(t, loaded.Target)
	require.Empty(t, loaded.LogLevel)
	require.Empty(t, loaded.LogFormat)
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	require.Error(t, err)
}

func TestLoad_MalformedHCLFails(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
		problem {
			target =
	`)

	_, err := Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_FractionalTargetFails(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
		problem {
			target = 2.5
		}
	`)

	_, err := Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid target")
}

func TestLoad_NonNumericTargetFails(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
		problem {
			target = "not a number"
		}
	`)

	_, err := Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid target")
}
