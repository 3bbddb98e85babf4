package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every GEMATRIA_ variable so a test starts from the
// defaults regardless of the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GEMATRIA_DRILL_SYSTEM",
		"GEMATRIA_DRILL_LOG_LEVEL",
		"GEMATRIA_DATA_LETTERS_PATH",
		"GEMATRIA_DATA_EXAMPLES_PATH",
		"GEMATRIA_DATA_DATABASE_PATH",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "hechrachi", cfg.Drill.System)
	assert.Equal(t, "info", cfg.Drill.LogLevel)
	assert.Equal(t, "data/letters.csv", cfg.Data.LettersPath)
	assert.Equal(t, "data/examples.json", cfg.Data.ExamplesPath)
	assert.Equal(t, "data/gematria.db", cfg.Data.DatabasePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMATRIA_DRILL_SYSTEM", "atbash")
	t.Setenv("GEMATRIA_DRILL_LOG_LEVEL", "debug")
	t.Setenv("GEMATRIA_DATA_DATABASE_PATH", "/tmp/drill.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "atbash", cfg.Drill.System)
	assert.Equal(t, "debug", cfg.Drill.LogLevel)
	assert.Equal(t, "/tmp/drill.db", cfg.Data.DatabasePath)
	assert.Equal(t, "data/letters.csv", cfg.Data.LettersPath, "untouched keys keep defaults")
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "gematria.yaml")
	content := []byte(`
drill:
  system: siduri
  log_level: warn
data:
  letters_path: custom/letters.csv
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "siduri", cfg.Drill.System)
	assert.Equal(t, "warn", cfg.Drill.LogLevel)
	assert.Equal(t, "custom/letters.csv", cfg.Data.LettersPath)
	assert.Equal(t, "data/examples.json", cfg.Data.ExamplesPath)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMATRIA_DRILL_SYSTEM", "avgad")

	path := filepath.Join(t.TempDir(), "gematria.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drill:\n  system: katan\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "avgad", cfg.Drill.System)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{name: "unknown system", envVar: "GEMATRIA_DRILL_SYSTEM", value: "mispar"},
		{name: "unknown log level", envVar: "GEMATRIA_DRILL_LOG_LEVEL", value: "verbose"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.envVar, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}
