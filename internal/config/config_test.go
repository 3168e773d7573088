package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "NUMGUESS_SEED", "NUMGUESS_PLAIN"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Plain)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("NUMGUESS_SEED", "1234")
	t.Setenv("NUMGUESS_PLAIN", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.Plain)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		key, value string
	}{
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
		{"NUMGUESS_SEED", "-1"},
		{"NUMGUESS_PLAIN", "maybe"},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
