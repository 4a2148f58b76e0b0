package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 200*time.Millisecond, cfg.DropDuration())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestParseFlagsConfigFile(t *testing.T) {
	path := writeConfig(t, `{"seed": 7, "drop_interval": "350ms", "mute": true, "log_level": "debug"}`)

	cfg, err := ParseFlags(newFlagSet(), []string{"-config", path})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 350*time.Millisecond, cfg.DropDuration())
	assert.True(t, cfg.Mute)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 0.5, cfg.Volume, "unset fields keep their defaults")
}

func TestParseFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `{"seed": 7, "drop_interval": "350ms", "volume": 0.2}`)

	cfg, err := ParseFlags(newFlagSet(), []string{
		"-config", path,
		"-seed", "9",
		"-drop-interval", "1s",
		"-debug",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, time.Second, cfg.DropDuration())
	assert.True(t, cfg.Debug)
	assert.Equal(t, 0.2, cfg.Volume, "flags that were not set leave the file value")
}

func TestParseFlagsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFlags(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "nope.json")})
		assert.ErrorContains(t, err, "reading config")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, `{"seed": `)
		_, err := ParseFlags(newFlagSet(), []string{"-config", path})
		assert.ErrorContains(t, err, "parsing config")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseFlags(newFlagSet(), []string{"-bogus"})
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DropInterval = "soon"
	cfg.Volume = 3
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "drop_interval")
	assert.ErrorContains(t, err, "volume must be between 0 and 1")
	assert.ErrorContains(t, err, `log_level "loud"`)

	cfg = DefaultConfig()
	cfg.DropInterval = "-5ms"
	assert.ErrorContains(t, cfg.Validate(), "drop_interval must be positive")
}
