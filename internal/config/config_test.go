package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	var cfg Config
	cfg.Normalize()
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotNil(t, cfg.Positions)

	cfg = Config{Theme: "neon", LogLevel: "chatty"}
	cfg.Normalize()
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	in := &Config{
		Width:     100,
		Theme:     "light",
		LogLevel:  "debug",
		Positions: map[string]string{"cal": "r:1;c:1"},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, "light", out.Theme)
	assert.Equal(t, "debug", out.LogLevel)
	assert.Equal(t, "r:1;c:1", out.Positions["cal"])
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}
