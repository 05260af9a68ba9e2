package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.MaxRequestBytes)
	assert.Empty(t, cfg.LexiconPath)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9000, "log_json": true}`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.LogJSON)
	// Unset file fields keep their defaults.
	assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.MaxRequestBytes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9000}`), 0o644))
	t.Setenv("SCREENER_PORT", "9100")
	t.Setenv("SCREENER_DEBUG", "true")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxRequestBytes = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LexiconPath = filepath.Join(t.TempDir(), "absent.json")
	assert.Error(t, cfg.Validate())
}
