package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data/orders.db", cfg.OrderLogPath)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nredis:\n  addr: \"localhost:6379\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	// Untouched fields keep their defaults.
	assert.Equal(t, "./data/orders.db", cfg.OrderLogPath)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":7777")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParsedSessionTTL(t *testing.T) {
	cfg := Default()
	d, err := cfg.ParsedSessionTTL()
	require.NoError(t, err)
	assert.Equal(t, 720*time.Hour, d)

	cfg.SessionTTL = ""
	d, err = cfg.ParsedSessionTTL()
	require.NoError(t, err)
	assert.Zero(t, d)

	cfg.SessionTTL = "soon"
	_, err = cfg.ParsedSessionTTL()
	assert.Error(t, err)
}
