package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	return home
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, validateConfig(cfg))
	assert.Equal(t, "127.0.0.1:3456", cfg.Server.ListenAddr)
	assert.True(t, cfg.Server.OpenBrowser)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ListenAddr = "not-an-addr"
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen_addr")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestManagerLoadDefaults(t *testing.T) {
	setTestHome(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "127.0.0.1:3456", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManagerLoadFromFile(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "ghostconf")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	yaml := "server:\n  listen_addr: 127.0.0.1:9999\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(yaml), 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManagerEnvOverride(t *testing.T) {
	setTestHome(t)
	t.Setenv("GHOSTCONF_SERVER_LISTEN_ADDR", "127.0.0.1:7777")
	t.Setenv("GHOSTCONF_LOG_LEVEL", "warn")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "127.0.0.1:7777", cfg.Server.ListenAddr)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManagerLoadInvalidFile(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "ghostconf")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	yaml := "logging:\n  level: shouting\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(yaml), 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestGetReturnsCopy(t *testing.T) {
	setTestHome(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Server.ListenAddr = "mutated"
	assert.NotEqual(t, "mutated", m.Get().Server.ListenAddr)
}

func TestGhosttyConfigFile(t *testing.T) {
	home := setTestHome(t)
	path, err := GhosttyConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "ghostty", "config"), path)
}

func TestEnsureDirectories(t *testing.T) {
	home := setTestHome(t)
	require.NoError(t, EnsureDirectories())

	for _, dir := range []string{
		filepath.Join(home, ".config", "ghostconf"),
		filepath.Join(home, ".local", "state", "ghostconf"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
