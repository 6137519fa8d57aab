package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the complete configuration for ghostconf.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server" json:"server"`
	Ghostty GhosttyConfig `mapstructure:"ghostty" yaml:"ghostty" json:"ghostty"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// ServerConfig holds the local web server settings.
type ServerConfig struct {
	ListenAddr  string `mapstructure:"listen_addr" yaml:"listen_addr" json:"listen_addr"`
	OpenBrowser bool   `mapstructure:"open_browser" yaml:"open_browser" json:"open_browser"`
}

// GhosttyConfig holds overrides for locating the host installation.
type GhosttyConfig struct {
	// Binary overrides ghostty binary discovery when set.
	Binary string `mapstructure:"binary" yaml:"binary" json:"binary"`
	// ConfigPath overrides the edited config file location when set.
	ConfigPath string `mapstructure:"config_path" yaml:"config_path" json:"config_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("GHOSTCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"server.listen_addr":  "SERVER_LISTEN_ADDR",
		"server.open_browser": "SERVER_OPEN_BROWSER",
		"ghostty.binary":      "GHOSTTY_BINARY",
		"ghostty.config_path": "GHOSTTY_CONFIG_PATH",
		"logging.level":       "LOG_LEVEL",
		"logging.format":      "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "GHOSTCONF_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// No file is fine: defaults plus env cover everything.
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		return nil // Nothing on disk to watch yet
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)
	m.viper.SetDefault("server.open_browser", defaults.Server.OpenBrowser)
	m.viper.SetDefault("ghostty.binary", defaults.Ghostty.Binary)
	m.viper.SetDefault("ghostty.config_path", defaults.Ghostty.ConfigPath)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// ConfigFileUsed returns the path of the config file in use, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}
