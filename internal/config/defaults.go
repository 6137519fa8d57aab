package config

// DefaultConfig returns the default configuration for ghostconf.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:  "127.0.0.1:3456",
			OpenBrowser: true,
		},
		Ghostty: GhosttyConfig{
			Binary:     "", // auto-discover
			ConfigPath: "", // XDG default
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
