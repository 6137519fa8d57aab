// Package cli holds the shared application context for CLI commands.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/ghostconf/internal/config"
	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/logging"
)

// App is the initialized context shared by all subcommands: settings,
// logger, the located ghostty binary and the config file under edit.
type App struct {
	Config     *config.Config
	Manager    *config.Manager
	Log        zerolog.Logger
	Runner     discovery.Runner
	ConfigPath string
}

// NewApp loads ghostconf's settings and locates the host installation.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	log := logging.New(loggingConfig(cfg))

	binary := cfg.Ghostty.Binary
	if binary == "" {
		binary, err = discovery.FindGhostty()
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Str("binary", binary).Msg("using ghostty")

	configPath := cfg.Ghostty.ConfigPath
	if configPath == "" {
		configPath, err = config.GhosttyConfigFile()
		if err != nil {
			return nil, fmt.Errorf("locate ghostty config: %w", err)
		}
	}

	return &App{
		Config:     cfg,
		Manager:    manager,
		Log:        log,
		Runner:     discovery.CLIRunner{Path: binary},
		ConfigPath: configPath,
	}, nil
}

func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	switch cfg.Logging.Level {
	case "trace":
		lc.Level = zerolog.TraceLevel
	case "debug":
		lc.Level = zerolog.DebugLevel
	case "info":
		lc.Level = zerolog.InfoLevel
	case "warn":
		lc.Level = zerolog.WarnLevel
	case "error":
		lc.Level = zerolog.ErrorLevel
	}
	lc.Format = cfg.Logging.Format
	return lc
}
