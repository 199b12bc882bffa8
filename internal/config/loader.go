package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	UserConfigDir  = ".config/board"
	UserConfigFile = "config.yaml"
)

type Loader struct {
	logger *slog.Logger
	getenv func(string) string
	home   func() (string, error)
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, getenv: os.Getenv, home: os.UserHomeDir}
}

// Load layers defaults, the config file and the environment.
//
// An explicit path must exist. Without one, the user config
// (~/.config/board/config.yaml) is used when present.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded config", slog.String("path", path))
		cfg.Merge(fileCfg)
	} else if userPath := l.userConfigPath(); userPath != "" {
		fileCfg, err := LoadFromFile(userPath)
		switch {
		case err == nil:
			l.logger.Debug("loaded user config", slog.String("path", userPath))
			cfg.Merge(fileCfg)
		case errors.Is(err, fs.ErrNotExist):
			l.logger.Debug("no user config", slog.String("path", userPath))
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv(l.getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) userConfigPath() string {
	home, err := l.home()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
