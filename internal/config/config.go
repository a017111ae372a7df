// SPDX-License-Identifier: MPL-2.0

// Package config loads the nolin configuration: probe timeout, per-ecosystem
// runner priority overrides, and user-defined tool entries.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"github.com/Emasoft/no-install-linters-expert/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "nolin"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// ConfigDir returns the nolin configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on macOS,
// $XDG_CONFIG_HOME (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. An explicit path (from --config) is used
// exclusively and must exist; otherwise the platform config directory is
// consulted and a missing file just means defaults. Environment variables
// with the NOLIN_ prefix override file values.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("probe_timeout", defaults.ProbeTimeoutRaw)
	v.SetEnvPrefix("NOLIN")
	v.AutomaticEnv()

	switch {
	case explicitPath != "":
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, issue.New("load configuration").
				On(explicitPath).
				Hint("Verify the file path is correct").
				Hint("Remove the --config flag to use defaults").
				Wrap(err)
		}
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.New("load configuration").
				On(explicitPath).
				Hint("Check that the file is valid TOML").
				Wrap(err)
		}
	default:
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.New("load configuration").
					On(filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)).
					Hint("Check that the file is valid TOML").
					Hint("Remove the file to fall back to defaults").
					Wrap(err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.New("parse configuration").Wrap(err)
	}

	cfg.ProbeTimeoutRaw = v.GetString("probe_timeout")
	timeout, err := time.ParseDuration(cfg.ProbeTimeoutRaw)
	if err != nil {
		return nil, issue.New("parse configuration").
			On("probe_timeout").
			Hint(`Use a Go duration string like "5s" or "500ms"`).
			Wrap(err)
	}
	cfg.ProbeTimeout = timeout

	return cfg, nil
}
