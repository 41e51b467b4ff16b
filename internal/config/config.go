// Package config loads pwmeter settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvModel overrides the classifier artifact path.
	EnvModel = "PWMETER_MODEL"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "PWMETER_LOG_LEVEL"
	// EnvLogFormat overrides the log format.
	EnvLogFormat = "PWMETER_LOG_FORMAT"
	// EnvConfig points at a config file.
	EnvConfig = "PWMETER_CONFIG"
)

// Config holds all pwmeter configuration.
type Config struct {
	Model ModelConfig `yaml:"model"`
	Log   LogConfig   `yaml:"log"`
}

// ModelConfig selects the classifier artifact.
type ModelConfig struct {
	// Path to a JSON artifact. Empty uses the artifact bundled in the binary.
	Path string `yaml:"path"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadFromFile reads YAML from path over base. Keys absent from the file keep
// their base values.
func LoadFromFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv applies PWMETER_* environment overrides to base.
func ConfigFromEnv(base Config) Config {
	cfg := base
	if p := os.Getenv(EnvModel); p != "" {
		cfg.Model.Path = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.Log.Level = l
	}
	if f := os.Getenv(EnvLogFormat); f != "" {
		cfg.Log.Format = f
	}
	return cfg
}

// Resolve builds the effective configuration. Precedence, highest first:
// modelFlag, environment, config file, defaults. An explicit configPath (or
// PWMETER_CONFIG) must exist; the default location may be absent.
func Resolve(configPath, modelFlag string) (Config, error) {
	cfg := DefaultConfig()

	explicit := configPath != ""
	if !explicit {
		if p := os.Getenv(EnvConfig); p != "" {
			configPath, explicit = p, true
		} else if p, err := DefaultConfigPath(); err == nil {
			configPath = p
		}
	}

	if configPath != "" {
		loaded, err := LoadFromFile(configPath, cfg)
		switch {
		case err == nil:
			cfg = loaded
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return cfg, err
		}
	}

	cfg = ConfigFromEnv(cfg)
	if modelFlag != "" {
		cfg.Model.Path = modelFlag
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/pwmeter/config.yaml, falling
// back to ~/.config/pwmeter/config.yaml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pwmeter", "config.yaml"), nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json; got %q", c.Log.Format)
	}
	return nil
}
