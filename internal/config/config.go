package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// ErrInvalid is returned when a config value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds settings shared by the binaries.
type Config struct {
	// FirstPlayer is "human", "computer" or empty to ask interactively.
	FirstPlayer string `yaml:"first_player"`
	Color       bool   `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
	Listen      string `yaml:"listen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:    true,
		LogLevel: "warn",
		Listen:   ":8080",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes raw YAML into cfg, leaving unset keys untouched.
func Parse(raw []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.FirstPlayer {
	case "", "human", "computer":
	default:
		return fmt.Errorf("%w: first_player %q", ErrInvalid, c.FirstPlayer)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Logger builds a console logger on stderr at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	zc.DisableStacktrace = true
	return zc.Build()
}
