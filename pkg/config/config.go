// Package config loads scicalc settings from YAML. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, so values can come
// from the environment or a .env file loaded by the CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/germanamz/scicalc/pkg/calc"
	"gopkg.in/yaml.v3"
)

// Display width bounds, in terminal cells.
const (
	MinDisplayWidth = 8
	MaxDisplayWidth = 80
)

// Themes lists the accepted theme names.
var Themes = []string{"dark", "light"}

// Config is the top-level configuration.
type Config struct {
	Theme          string            `yaml:"theme"`
	ShowScientific bool              `yaml:"show_scientific"`
	DisplayWidth   int               `yaml:"display_width"`
	Keys           map[string]string `yaml:"keys,omitempty"` // Key name -> token label.
	Server         ServerConfig      `yaml:"server"`
	LogLevel       string            `yaml:"log_level"`
}

// ServerConfig holds settings for the network surfaces.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:          "dark",
		ShowScientific: true,
		DisplayWidth:   24,
		Server:         ServerConfig{Addr: "127.0.0.1:8765"},
		LogLevel:       "info",
	}
}

// Load reads a YAML file over Default. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default after expanding environment variables.
func Parse(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if !isTheme(c.Theme) {
		return fmt.Errorf("config: unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}

	if c.DisplayWidth < MinDisplayWidth || c.DisplayWidth > MaxDisplayWidth {
		return fmt.Errorf("config: display_width %d out of range [%d, %d]", c.DisplayWidth, MinDisplayWidth, MaxDisplayWidth)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	for key, label := range c.Keys {
		if key == "" {
			return errors.New("config: keys: empty key name")
		}
		if _, err := calc.ParseToken(label); err != nil {
			return fmt.Errorf("config: keys: %q: %w", key, err)
		}
	}

	return nil
}

// Bindings resolves the extra key bindings.
func (c Config) Bindings() (map[string]calc.Token, error) {
	out := make(map[string]calc.Token, len(c.Keys))
	for key, label := range c.Keys {
		tok, err := calc.ParseToken(label)
		if err != nil {
			return nil, fmt.Errorf("config: keys: %q: %w", key, err)
		}
		out[key] = tok
	}
	return out, nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

func isTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
