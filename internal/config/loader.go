// Package config provides configuration loading and management for bingocard.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to
	// the working directory.
	DefaultConfigPath = ".bingocard/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BINGOCARD"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath. A missing file is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, bingoerrors.ConfigNotFound(path).WithCause(err)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, bingoerrors.ConfigParseError(path, err)
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, bingoerrors.ConfigParseError(path, err)
	}

	return l.finish(cfg)
}

// LoadOrDefault behaves like LoadConfig, except that a missing file yields
// the defaults (still merged with the environment and validated).
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig())
	}
	return l.LoadConfig(path)
}

func (l *Loader) finish(cfg *Config) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, WrapValidation(err)
	}
	return cfg, nil
}

// WrapValidation converts the result of Validate into a user-facing error.
func WrapValidation(err error) error {
	var errs ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return bingoerrors.Wrap(err, bingoerrors.ErrConfig, "configuration validation failed")
	}
	if len(errs) == 1 {
		return bingoerrors.ConfigValidationError(errs[0].Field, errs[0].Message, errs[0].Options)
	}
	return bingoerrors.Wrap(errs, bingoerrors.ErrConfig, "configuration validation failed")
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Tile settings
	if v := os.Getenv(EnvPrefix + "_TILES_PATH"); v != "" {
		cfg.Tiles.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_TILES_DISTANCE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tiles.DistanceLimit = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_TILES_IGNORE_CASE"); v != "" {
		cfg.Tiles.IgnoreCase = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_TILES_STRICT"); v != "" {
		cfg.Tiles.Strict = parseBool(v)
	}

	// Card settings
	if v := os.Getenv(EnvPrefix + "_CARD_FREE_SQUARE"); v != "" {
		cfg.Card.FreeSquare = v
	}
	if v := os.Getenv(EnvPrefix + "_CARD_TITLE"); v != "" {
		cfg.Card.Title = v
	}
	if v := os.Getenv(EnvPrefix + "_CARD_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Card.Seed = n
		}
	}

	if v := os.Getenv(EnvPrefix + "_PEOPLE"); v != "" {
		cfg.People = SplitPeople(v)
	}

	if v := os.Getenv(EnvPrefix + "_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// SplitPeople parses a comma-separated list of names, trimming each.
func SplitPeople(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook decodes by the yaml tags and composes the standard
// mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToCustomTypeHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(strings.ToLower(data.(string))), nil
		}

		return data, nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, it uses DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}
