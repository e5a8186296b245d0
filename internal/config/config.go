// Package config provides configuration data structures for bingocard.
package config

import (
	"fmt"
	"strings"

	"github.com/dbmrq/bingocard/internal/card"
	"github.com/dbmrq/bingocard/internal/tiles"
	"github.com/dbmrq/bingocard/internal/workbook"
)

// Config represents the complete bingocard configuration loaded from
// .bingocard/config.yaml.
type Config struct {
	Tiles  TilesConfig  `yaml:"tiles"  json:"tiles"`
	Card   CardConfig   `yaml:"card"   json:"card"`
	People []string     `yaml:"people" json:"people"`
	Output OutputConfig `yaml:"output" json:"output"`
	Log    LogConfig    `yaml:"log"    json:"log"`
}

// TilesConfig configures where tiles come from and how they are checked.
type TilesConfig struct {
	// Path is the newline-delimited tile list (default: tiles.txt).
	Path string `yaml:"path" json:"path"`
	// DistanceLimit is the largest edit distance reported as similar (default: 3).
	DistanceLimit int `yaml:"distance_limit" json:"distance_limit"`
	// IgnoreCase compares tiles case-insensitively (default: false).
	IgnoreCase bool `yaml:"ignore_case" json:"ignore_case"`
	// Strict refuses to generate cards when the check reports anything (default: false).
	Strict bool `yaml:"strict" json:"strict"`
}

// CardConfig configures card content.
type CardConfig struct {
	// FreeSquare is the center cell text (default: "FREE SQUARE").
	FreeSquare string `yaml:"free_square" json:"free_square"`
	// Title prefixes every card header (default: "SUMO BINGO!").
	Title string `yaml:"title" json:"title"`
	// Seed fixes the shuffle. Zero seeds from the clock.
	Seed int64 `yaml:"seed" json:"seed"`
}

// OutputConfig configures where the workbook is written.
type OutputConfig struct {
	// Path is the workbook file (default: bingo.xlsx).
	Path string `yaml:"path" json:"path"`
}

// LogLevel is a minimum logging level name.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level LogLevel `yaml:"level" json:"level"`
	// Dir enables file logging into this directory. Empty disables it.
	Dir string `yaml:"dir" json:"dir"`
	// JSON switches the handler to JSON output.
	JSON bool `yaml:"json" json:"json"`
}

// DefaultPeople is the player list used when none is configured.
var DefaultPeople = []string{"Alice", "Bob"}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Tiles: TilesConfig{
			Path:          tiles.DefaultPath,
			DistanceLimit: tiles.DefaultDistanceLimit,
		},
		Card: CardConfig{
			FreeSquare: card.DefaultFreeSquare,
			Title:      workbook.DefaultTitle,
		},
		People: append([]string(nil), DefaultPeople...),
		Output: OutputConfig{
			Path: workbook.DefaultOutputPath,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// ApplyDefaults applies default values to any unset fields and trims
// player names.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Tiles.Path == "" {
		c.Tiles.Path = defaults.Tiles.Path
	}
	// A zero distance limit is meaningful (report exact matches only), so it
	// is never replaced here.

	if c.Card.FreeSquare == "" {
		c.Card.FreeSquare = defaults.Card.FreeSquare
	}
	if c.Card.Title == "" {
		c.Card.Title = defaults.Card.Title
	}

	if len(c.People) == 0 {
		c.People = defaults.People
	}
	for i, p := range c.People {
		c.People[i] = strings.TrimSpace(p)
	}

	if c.Output.Path == "" {
		c.Output.Path = defaults.Output.Path
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = LogLevel(strings.ToLower(string(c.Log.Level)))
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Options lists accepted values, when the field is an enumeration.
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Tiles.Path) == "" {
		errs = append(errs, &ValidationError{Field: "tiles.path", Message: "must not be empty"})
	}
	if c.Tiles.DistanceLimit < 0 {
		errs = append(errs, &ValidationError{Field: "tiles.distance_limit", Message: "must be non-negative"})
	}

	if len(c.People) == 0 {
		errs = append(errs, &ValidationError{Field: "people", Message: "must list at least one person"})
	}
	for i, p := range c.People {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("people[%d]", i),
				Message: "name must not be empty",
			})
		}
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		errs = append(errs, &ValidationError{Field: "output.path", Message: "must not be empty"})
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: fmt.Sprintf("unknown level %q", c.Log.Level),
				Options: []string{"debug", "info", "warn", "error"},
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
