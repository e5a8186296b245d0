package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Tiles.Path != "tiles.txt" {
		t.Errorf("expected tiles.path %q, got %q", "tiles.txt", cfg.Tiles.Path)
	}
	if cfg.Tiles.DistanceLimit != 3 {
		t.Errorf("expected distance_limit 3, got %d", cfg.Tiles.DistanceLimit)
	}
	if cfg.Tiles.IgnoreCase || cfg.Tiles.Strict {
		t.Error("expected ignore_case and strict to be false by default")
	}
	if cfg.Card.FreeSquare != "FREE SQUARE" {
		t.Errorf("expected free square %q, got %q", "FREE SQUARE", cfg.Card.FreeSquare)
	}
	if cfg.Card.Title != "SUMO BINGO!" {
		t.Errorf("expected title %q, got %q", "SUMO BINGO!", cfg.Card.Title)
	}
	if cfg.Card.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Card.Seed)
	}
	if diff := cmp.Diff(DefaultPeople, cfg.People); diff != "" {
		t.Errorf("people mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Path != "bingo.xlsx" {
		t.Errorf("expected output.path %q, got %q", "bingo.xlsx", cfg.Output.Path)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("expected log level %q, got %q", LogLevelInfo, cfg.Log.Level)
	}
}

func TestNewConfig_PeopleNotShared(t *testing.T) {
	cfg := NewConfig()
	cfg.People[0] = "Mallory"

	if DefaultPeople[0] == "Mallory" {
		t.Error("NewConfig must copy DefaultPeople")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	want := NewConfig()
	// distance limit zero is a legitimate setting and survives ApplyDefaults
	want.Tiles.DistanceLimit = 0

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ApplyDefaults mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Tiles:  TilesConfig{Path: "phrases.txt", DistanceLimit: 5, Strict: true},
		Card:   CardConfig{FreeSquare: "Nap", Title: "Office", Seed: 42},
		People: []string{" Ann ", "Bea"},
		Output: OutputConfig{Path: "out/cards.xlsx"},
		Log:    LogConfig{Level: "DEBUG", Dir: "logs"},
	}
	cfg.ApplyDefaults()

	if cfg.Tiles.Path != "phrases.txt" || cfg.Tiles.DistanceLimit != 5 || !cfg.Tiles.Strict {
		t.Errorf("tiles config changed: %+v", cfg.Tiles)
	}
	if cfg.Card.FreeSquare != "Nap" || cfg.Card.Title != "Office" || cfg.Card.Seed != 42 {
		t.Errorf("card config changed: %+v", cfg.Card)
	}
	if diff := cmp.Diff([]string{"Ann", "Bea"}, cfg.People); diff != "" {
		t.Errorf("people mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Path != "out/cards.xlsx" {
		t.Errorf("expected output path preserved, got %q", cfg.Output.Path)
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("expected log level lowercased to %q, got %q", LogLevelDebug, cfg.Log.Level)
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "negative distance limit",
			modify:    func(c *Config) { c.Tiles.DistanceLimit = -1 },
			wantField: "tiles.distance_limit",
		},
		{
			name:      "empty tiles path",
			modify:    func(c *Config) { c.Tiles.Path = "  " },
			wantField: "tiles.path",
		},
		{
			name:      "no people",
			modify:    func(c *Config) { c.People = nil },
			wantField: "people",
		},
		{
			name:      "blank person",
			modify:    func(c *Config) { c.People = []string{"Ann", ""} },
			wantField: "people[1]",
		},
		{
			name:      "empty output path",
			modify:    func(c *Config) { c.Output.Path = "" },
			wantField: "output.path",
		},
		{
			name:      "unknown log level",
			modify:    func(c *Config) { c.Log.Level = "verbose" },
			wantField: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestConfig_Validate_ZeroDistanceIsValid(t *testing.T) {
	cfg := NewConfig()
	cfg.Tiles.DistanceLimit = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected zero distance limit to be valid, got %v", err)
	}
}

func TestConfig_Validate_LogLevelOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "trace"

	errs := cfg.Validate().(ValidationErrors)
	if diff := cmp.Diff([]string{"debug", "info", "warn", "error"}, errs[0].Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Tiles.DistanceLimit = -2
	cfg.Output.Path = ""

	err := cfg.Validate()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}
	if !strings.HasPrefix(err.Error(), "multiple validation errors:") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidationErrors_Error(t *testing.T) {
	tests := []struct {
		name string
		errs ValidationErrors
		want string
	}{
		{name: "empty", errs: nil, want: ""},
		{
			name: "single",
			errs: ValidationErrors{{Field: "people", Message: "must list at least one person"}},
			want: "people: must list at least one person",
		},
		{
			name: "multiple",
			errs: ValidationErrors{
				{Field: "a", Message: "bad"},
				{Field: "b", Message: "worse"},
			},
			want: "multiple validation errors:\n  - a: bad\n  - b: worse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errs.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
