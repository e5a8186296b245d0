package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbmrq/bingocard/internal/config"
)

// ConfigDir is the per-project configuration directory.
const ConfigDir = ".bingocard"

// sampleTiles seeds a new project. It holds exactly enough phrases for one
// card so that a fresh init can generate immediately.
var sampleTiles = []string{
	"Someone is on mute",
	"\"Can you see my screen?\"",
	"Dog barks in background",
	"Meeting runs over time",
	"\"Let's take this offline\"",
	"Someone joins late",
	"Echo on the line",
	"\"You're on mute\"",
	"Frozen video",
	"Wrong window shared",
	"\"Can everyone hear me?\"",
	"Kid walks into frame",
	"Someone eats on camera",
	"\"Sorry, go ahead\"",
	"Calendar invite has\\nno agenda",
	"Someone says \"synergy\"",
	"Two people talk at once",
	"\"Circle back\"",
	"Doorbell rings",
	"Notification sounds",
	"Someone leaves early",
	"\"Quick question\"",
	"Meeting could have\\nbeen an email",
	"Awkward silence",
}

// SetupProgressFunc is called with progress updates during setup.
type SetupProgressFunc func(status string)

// SetupResult contains the results of the setup flow.
type SetupResult struct {
	// Config is the configuration that was written.
	Config *config.Config
	// ConfigPath is where the configuration was written.
	ConfigPath string
	// TilesPath is the sample tile list, empty when one already existed.
	TilesPath string
}

// Setup creates the files a new bingocard project needs.
type Setup struct {
	// ProjectDir is the root directory of the project.
	ProjectDir string
	// Force overwrites an existing configuration.
	Force bool
	// OnProgress is called with status updates.
	OnProgress SetupProgressFunc
}

// NewSetup creates a new Setup for projectDir.
func NewSetup(projectDir string) *Setup {
	return &Setup{
		ProjectDir: projectDir,
		OnProgress: func(status string) {},
	}
}

// NeedsSetup returns true if the project has no configuration file.
func NeedsSetup(projectDir string) bool {
	_, err := os.Stat(filepath.Join(projectDir, config.DefaultConfigPath))
	return os.IsNotExist(err)
}

// CreateConfigDir creates the .bingocard directory structure.
func (s *Setup) CreateConfigDir() error {
	dir := filepath.Join(s.ProjectDir, ConfigDir)

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", ConfigDir, err)
	}

	s.report("Created " + ConfigDir + " directory")
	return nil
}

// SaveConfig saves the configuration to .bingocard/config.yaml.
func (s *Setup) SaveConfig(cfg *config.Config) (string, error) {
	path := filepath.Join(s.ProjectDir, config.DefaultConfigPath)
	if err := config.Save(cfg, path); err != nil {
		return "", err
	}
	s.report("Wrote " + config.DefaultConfigPath)
	return path, nil
}

// WriteSampleTiles writes a sample tile list to path relative to the project
// unless a file is already there. It reports whether it wrote anything.
func (s *Setup) WriteSampleTiles(path string) (bool, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.ProjectDir, path)
	}
	if _, err := os.Stat(path); err == nil {
		s.report("Kept existing " + filepath.Base(path))
		return false, nil
	}

	var content []byte
	for _, t := range sampleTiles {
		content = append(content, t...)
		content = append(content, '\n')
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("failed to write sample tiles: %w", err)
	}
	s.report("Wrote sample " + filepath.Base(path))
	return true, nil
}

// BuildConfig returns the configuration a fresh project starts with: the
// defaults plus file logging into .bingocard/logs.
func (s *Setup) BuildConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Log.Dir = filepath.Join(ConfigDir, "logs")
	return cfg
}

// Run performs the whole setup. An existing configuration is left alone
// unless Force is set.
func (s *Setup) Run() (*SetupResult, error) {
	if !s.Force && !NeedsSetup(s.ProjectDir) {
		return nil, fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultConfigPath)
	}

	if err := s.CreateConfigDir(); err != nil {
		return nil, err
	}

	cfg := s.BuildConfig()
	configPath, err := s.SaveConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	result := &SetupResult{Config: cfg, ConfigPath: configPath}

	wrote, err := s.WriteSampleTiles(cfg.Tiles.Path)
	if err != nil {
		return nil, err
	}
	if wrote {
		result.TilesPath = filepath.Join(s.ProjectDir, cfg.Tiles.Path)
	}

	return result, nil
}

func (s *Setup) report(status string) {
	if s.OnProgress != nil {
		s.OnProgress(status)
	}
}
