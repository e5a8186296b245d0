package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/config"
	"github.com/dbmrq/bingocard/internal/logging"
)

// addTileFlags registers the flags that affect loading and checking tiles.
func addTileFlags(c *cobra.Command) {
	c.Flags().String("tiles", "", "Tile list, one phrase per line (default tiles.txt)")
	c.Flags().Int("dist", 0, "Report tiles within this edit distance of each other (default 3)")
	c.Flags().Bool("ignore-case", false, "Compare tiles ignoring case")
	c.Flags().Bool("strict", false, "Fail when duplicate or similar tiles are found")
}

// addGenerateFlags registers the flags that affect card generation.
func addGenerateFlags(c *cobra.Command) {
	addTileFlags(c)
	c.Flags().String("people", "", "Comma-separated player names, one card each")
	c.Flags().StringP("output", "o", "", "Workbook to write (default bingo.xlsx)")
	c.Flags().String("title", "", `Card header title (default "SUMO BINGO!")`)
	c.Flags().Int64("seed", 0, "Shuffle seed; 0 picks one from the clock")
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// loadConfig reads the config file (or defaults), then applies flags and an
// optional free square argument, and validates the result.
// An explicitly named --config file must exist.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultConfigPath)
	}
	if err != nil {
		return nil, err
	}

	applyFlags(cmd, cfg)
	if len(args) > 0 && args[0] != "" {
		cfg.Card.FreeSquare = args[0]
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, config.WrapValidation(err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()

	if flagChanged(cmd, "tiles") {
		cfg.Tiles.Path, _ = fs.GetString("tiles")
	}
	if flagChanged(cmd, "dist") {
		cfg.Tiles.DistanceLimit, _ = fs.GetInt("dist")
	}
	if flagChanged(cmd, "ignore-case") {
		cfg.Tiles.IgnoreCase, _ = fs.GetBool("ignore-case")
	}
	if flagChanged(cmd, "strict") {
		cfg.Tiles.Strict, _ = fs.GetBool("strict")
	}
	if flagChanged(cmd, "people") {
		people, _ := fs.GetString("people")
		cfg.People = config.SplitPeople(people)
	}
	if flagChanged(cmd, "output") {
		cfg.Output.Path, _ = fs.GetString("output")
	}
	if flagChanged(cmd, "title") {
		cfg.Card.Title, _ = fs.GetString("title")
	}
	if flagChanged(cmd, "seed") {
		cfg.Card.Seed, _ = fs.GetInt64("seed")
	}
	if flagChanged(cmd, "log-level") {
		level, _ := fs.GetString("log-level")
		cfg.Log.Level = config.LogLevel(level)
	}
}

// setupLogging initializes the global logger from cfg. Log lines reach the
// terminal only when console is true and --log-level was given, so the
// report output stays clean by default. The returned func closes the logger.
func setupLogging(cmd *cobra.Command, cfg *config.Config, console bool) func() {
	level, _ := logging.ParseLevel(string(cfg.Log.Level))
	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	logConfig.LogDir = cfg.Log.Dir
	logConfig.JSONFormat = cfg.Log.JSON
	logConfig.Console = nil
	if console && flagChanged(cmd, "log-level") {
		logConfig.Console = cmd.ErrOrStderr()
	}

	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		cmd.PrintErrf("Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	logging.Debug("bingocard starting", "version", Version, "pid", os.Getpid())
	return func() { _ = logging.CloseGlobal() }
}
