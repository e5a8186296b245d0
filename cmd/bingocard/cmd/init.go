package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/app"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Create a config file and a sample tile list",
		Long: `Initialize bingocard in the current directory.

This command creates:
  - .bingocard/config.yaml   Default configuration
  - .bingocard/logs/         Log directory
  - tiles.txt                Sample tile list (kept if it already exists)

Use --force to overwrite an existing configuration.

Examples:
  bingocard init          # Initialize in current directory
  bingocard init --force  # Overwrite existing config`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	return c
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	colorize := shouldColorize(cmd.OutOrStdout())
	setup := app.NewSetup(projectDir)
	setup.Force = force
	setup.OnProgress = func(status string) {
		cmd.Println(renderStatusLine(statusInfo, status, colorize))
	}

	result, err := setup.Run()
	if err != nil {
		return err
	}

	cmd.Println("")
	cmd.Println("bingocard initialized successfully!")
	cmd.Printf("Edit %s to configure players and titles.\n", result.ConfigPath)
	if result.TilesPath != "" {
		cmd.Printf("Replace the sample phrases in %s with your own.\n", result.TilesPath)
	}
	cmd.Println("Run 'bingocard' to write the cards.")
	return nil
}
