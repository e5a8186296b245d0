package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/app"
	"github.com/dbmrq/bingocard/internal/logging"
	"github.com/dbmrq/bingocard/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "preview [FREE_SQUARE_TEXT]",
		Short: "Browse the generated cards in the terminal",
		Long: `Generate the cards without writing a workbook and show them in an
interactive viewer.

Keys:
  ←/→ (h/l, tab)  switch player
  r               reshuffle every card
  ?               toggle help
  q               quit

The seed is shown in the header; pass it to generate with --seed to write
exactly the cards on screen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPreview,
	}
	addGenerateFlags(c)
	return c
}

// runPreview is the main entry point for the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	// Don't mix console log output with the TUI
	closeLog := setupLogging(cmd, cfg, false)
	defer closeLog()

	runner := app.NewRunner(cfg, &app.Options{Logger: logging.Global()})
	result, err := runner.DryRun(cmd.Context())
	if err != nil {
		return err
	}

	return tui.Run(result, cfg)
}
