package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/app"
	"github.com/dbmrq/bingocard/internal/logging"
	"github.com/dbmrq/bingocard/internal/tiles"
)

func newGenerateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate [FREE_SQUARE_TEXT]",
		Short: "Check the tiles and write one card per player",
		Long: `Load the tile list, report duplicate and similar tiles, then write a
workbook with one shuffled 5×5 card per player.

The optional argument replaces the free square text in the center.

Examples:
  bingocard generate --people "Ann,Bea,Cal"
  bingocard generate --tiles office.txt --dist 2 "Coffee break"
  bingocard generate --seed 42 -o cards.xlsx   # reproducible shuffle`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
	addGenerateFlags(c)
	return c
}

// runGenerate is the main entry point for the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cmd, cfg, true)
	defer closeLog()

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	runner := app.NewRunner(cfg, &app.Options{
		Logger: logging.Global(),
	})
	result, err := runner.Run(cmd.Context())
	if result != nil && result.Report != nil {
		printReport(cmd, result.Report, colorize)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderStatusLine(statusOK,
		fmt.Sprintf("Wrote %d cards to %s (seed %d)", len(result.Cards), result.OutputPath, result.Seed),
		colorize))
	return nil
}

// printReport prints the findings table, or a single line for a clean set.
func printReport(cmd *cobra.Command, report *tiles.Report, colorize bool) {
	out := cmd.OutOrStdout()
	if report.Clean() {
		fmt.Fprintln(out, renderStatusLine(statusOK,
			fmt.Sprintf("No duplicate or similar tiles (%d tiles, %d pairs compared, limit %d)",
				report.Compared, report.Pairs(), report.DistanceLimit),
			colorize))
		return
	}

	fmt.Fprintln(out, renderStatusLine(statusWarn,
		fmt.Sprintf("%d duplicate and %d similar tiles (limit %d)",
			len(report.Duplicates()), len(report.Similar()), report.DistanceLimit),
		colorize))
	fmt.Fprintln(out, renderFindings(report))
}
