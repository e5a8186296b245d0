package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/app"
	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
	"github.com/dbmrq/bingocard/internal/logging"
)

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Report duplicate and similar tiles without generating cards",
		Long: `Compare every pair of tiles and list those within the edit distance
limit, plus exact repeats.

With --strict the command exits non-zero when anything is found, which
makes it usable as a pre-commit check on the tile list.

Examples:
  bingocard check
  bingocard check --dist 5 --ignore-case
  bingocard check --strict`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	addTileFlags(c)
	return c
}

// runCheck is the main entry point for the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cmd, cfg, true)
	defer closeLog()

	runner := app.NewRunner(cfg, &app.Options{Logger: logging.Global()})
	report, err := runner.Check(cmd.Context())
	if err != nil {
		return err
	}

	printReport(cmd, report, shouldColorize(cmd.OutOrStdout()))

	if cfg.Tiles.Strict && !report.Clean() {
		return bingoerrors.SimilarTilesFound(len(report.Duplicates()), len(report.Similar()), report.DistanceLimit)
	}
	return nil
}
