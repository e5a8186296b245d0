// Package cmd provides the CLI commands for bingocard.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const rootLong = `bingocard builds randomized bingo cards from a list of phrases.

Each line of the tile list becomes one tile; write \n inside a line to break
it inside the cell. Before generating, tiles are checked for duplicates and
near-duplicates (by edit distance). Every player gets a 5×5 card with the
free square in the center, written as one worksheet of an .xlsx workbook.

Running bingocard without a subcommand is the same as "bingocard generate".`

// newRootCmd builds the complete command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bingocard [FREE_SQUARE_TEXT]",
		Short: "Generate randomized bingo cards from a list of phrases",
		Long:  rootLong,
		Args:  cobra.MaximumNArgs(1),
		// When bingocard is called with no subcommand, generate cards.
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Config file (default .bingocard/config.yaml)")
	root.PersistentFlags().String("log-level", "", "Print log lines at this level to stderr: debug, info, warn, error")
	addGenerateFlags(root)

	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newPreviewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("bingocard {{.Version}}\n")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprint(os.Stderr, bingoerrors.FormatError(err))
		os.Exit(1)
	}
}
