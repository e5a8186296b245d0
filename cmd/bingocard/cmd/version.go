package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bingocard/internal/version"
)

// updateCheckTimeout bounds the release lookup of "version --check".
const updateCheckTimeout = 10 * time.Second

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Print the bingocard version, commit, build date and platform.

With --check, also ask GitHub whether a newer release exists.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().BoolP("check", "c", false, "Check for available updates")
	return c
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.NewInfo(Version, Commit, Date).FullString())

	if check, _ := cmd.Flags().GetBool("check"); check {
		return checkForUpdate(cmd, version.NewChecker())
	}
	return nil
}

// checkForUpdate prints whether checker knows a release newer than Version.
func checkForUpdate(cmd *cobra.Command, checker *version.Checker) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	ctx, cancel := context.WithTimeout(cmd.Context(), updateCheckTimeout)
	defer cancel()

	release, err := checker.CheckForUpdate(ctx, Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if release == nil {
		fmt.Fprintln(out, renderStatusLine(statusOK, "bingocard "+Version+" is the latest version", colorize))
		return nil
	}

	fmt.Fprintln(out, renderStatusLine(statusInfo,
		fmt.Sprintf("bingocard %s is available (current: %s)", release.TagName, Version), colorize))
	fmt.Fprintf(out, "Release notes: %s\n", release.HTMLURL)
	return nil
}
