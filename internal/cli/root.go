// Package cli provides the command-line interface for ghseed.
package cli

import (
	"github.com/seedtools/ghseed/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for ghseed.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ghseed",
		Short: "Seed a GitHub repository with issues and labels",
		Long: `ghseed bulk-creates GitHub issues and labels from a local file,
driving the gh CLI. Referenced labels are created first (existing
labels are left untouched), then issues are created in file order
with a short pause between creations to respect rate limits.

A failing issue is reported and skipped; the rest of the batch
still runs. Reruns create duplicates - there is no idempotency key.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCommand(c),
		newLabelsCommand(c),
	)

	return root
}
