package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/seedtools/ghseed/internal/app"
	"github.com/seedtools/ghseed/internal/domain"
	"github.com/seedtools/ghseed/internal/usecase"
	"github.com/spf13/cobra"
)

// newImportCommand creates the import command for creating issues and labels.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Repo       string
		Delay      int
		DryRun     bool
		SkipLabels bool
	}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Create issues and labels from an issue file",
		Long: `Create GitHub issues and labels from an issue file.

The file is a JSON (or YAML, by extension) array of issue objects:

  [
    {"title": "Fix login", "body": "Steps to reproduce ...", "labels": ["bug", "ui"]},
    {"title": "Add dark mode", "body": "..."}
  ]

Every label referenced by any issue is created first; labels that
already exist are silently skipped. Issues are then created in file
order, pausing between creations. A failing issue is reported on
stderr and the batch continues.

Without [file] the path comes from the import.file config key
(default: issues.json). The target repository is taken from --repo,
the import.repo config key, or the origin remote, in that order.

Examples:
  # Import from the default file into the current repository
  ghseed import

  # Import a specific file into another repository
  ghseed import backlog.yaml --repo octocat/hello-world

  # Preview without creating anything
  ghseed import --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			path := cfg.Import.File
			if len(args) > 0 {
				path = args[0]
			}

			if opts.Repo != "" {
				if err := domain.ValidateRepo(opts.Repo); err != nil {
					return err
				}
			}

			delay := cfg.Delay()
			if cmd.Flags().Changed("delay") {
				delay = time.Duration(opts.Delay) * time.Second
			}

			uc := c.ImportIssuesUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out, err := uc.Execute(cmd.Context(), usecase.ImportIssuesInput{
				Path:       path,
				Repo:       c.ResolveRepo(opts.Repo, cfg),
				Delay:      delay,
				DryRun:     opts.DryRun,
				SkipLabels: opts.SkipLabels,
			})
			if err != nil {
				// A missing file is reported, not raised.
				if errors.Is(err, domain.ErrIssueFileNotFound) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Error: File not found at %s\n", path)
					return nil
				}
				return err
			}

			if !opts.DryRun {
				printImportSummary(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Target repository as owner/name (default: detect from origin)")
	cmd.Flags().IntVar(&opts.Delay, "delay", domain.DefaultDelaySeconds, "Seconds to pause after each created issue")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Parse and report without creating anything")
	cmd.Flags().BoolVar(&opts.SkipLabels, "skip-labels", false, "Skip the label pre-creation pass")

	return cmd
}

// printImportSummary prints the final counts of an import run.
func printImportSummary(w io.Writer, out *usecase.ImportIssuesOutput) {
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Created %d issue(s)", out.Created)))
	if out.Failed > 0 {
		_, _ = fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Failed %d issue(s):", out.Failed)))
		for _, r := range out.Results {
			if r.Err != nil {
				_, _ = fmt.Fprintf(w, "  - %s\n", r.Title)
			}
		}
	}
}
