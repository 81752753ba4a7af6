package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/seedtools/ghseed/internal/app"
	"github.com/seedtools/ghseed/internal/domain"
	"github.com/seedtools/ghseed/internal/usecase"
	"github.com/spf13/cobra"
)

// newLabelsCommand creates the labels command for inspecting an issue file.
func newLabelsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Repo   string
		Create bool
	}

	cmd := &cobra.Command{
		Use:   "labels [file]",
		Short: "List the distinct labels referenced by an issue file",
		Long: `List the distinct labels referenced across all issues in the file,
with the number of issues referencing each. With --create the labels
are also created on the tracker (existing labels are silently skipped),
without creating any issues.`,
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

			var repo string
			if opts.Create {
				repo = c.ResolveRepo(opts.Repo, cfg)
			}

			uc := c.ListLabelsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListLabelsInput{
				Path:   path,
				Repo:   repo,
				Create: opts.Create,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Labels) == 0 {
				_, _ = fmt.Fprintf(w, "No labels referenced by %d issue(s).\n", out.IssueCount)
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "LABEL\tISSUES")
			for _, label := range out.Labels {
				_, _ = fmt.Fprintf(tw, "%s\t%d\n", label.Name, label.Issues)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if opts.Create {
				_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Ensured %d label(s) exist", len(out.Labels))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Target repository as owner/name (default: detect from origin)")
	cmd.Flags().BoolVar(&opts.Create, "create", false, "Create the labels on the tracker")

	return cmd
}
