// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/seedtools/ghseed/internal/domain"
)

// ImportIssuesInput contains the parameters for importing issues.
type ImportIssuesInput struct {
	Path       string        // Issue file path
	Repo       string        // Target repository as owner/name (empty = gh default)
	Delay      time.Duration // Pause after each successful creation
	DryRun     bool          // If true, parse and report without creating anything
	SkipLabels bool          // If true, skip the label pre-creation pass
}

// IssueResult records the outcome of one issue creation attempt.
type IssueResult struct {
	Title string
	URL   string // Created issue URL (empty on failure)
	Err   error  // Creation error (nil on success)
}

// ImportIssuesOutput contains the result of an import run.
type ImportIssuesOutput struct {
	Labels  []string      // Distinct labels referenced by the issues
	Results []IssueResult // One entry per issue, in file order
	Created int
	Failed  int
}

// ImportIssues is the use case for bulk-creating issues from a file.
//
// The run is best-effort: label creation failures are ignored (labels
// routinely pre-exist) and a failing issue does not abort the batch.
// There is no idempotency key, so rerunning an import duplicates issues
// that were already created.
type ImportIssues struct {
	github domain.GitHub
	clock  domain.Clock
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewImportIssues creates a new ImportIssues use case.
// stdout and stderr are the writers for progress and failure reporting.
func NewImportIssues(github domain.GitHub, clock domain.Clock, logger *slog.Logger, stdout, stderr io.Writer) *ImportIssues {
	return &ImportIssues{
		github: github,
		clock:  clock,
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute imports the issues from the input file.
// A missing file returns domain.ErrIssueFileNotFound before any external
// invocation; malformed content is a fatal error.
func (uc *ImportIssues) Execute(ctx context.Context, in ImportIssuesInput) (*ImportIssuesOutput, error) {
	issues, err := readIssueFile(in.Path)
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintf(uc.stdout, "Found %d issues to create.\n", len(issues))

	labels := domain.CollectLabels(issues)
	out := &ImportIssuesOutput{
		Labels:  labels,
		Results: make([]IssueResult, 0, len(issues)),
	}

	if in.DryRun {
		return uc.dryRun(issues, out)
	}

	if !in.SkipLabels && len(labels) > 0 {
		uc.ensureLabels(ctx, in.Repo, labels)
	}

	total := len(issues)
	for i, issue := range issues {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		_, _ = fmt.Fprintf(uc.stdout, "[%d/%d] Creating issue: %s\n", i+1, total, issue.Title)

		url, err := uc.github.CreateIssue(ctx, in.Repo, issue)
		if err != nil {
			// A single failure never aborts the batch.
			out.Failed++
			out.Results = append(out.Results, IssueResult{Title: issue.Title, Err: err})
			_, _ = fmt.Fprintf(uc.stderr, "Failed to create issue %q: %v\n", issue.Title, err)
			uc.logger.Warn("issue creation failed", "title", issue.Title, "error", err)
			continue
		}

		out.Created++
		out.Results = append(out.Results, IssueResult{Title: issue.Title, URL: url})
		_, _ = fmt.Fprintf(uc.stdout, "Success: %s\n", url)

		// Pace creations to stay under the tracker's rate limits.
		if in.Delay > 0 {
			uc.clock.Sleep(ctx, in.Delay)
		}
	}

	return out, nil
}

// ensureLabels creates every label, discarding failures.
// Labels that already exist make `gh label create` exit non-zero,
// which is the expected steady state.
func (uc *ImportIssues) ensureLabels(ctx context.Context, repo string, labels []string) {
	_, _ = fmt.Fprintf(uc.stdout, "Ensuring %d labels exist: [%s]\n", len(labels), strings.Join(labels, ", "))
	for _, label := range labels {
		if err := uc.github.CreateLabel(ctx, repo, label); err != nil {
			uc.logger.Debug("label creation skipped", "label", label, "error", err)
		}
	}
}

// dryRun reports what would be created without invoking the tracker.
func (uc *ImportIssues) dryRun(issues []domain.Issue, out *ImportIssuesOutput) (*ImportIssuesOutput, error) {
	_, _ = fmt.Fprintln(uc.stdout, "Dry run - nothing will be created.")
	if len(out.Labels) > 0 {
		_, _ = fmt.Fprintf(uc.stdout, "Would ensure %d labels exist: [%s]\n", len(out.Labels), strings.Join(out.Labels, ", "))
	}
	total := len(issues)
	for i, issue := range issues {
		_, _ = fmt.Fprintf(uc.stdout, "[%d/%d] Would create issue: %s\n", i+1, total, issue.Title)
		out.Results = append(out.Results, IssueResult{Title: issue.Title})
	}
	return out, nil
}

// readIssueFile reads and parses an issue file.
func readIssueFile(path string) ([]domain.Issue, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrIssueFileNotFound
		}
		return nil, fmt.Errorf("read issue file: %w", err)
	}
	return domain.ParseIssues(content, domain.DetectFormat(path))
}
