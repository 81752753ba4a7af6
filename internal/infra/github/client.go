// Package github provides GitHub integration via the gh CLI.
package github

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/seedtools/ghseed/internal/domain"
)

// ghBinary is the gh CLI executable name.
const ghBinary = "gh"

// Client implements domain.GitHub by driving the gh CLI as a child process.
type Client struct {
	executor domain.CommandExecutor
	dir      string // working directory for gh invocations ("" = inherit)
}

// NewClient creates a new GitHub client.
func NewClient(executor domain.CommandExecutor) *Client {
	return &Client{executor: executor}
}

// NewClientInDir creates a new GitHub client that runs gh in the given directory.
func NewClientInDir(executor domain.CommandExecutor, dir string) *Client {
	return &Client{executor: executor, dir: dir}
}

// Ensure Client implements domain.GitHub interface.
var _ domain.GitHub = (*Client)(nil)

// CreateLabel creates a label via `gh label create`.
// Output is discarded; failures (typically "label already exists") are
// returned as-is so the caller can decide to ignore them.
func (c *Client) CreateLabel(ctx context.Context, repo, name string) error {
	args := []string{"label", "create", name}
	args = appendRepoFlag(args, repo)
	cmd := domain.NewCommand(ghBinary, args, c.dir)
	return c.executor.ExecuteWithContext(ctx, cmd, io.Discard, io.Discard)
}

// CreateIssue creates an issue via `gh issue create` and returns the
// created issue URL. On a non-zero exit the returned error carries the
// captured stderr.
func (c *Client) CreateIssue(ctx context.Context, repo string, issue domain.Issue) (string, error) {
	args := []string{"issue", "create", "--title", issue.Title, "--body", issue.Body}
	for _, label := range issue.Labels {
		args = append(args, "--label", label)
	}
	args = appendRepoFlag(args, repo)

	var stdout, stderr bytes.Buffer
	cmd := domain.NewCommand(ghBinary, args, c.dir)
	if err := c.executor.ExecuteWithContext(ctx, cmd, &stdout, &stderr); err != nil {
		return "", fmt.Errorf("gh issue create: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// appendRepoFlag appends -R owner/name when a repo is specified.
// With no repo, gh resolves the repository from the working directory.
func appendRepoFlag(args []string, repo string) []string {
	if repo != "" {
		return append(args, "-R", repo)
	}
	return args
}
