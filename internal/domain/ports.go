package domain

import (
	"context"
	"io"
	"time"
)

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)

	// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// GitHub provides GitHub integration via the gh CLI.
// An empty repo means gh resolves the repository from the working directory.
type GitHub interface {
	// CreateLabel creates a label. Output is discarded; the caller is
	// expected to ignore failures since labels routinely pre-exist.
	CreateLabel(ctx context.Context, repo, name string) error

	// CreateIssue creates an issue and returns the created issue URL
	// (the gh CLI's stdout). On a non-zero exit the returned error
	// carries the captured stderr.
	CreateIssue(ctx context.Context, repo string, issue Issue) (string, error)
}

// RepoLocator resolves the target repository from the local environment.
type RepoLocator interface {
	// OriginRepo returns the "owner/name" of the origin remote.
	OriginRepo() (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep pauses for the given duration or until the context is cancelled.
	Sleep(ctx context.Context, d time.Duration)
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses for the given duration or until the context is cancelled.
func (RealClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
