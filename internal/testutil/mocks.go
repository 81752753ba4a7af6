// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/seedtools/ghseed/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
	Slept   []time.Duration
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Sleep records the requested duration without sleeping.
func (m *MockClock) Sleep(_ context.Context, d time.Duration) {
	m.Slept = append(m.Slept, d)
}

// ExecResponse describes the outcome of one mocked command execution.
type ExecResponse struct {
	Stdout string
	Stderr string
	Err    error
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// It records every command and replays configured responses in order.
type MockCommandExecutor struct {
	Commands  []*domain.ExecCommand
	Responses []ExecResponse
	Output    []byte
	Err       error

	next int
}

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Execute records the command and returns the configured combined output.
func (m *MockCommandExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	return m.Output, m.Err
}

// ExecuteWithContext records the command and replays the next response.
// With no responses configured it succeeds with empty output.
func (m *MockCommandExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	m.Commands = append(m.Commands, cmd)
	if m.next >= len(m.Responses) {
		return nil
	}
	resp := m.Responses[m.next]
	m.next++
	_, _ = io.WriteString(stdout, resp.Stdout)
	_, _ = io.WriteString(stderr, resp.Stderr)
	return resp.Err
}

// LabelCall records one CreateLabel invocation.
type LabelCall struct {
	Repo string
	Name string
}

// IssueCall records one CreateIssue invocation.
type IssueCall struct {
	Repo  string
	Issue domain.Issue
}

// MockGitHub is a test double for domain.GitHub.
type MockGitHub struct {
	LabelCalls []LabelCall
	IssueCalls []IssueCall

	// LabelErr is returned from every CreateLabel call.
	LabelErr error

	// FailTitles maps issue titles to the error message returned for them.
	FailTitles map[string]string
}

// NewMockGitHub creates a new MockGitHub.
func NewMockGitHub() *MockGitHub {
	return &MockGitHub{FailTitles: make(map[string]string)}
}

// CreateLabel records the call.
func (m *MockGitHub) CreateLabel(_ context.Context, repo, name string) error {
	m.LabelCalls = append(m.LabelCalls, LabelCall{Repo: repo, Name: name})
	return m.LabelErr
}

// CreateIssue records the call and returns a synthetic issue URL,
// or an error for titles listed in FailTitles.
func (m *MockGitHub) CreateIssue(_ context.Context, repo string, issue domain.Issue) (string, error) {
	m.IssueCalls = append(m.IssueCalls, IssueCall{Repo: repo, Issue: issue})
	if msg, ok := m.FailTitles[issue.Title]; ok {
		return "", fmt.Errorf("gh issue create: %s", msg)
	}
	return fmt.Sprintf("https://github.com/example/repo/issues/%d", len(m.IssueCalls)), nil
}

// MockRepoLocator is a test double for domain.RepoLocator.
type MockRepoLocator struct {
	Repo string
	Err  error
}

// OriginRepo returns the configured repo.
func (m *MockRepoLocator) OriginRepo() (string, error) {
	return m.Repo, m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, falling back to defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
