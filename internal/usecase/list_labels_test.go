package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/seedtools/ghseed/internal/domain"
	"github.com/seedtools/ghseed/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLabels_Execute(t *testing.T) {
	path := writeIssueFile(t, "issues.json", `[
		{"title": "A", "body": "a", "labels": ["ui", "bug"]},
		{"title": "B", "body": "b", "labels": ["ui"]},
		{"title": "C", "body": "c"}
	]`)

	gh := testutil.NewMockGitHub()
	uc := NewListLabels(gh, testLogger())

	out, err := uc.Execute(context.Background(), ListLabelsInput{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 3, out.IssueCount)
	require.Len(t, out.Labels, 2)
	assert.Equal(t, LabelInfo{Name: "bug", Issues: 1}, out.Labels[0])
	assert.Equal(t, LabelInfo{Name: "ui", Issues: 2}, out.Labels[1])

	// Listing alone never touches the tracker.
	assert.Empty(t, gh.LabelCalls)
}

func TestListLabels_Execute_Create(t *testing.T) {
	path := writeIssueFile(t, "issues.json", `[{"title": "A", "body": "a", "labels": ["ui", "bug"]}]`)

	gh := testutil.NewMockGitHub()
	uc := NewListLabels(gh, testLogger())

	_, err := uc.Execute(context.Background(), ListLabelsInput{Path: path, Create: true, Repo: "octocat/hello-world"})
	require.NoError(t, err)

	require.Len(t, gh.LabelCalls, 2)
	assert.Equal(t, "bug", gh.LabelCalls[0].Name)
	assert.Equal(t, "octocat/hello-world", gh.LabelCalls[0].Repo)
}

func TestListLabels_Execute_CreateIgnoresFailures(t *testing.T) {
	path := writeIssueFile(t, "issues.json", `[{"title": "A", "body": "a", "labels": ["bug"]}]`)

	gh := testutil.NewMockGitHub()
	gh.LabelErr = assert.AnError
	uc := NewListLabels(gh, testLogger())

	_, err := uc.Execute(context.Background(), ListLabelsInput{Path: path, Create: true})
	require.NoError(t, err)
}

func TestListLabels_Execute_MissingFile(t *testing.T) {
	gh := testutil.NewMockGitHub()
	uc := NewListLabels(gh, testLogger())

	_, err := uc.Execute(context.Background(), ListLabelsInput{Path: filepath.Join(t.TempDir(), "absent.json")})
	require.ErrorIs(t, err, domain.ErrIssueFileNotFound)
}
