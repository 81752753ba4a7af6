package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want FileFormat
	}{
		{"issues.json", FormatJSON},
		{"issues.yaml", FormatYAML},
		{"issues.yml", FormatYAML},
		{"issues.YAML", FormatYAML},
		{"issues.txt", FormatJSON},
		{"issues", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestParseIssues_JSON(t *testing.T) {
	content := []byte(`[
		{"title": "Bug1", "body": "desc", "labels": ["bug", "ui"]},
		{"title": "Bug2", "body": "desc2", "labels": ["ui"]}
	]`)

	issues, err := ParseIssues(content, FormatJSON)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "Bug1", issues[0].Title)
	assert.Equal(t, "desc", issues[0].Body)
	assert.Equal(t, []string{"bug", "ui"}, issues[0].Labels)
	assert.Equal(t, "Bug2", issues[1].Title)
	assert.Equal(t, []string{"ui"}, issues[1].Labels)
}

func TestParseIssues_YAML(t *testing.T) {
	content := []byte(`
- title: Bug1
  body: desc
  labels: [bug, ui]
- title: Bug2
  body: desc2
`)

	issues, err := ParseIssues(content, FormatYAML)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, []string{"bug", "ui"}, issues[0].Labels)
	assert.Empty(t, issues[1].Labels)
}

func TestParseIssues_MissingLabelsDefaultsToEmpty(t *testing.T) {
	content := []byte(`[{"title": "Bug1", "body": "desc"}]`)

	issues, err := ParseIssues(content, FormatJSON)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Labels)
}

func TestParseIssues_MalformedJSON(t *testing.T) {
	_, err := ParseIssues([]byte(`{not json`), FormatJSON)
	require.Error(t, err)
}

func TestParseIssues_EmptyTitle(t *testing.T) {
	content := []byte(`[{"title": "", "body": "desc"}]`)

	_, err := ParseIssues(content, FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestCollectLabels(t *testing.T) {
	issues := []Issue{
		{Title: "A", Labels: []string{"bug", "ui"}},
		{Title: "B", Labels: []string{"ui"}},
		{Title: "C"},
		{Title: "D", Labels: []string{"docs", "bug"}},
	}

	labels := CollectLabels(issues)
	assert.Equal(t, []string{"bug", "ui", "docs"}, labels)
}

func TestCollectLabels_NoLabels(t *testing.T) {
	labels := CollectLabels([]Issue{{Title: "A"}, {Title: "B"}})
	assert.Empty(t, labels)
}

func TestCountLabels(t *testing.T) {
	issues := []Issue{
		{Title: "A", Labels: []string{"bug", "ui"}},
		{Title: "B", Labels: []string{"ui"}},
	}

	counts := CountLabels(issues)
	assert.Equal(t, map[string]int{"bug": 1, "ui": 2}, counts)
}
