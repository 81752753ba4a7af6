// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Issue represents a GitHub issue to be created.
type Issue struct {
	Title  string   `json:"title" yaml:"title"`
	Body   string   `json:"body" yaml:"body"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// FileFormat identifies the encoding of an issue file.
type FileFormat string

// Supported issue file formats.
const (
	FormatJSON FileFormat = "json"
	FormatYAML FileFormat = "yaml"
)

// DetectFormat returns the file format for the given path based on its extension.
// Anything that is not .yaml/.yml is treated as JSON.
func DetectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseIssues parses an issue file into a list of issues.
// The content must be an array of objects with title, body and optional labels.
// A missing labels key is equivalent to an empty list.
func ParseIssues(content []byte, format FileFormat) ([]Issue, error) {
	var issues []Issue
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &issues); err != nil {
			return nil, fmt.Errorf("parse issue file: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &issues); err != nil {
			return nil, fmt.Errorf("parse issue file: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	for i, issue := range issues {
		if strings.TrimSpace(issue.Title) == "" {
			return nil, fmt.Errorf("issue %d: %w", i+1, ErrEmptyTitle)
		}
	}
	return issues, nil
}

// CollectLabels returns the distinct labels referenced across all issues,
// in first-seen order.
func CollectLabels(issues []Issue) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, issue := range issues {
		for _, label := range issue.Labels {
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}
	return labels
}

// CountLabels returns how many issues reference each distinct label.
func CountLabels(issues []Issue) map[string]int {
	counts := make(map[string]int)
	for _, issue := range issues {
		for _, label := range issue.Labels {
			counts[label]++
		}
	}
	return counts
}
