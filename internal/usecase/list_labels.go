package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/seedtools/ghseed/internal/domain"
)

// ListLabelsInput contains the parameters for listing labels.
type ListLabelsInput struct {
	Path   string // Issue file path
	Repo   string // Target repository as owner/name (empty = gh default)
	Create bool   // If true, also create the labels on the tracker
}

// LabelInfo describes one distinct label and how many issues reference it.
type LabelInfo struct {
	Name   string
	Issues int
}

// ListLabelsOutput contains the distinct label set of an issue file.
type ListLabelsOutput struct {
	Labels     []LabelInfo
	IssueCount int
}

// ListLabels is the use case for inspecting the label set of an issue file.
type ListLabels struct {
	github domain.GitHub
	logger *slog.Logger
}

// NewListLabels creates a new ListLabels use case.
func NewListLabels(github domain.GitHub, logger *slog.Logger) *ListLabels {
	return &ListLabels{
		github: github,
		logger: logger,
	}
}

// Execute returns the distinct labels referenced by the issue file,
// sorted by name. With Create set, every label is also created on the
// tracker; creation failures are discarded as in the import pass.
func (uc *ListLabels) Execute(ctx context.Context, in ListLabelsInput) (*ListLabelsOutput, error) {
	issues, err := readIssueFile(in.Path)
	if err != nil {
		return nil, err
	}

	counts := domain.CountLabels(issues)
	out := &ListLabelsOutput{
		Labels:     make([]LabelInfo, 0, len(counts)),
		IssueCount: len(issues),
	}
	for _, name := range domain.CollectLabels(issues) {
		out.Labels = append(out.Labels, LabelInfo{Name: name, Issues: counts[name]})
	}
	sort.Slice(out.Labels, func(i, j int) bool { return out.Labels[i].Name < out.Labels[j].Name })

	if in.Create {
		for _, label := range out.Labels {
			if err := uc.github.CreateLabel(ctx, in.Repo, label.Name); err != nil {
				uc.logger.Debug("label creation skipped", "label", label.Name, "error", err)
			}
		}
	}

	return out, nil
}
