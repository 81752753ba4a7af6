package domain

import "errors"

// Domain errors.
var (
	ErrIssueFileNotFound = errors.New("issue file not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported issue file format")
	ErrInvalidRepo       = errors.New("invalid repository (expected owner/name)")
	ErrNoOriginRemote    = errors.New("no origin remote found")
)
