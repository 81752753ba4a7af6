package domain

import (
	"fmt"
	"strings"
)

// ParseRepoURL extracts "owner/name" from a git remote URL.
// Supported forms:
//
//	https://github.com/owner/name.git
//	git@github.com:owner/name.git
//	ssh://git@github.com/owner/name.git
func ParseRepoURL(url string) (string, error) {
	s := strings.TrimSuffix(strings.TrimSpace(url), ".git")

	// scp-like syntax: git@host:owner/name
	if !strings.Contains(s, "://") {
		if idx := strings.Index(s, ":"); idx >= 0 {
			s = s[idx+1:]
		}
	} else {
		// URL syntax: scheme://[user@]host/owner/name
		s = s[strings.Index(s, "://")+3:]
		if idx := strings.Index(s, "/"); idx >= 0 {
			s = s[idx+1:]
		}
	}

	s = strings.Trim(s, "/")
	if err := ValidateRepo(s); err != nil {
		return "", fmt.Errorf("parse remote url %q: %w", url, err)
	}
	return s, nil
}

// ValidateRepo checks that repo has the "owner/name" form.
func ValidateRepo(repo string) error {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ErrInvalidRepo
	}
	return nil
}
