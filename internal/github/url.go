package github

import (
	"fmt"
	"regexp"
	"strings"
)

// repoURLPattern accepts github.com/<owner>/<repo>, optionally with a scheme,
// a www. prefix, a .git suffix and any trailing path, query or fragment.
var repoURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/([^/?#\s]+)/([^/?#\s]+)(?:[/?#]\S*)?$`)

// ParseURL extracts the owner and repository name from a GitHub URL.
func ParseURL(raw string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	owner = m[1]
	repo = strings.TrimSuffix(m[2], ".git")
	if repo == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return owner, repo, nil
}
