package github

import (
	"path"
	"regexp"
	"strings"
)

var keyFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(index|main|app|server)\.(js|jsx|mjs|cjs|ts|tsx|py|go|rs|java|rb|php)$`),
	regexp.MustCompile(`(?i)\.(config|conf)\.(js|mjs|cjs|ts|json|ya?ml|toml)$`),
	regexp.MustCompile(`(?i)^(dockerfile|makefile|rakefile)$`),
	regexp.MustCompile(`(?i)^(changelog|contributing|license|authors|contributors)\.(md|txt|rst)$`),
	regexp.MustCompile(`(?i)^(package\.json|requirements\.txt|go\.mod|cargo\.toml|gemfile|composer\.json)$`),
}

// IsKeyFile reports whether a root-level file name is representative enough
// to include verbatim in the analysis.
func IsKeyFile(name string) bool {
	for _, re := range keyFilePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

var categories = map[string]string{
	".js":   "JavaScript",
	".mjs":  "JavaScript",
	".cjs":  "JavaScript",
	".jsx":  "React",
	".ts":   "TypeScript",
	".tsx":  "React TypeScript",
	".py":   "Python",
	".go":   "Go",
	".rs":   "Rust",
	".java": "Java",
	".rb":   "Ruby",
	".php":  "PHP",
	".json": "Configuration",
	".yaml": "Configuration",
	".yml":  "Configuration",
	".toml": "Configuration",
	".mod":  "Configuration",
	".md":   "Documentation",
	".rst":  "Documentation",
	".txt":  "Documentation",
}

// Category maps a file name to a human label by extension.
func Category(name string) string {
	if c, ok := categories[strings.ToLower(path.Ext(name))]; ok {
		return c
	}
	return "Other"
}
