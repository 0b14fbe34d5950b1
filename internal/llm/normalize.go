package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/eveporcello/repo-to-presentation/internal/models"
)

var ErrMalformedGeneration = errors.New("generation did not contain a valid run of show")

var (
	jsonFence  = regexp.MustCompile("```json\\s*")
	plainFence = regexp.MustCompile("```\\s*")
	braceSpan  = regexp.MustCompile(`(?s)\{.*\}`)
)

// Normalize extracts a RunOfShow from raw model text.
//
// The fence-stripped text is parsed first and must have a non-empty title
// and overview and an array of sections. Failing that, the outermost
// {...} span of the raw text is parsed without any shape check.
func Normalize(raw string) (*models.RunOfShow, error) {
	if ros, ok := parseStrict(stripCodeFences(raw)); ok {
		return ros, nil
	}
	if ros, ok := parseBraceSpan(raw); ok {
		return ros, nil
	}
	return nil, ErrMalformedGeneration
}

// stripCodeFences removes markdown code fences that some models wrap around JSON.
func stripCodeFences(s string) string {
	s = jsonFence.ReplaceAllString(s, "")
	s = plainFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parseStrict(s string) (*models.RunOfShow, bool) {
	var shape map[string]any
	if err := json.Unmarshal([]byte(s), &shape); err != nil {
		return nil, false
	}
	if !truthy(shape["title"]) || !truthy(shape["overview"]) {
		return nil, false
	}
	if _, ok := shape["sections"].([]any); !ok {
		return nil, false
	}
	return decode(s)
}

func parseBraceSpan(raw string) (*models.RunOfShow, bool) {
	span := braceSpan.FindString(raw)
	if span == "" {
		return nil, false
	}
	return decode(span)
}

func decode(s string) (*models.RunOfShow, bool) {
	var ros models.RunOfShow
	if err := json.Unmarshal([]byte(s), &ros); err != nil {
		return nil, false
	}
	if ros.Sections == nil {
		ros.Sections = []models.Section{}
	}
	return &ros, true
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	}
	return true
}
