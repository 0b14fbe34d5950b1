package models

import (
	"encoding/json"
	"fmt"
)

type RunOfShow struct {
	Title         string    `json:"title" yaml:"title"`
	Overview      string    `json:"overview" yaml:"overview"`
	Sections      []Section `json:"sections" yaml:"sections"`
	QAPredictions []string  `json:"qaPredictions,omitempty" yaml:"qaPredictions,omitempty"`
	TechQuestions []string  `json:"techQuestions,omitempty" yaml:"techQuestions,omitempty"`
	ClosingNotes  string    `json:"closingNotes" yaml:"closingNotes"`
}

type Section struct {
	Title          string   `json:"title" yaml:"title"`
	Duration       Duration `json:"duration" yaml:"duration"`
	Content        string   `json:"content" yaml:"content"`
	PresenterNotes []string `json:"presenterNotes" yaml:"presenterNotes"`
	KeyPoints      []string `json:"keyPoints" yaml:"keyPoints"`
}

// Duration is a section's time allotment as the model wrote it. A bare
// number is kept as its literal text.
type Duration string

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = Duration(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("section duration must be a string or number: %w", err)
	}
	*d = Duration(n.String())
	return nil
}

type Metadata struct {
	RepoName    string             `json:"repoName" yaml:"repoName"`
	Language    string             `json:"language" yaml:"language"`
	Stars       int                `json:"stars" yaml:"stars"`
	GeneratedAt string             `json:"generatedAt" yaml:"generatedAt"`
	Config      PresentationConfig `json:"config" yaml:"config"`
}

// Result is the success payload returned to callers.
type Result struct {
	RunOfShow *RunOfShow `json:"runOfShow" yaml:"runOfShow"`
	Metadata  Metadata   `json:"metadata" yaml:"metadata"`
}
