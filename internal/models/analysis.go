package models

import "encoding/json"

type RepositoryAnalysis struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PrimaryLanguage string    `json:"primaryLanguage"`
	Topics          []string  `json:"topics"`
	Readme          string    `json:"readme"`
	Manifest        *Manifest `json:"manifest,omitempty"`
	FileStructure   []string  `json:"fileStructure"`
	KeyFiles        []KeyFile `json:"keyFiles"`
	Stats           Stats     `json:"stats"`
}

type KeyFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type Stats struct {
	Stars  int `json:"stars"`
	Forks  int `json:"forks"`
	SizeKB int `json:"size"`
}

// Manifest is either a parsed JSON package manifest or the raw text of a
// non-JSON build descriptor.
type Manifest struct {
	Kind       string
	Parsed     json.RawMessage
	RawContent string
}

// MarshalJSON emits the parsed document as-is for JSON manifests and a
// {kind, rawContent} object otherwise.
func (m Manifest) MarshalJSON() ([]byte, error) {
	if len(m.Parsed) > 0 {
		return m.Parsed, nil
	}
	return json.Marshal(struct {
		Kind       string `json:"kind"`
		RawContent string `json:"rawContent"`
	}{m.Kind, m.RawContent})
}
