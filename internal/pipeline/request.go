package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eveporcello/repo-to-presentation/internal/models"
)

// ValidationError is a malformed client request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Request is the inbound {repoUrl, config} pair.
type Request struct {
	RepoURL string                    `json:"repoUrl"`
	Config  models.PresentationConfig `json:"config"`
}

// DecodeRequest parses and validates a raw JSON request body. Type
// mismatches on repoUrl or config are reported as validation errors rather
// than decode failures.
func DecodeRequest(data []byte) (*Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}

	rawURL := fields["repoUrl"]
	if isAbsent(rawURL) {
		return nil, &ValidationError{Message: "Repository URL is required"}
	}
	var repoURL string
	if err := json.Unmarshal(rawURL, &repoURL); err != nil {
		return nil, &ValidationError{Message: "Repository URL must be a string"}
	}

	rawCfg := fields["config"]
	if isAbsent(rawCfg) {
		return nil, &ValidationError{Message: "Presentation configuration is required"}
	}
	if bytes.TrimSpace(rawCfg)[0] != '{' {
		return nil, &ValidationError{Message: "Presentation configuration must be an object"}
	}
	var cfg models.PresentationConfig
	if err := json.Unmarshal(rawCfg, &cfg); err != nil {
		return nil, &ValidationError{Message: "Invalid presentation configuration"}
	}

	req := &Request{RepoURL: repoURL, Config: cfg}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Validate checks the fields that do not need the network.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.RepoURL) == "" {
		return &ValidationError{Message: "Repository URL is required"}
	}
	if !r.Config.Audience.Valid() {
		return &ValidationError{Message: fmt.Sprintf("Invalid audience %q: must be one of %s", r.Config.Audience, joinValues(models.Audiences))}
	}
	if !r.Config.TimeConstraint.Valid() {
		return &ValidationError{Message: fmt.Sprintf("Invalid time constraint %q: must be one of %s", r.Config.TimeConstraint, joinValues(models.TimeConstraints))}
	}
	return nil
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}
