package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eveporcello/repo-to-presentation/internal/models"
)

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(`{
		"repoUrl": "https://github.com/owner/repo",
		"config": {"audience": "workshop", "timeConstraint": "1hour", "includeQA": true, "includeLiveDemo": true}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/owner/repo", req.RepoURL)
	assert.Equal(t, models.PresentationConfig{
		Audience:        models.AudienceWorkshop,
		TimeConstraint:  models.Time1Hour,
		IncludeQA:       true,
		IncludeLiveDemo: true,
	}, req.Config)
}

func TestDecodeRequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `repoUrl=x`, "Invalid request body"},
		{"array body", `[]`, "Invalid request body"},
		{"missing url", `{"config":{"audience":"client","timeConstraint":"5min"}}`, "Repository URL is required"},
		{"null url", `{"repoUrl":null,"config":{"audience":"client","timeConstraint":"5min"}}`, "Repository URL is required"},
		{"empty url", `{"repoUrl":"  ","config":{"audience":"client","timeConstraint":"5min"}}`, "Repository URL is required"},
		{"numeric url", `{"repoUrl":42,"config":{"audience":"client","timeConstraint":"5min"}}`, "Repository URL must be a string"},
		{"missing config", `{"repoUrl":"https://github.com/a/b"}`, "Presentation configuration is required"},
		{"string config", `{"repoUrl":"https://github.com/a/b","config":"fast"}`, "Presentation configuration must be an object"},
		{"array config", `{"repoUrl":"https://github.com/a/b","config":[]}`, "Presentation configuration must be an object"},
		{"bad flag type", `{"repoUrl":"https://github.com/a/b","config":{"audience":"client","timeConstraint":"5min","includeQA":"yes"}}`, "Invalid presentation configuration"},
		{"unknown audience", `{"repoUrl":"https://github.com/a/b","config":{"audience":"keynote","timeConstraint":"5min"}}`, "Invalid audience"},
		{"unknown time", `{"repoUrl":"https://github.com/a/b","config":{"audience":"client","timeConstraint":"2hours"}}`, "Invalid time constraint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest([]byte(tt.body))
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Message, tt.want)
		})
	}
}

func TestValidateListsAllowedValues(t *testing.T) {
	err := (&Request{RepoURL: "https://github.com/a/b", Config: models.PresentationConfig{Audience: "x", TimeConstraint: models.Time5Min}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conference, internal, client, interview, workshop")
}
