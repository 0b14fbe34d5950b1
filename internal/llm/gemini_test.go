package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"
)

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: `{"title":"T"}`},
			}},
		}},
	}
	out, err := geminiText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"T"}`, out)
}

func TestGeminiTextRejects(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"function call first": {Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{FunctionCall: &genai.FunctionCall{Name: "lookup"}},
				{Text: "later"},
			}},
		}}},
		"only thoughts": {Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "hmm", Thought: true}}},
		}}},
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := geminiText(resp)
			assert.ErrorIs(t, err, ErrUnexpectedResponseType)
		})
	}
}
