package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eveporcello/repo-to-presentation/internal/models"
)

func sampleAnalysis() *models.RepositoryAnalysis {
	return &models.RepositoryAnalysis{
		Name:            "star-watch",
		Description:     "GitHub star list enrichment",
		PrimaryLanguage: "Go",
		Topics:          []string{"github", "llm"},
		Readme:          "# star-watch\nSyncs stars.",
		FileStructure:   []string{"dir: cmd/", "dir: internal/", "file: go.mod"},
		KeyFiles: []models.KeyFile{
			{Path: "go.mod", Content: "module star-watch", Category: "Configuration"},
			{Path: "main.go", Content: "package main", Category: "Go"},
		},
		Stats: models.Stats{Stars: 42, Forks: 7, SizeKB: 120},
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := models.PresentationConfig{Audience: models.AudienceConference, TimeConstraint: models.Time30Min, IncludeQA: true}
	a := sampleAnalysis()
	a.Manifest = &models.Manifest{Kind: "package.json", Parsed: json.RawMessage(`{"name":"x","scripts":{"dev":"vite"}}`)}

	assert.Equal(t, Build(a, cfg), Build(a, cfg))
}

func TestBuildEveryTableEntry(t *testing.T) {
	a := sampleAnalysis()
	for _, audience := range models.Audiences {
		for _, tc := range models.TimeConstraints {
			cfg := models.PresentationConfig{Audience: audience, TimeConstraint: tc}
			var p string
			require.NotPanics(t, func() { p = Build(a, cfg) }, "%s/%s", audience, tc)

			assert.NotEmpty(t, p)
			assert.True(t, strings.HasPrefix(p, audienceContext(audience)))
			assert.Contains(t, p, timeGuidance(tc))
			assert.Contains(t, p, focusAreas(audience))
			assert.Contains(t, p, "Target duration: "+targetDuration(tc))
		}
	}
}

func TestTablesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range models.Audiences {
		for _, s := range []string{audienceContext(a), focusAreas(a)} {
			assert.False(t, seen[s], "duplicate entry %q", s)
			seen[s] = true
		}
	}
	for _, tc := range models.TimeConstraints {
		s := timeGuidance(tc)
		assert.False(t, seen[s], "duplicate entry %q", s)
		seen[s] = true
	}
}

func TestTablesRejectUnknown(t *testing.T) {
	assert.Panics(t, func() { audienceContext("keynote") })
	assert.Panics(t, func() { focusAreas("") })
	assert.Panics(t, func() { timeGuidance("2hours") })
	assert.Panics(t, func() { targetDuration("") })
}

func TestBuildInterviewLightningTalk(t *testing.T) {
	cfg := models.PresentationConfig{
		Audience:       models.AudienceInterview,
		TimeConstraint: models.Time5Min,
	}
	p := Build(sampleAnalysis(), cfg)

	assert.Contains(t, p, audienceContext(models.AudienceInterview))
	assert.Contains(t, p, "lightning talk")
	assert.Contains(t, p, "Include Q&A preparation: false")
	assert.Contains(t, p, "Include live demo: false")
	assert.NotContains(t, p, "qaPredictions")
	assert.NotContains(t, p, "techQuestions")
	assert.NotContains(t, p, workshopInstruction)
}

func TestBuildQAFields(t *testing.T) {
	cfg := models.PresentationConfig{Audience: models.AudienceClient, TimeConstraint: models.Time15Min, IncludeQA: true, IncludeLiveDemo: true}
	p := Build(sampleAnalysis(), cfg)

	assert.Contains(t, p, `"qaPredictions"`)
	assert.Contains(t, p, `"techQuestions"`)
	assert.Contains(t, p, "Include Q&A preparation: true")
	assert.Contains(t, p, "Include live demo: true")
	assert.True(t, strings.HasSuffix(p, "Avoid generic advice that could apply to any project."))
}

func TestBuildWorkshopInstruction(t *testing.T) {
	cfg := models.PresentationConfig{Audience: models.AudienceWorkshop, TimeConstraint: models.Time1Hour}
	p := Build(sampleAnalysis(), cfg)
	assert.Contains(t, p, workshopInstruction)
}

func TestBuildOrder(t *testing.T) {
	cfg := models.PresentationConfig{Audience: models.AudienceInternal, TimeConstraint: models.Time15Min}
	p := Build(sampleAnalysis(), cfg)

	markers := []string{
		audienceContext(models.AudienceInternal),
		"REPOSITORY ANALYSIS:",
		"PRESENTATION REQUIREMENTS:",
		"STORYTELLING FRAMEWORK:",
		"SPECIFIC INSTRUCTIONS:",
		"OUTPUT FORMAT:",
	}
	last := -1
	for _, m := range markers {
		i := strings.Index(p, m)
		require.GreaterOrEqual(t, i, 0, m)
		assert.Greater(t, i, last, m)
		last = i
	}
}

func TestRepositoryBlock(t *testing.T) {
	block := repositoryBlock(sampleAnalysis())

	assert.Contains(t, block, "Name: star-watch\n")
	assert.Contains(t, block, "Topics: github, llm\n")
	assert.Contains(t, block, "Stars: 42, Forks: 7\n")
	assert.Contains(t, block, "Size: 120 KB\n")
	assert.Contains(t, block, "dir: cmd/\ndir: internal/\nfile: go.mod")
	assert.Contains(t, block, "go.mod (Configuration):\nmodule star-watch\n\nmain.go (Go):\npackage main")
	assert.NotContains(t, block, "PACKAGE INFO")
}

func TestRepositoryBlockManifest(t *testing.T) {
	t.Run("parsed json is indented", func(t *testing.T) {
		a := sampleAnalysis()
		a.Manifest = &models.Manifest{Kind: "package.json", Parsed: json.RawMessage(`{"name":"x"}`)}

		block := repositoryBlock(a)
		assert.Contains(t, block, "PACKAGE INFO:\n```json\n{\n  \"name\": \"x\"\n}\n```")
	})

	t.Run("raw manifest is wrapped and truncated", func(t *testing.T) {
		a := sampleAnalysis()
		a.Manifest = &models.Manifest{Kind: "go.mod", RawContent: strings.Repeat("r", 3000)}

		block := repositoryBlock(a)
		start := strings.Index(block, "```json\n") + len("```json\n")
		end := strings.LastIndex(block, "\n```")
		body := block[start:end]
		assert.Len(t, body, maxManifestChars)
		assert.True(t, strings.HasPrefix(body, "{\n  \"kind\": \"go.mod\""))
	})
}
