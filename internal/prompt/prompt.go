// Package prompt renders a repository analysis and presentation config into
// the single user message sent to the generation service.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eveporcello/repo-to-presentation/internal/models"
	"github.com/eveporcello/repo-to-presentation/internal/textutil"
)

const maxManifestChars = 1000

// Build assembles the prompt. It is deterministic in its inputs. cfg must
// carry a valid audience and time constraint.
func Build(a *models.RepositoryAnalysis, cfg models.PresentationConfig) string {
	sections := []string{
		audienceContext(cfg.Audience),
		repositoryBlock(a),
		requirementsBlock(cfg),
		storytellingBlock,
		instructionsBlock(cfg),
		outputFormatBlock(cfg),
	}
	return strings.Join(sections, "\n\n")
}

func repositoryBlock(a *models.RepositoryAnalysis) string {
	var b strings.Builder
	b.WriteString("REPOSITORY ANALYSIS:\n")
	fmt.Fprintf(&b, "Name: %s\n", a.Name)
	fmt.Fprintf(&b, "Description: %s\n", a.Description)
	fmt.Fprintf(&b, "Primary Language: %s\n", a.PrimaryLanguage)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(a.Topics, ", "))
	fmt.Fprintf(&b, "Stars: %d, Forks: %d\n", a.Stats.Stars, a.Stats.Forks)
	fmt.Fprintf(&b, "Size: %d KB\n", a.Stats.SizeKB)

	b.WriteString("\nREADME:\n")
	b.WriteString(a.Readme)

	b.WriteString("\n\nFILE STRUCTURE:\n")
	b.WriteString(strings.Join(a.FileStructure, "\n"))

	b.WriteString("\n\nKEY FILES:\n")
	files := make([]string, 0, len(a.KeyFiles))
	for _, f := range a.KeyFiles {
		files = append(files, fmt.Sprintf("%s (%s):\n%s", f.Path, f.Category, f.Content))
	}
	b.WriteString(strings.Join(files, "\n\n"))

	if a.Manifest != nil {
		b.WriteString("\n\nPACKAGE INFO:\n```json\n")
		b.WriteString(manifestJSON(a.Manifest))
		b.WriteString("\n```")
	}
	return b.String()
}

func manifestJSON(m *models.Manifest) string {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		// Parsed content was validated by the fetcher; fall back to raw text.
		return textutil.Truncate(m.RawContent, maxManifestChars)
	}
	return textutil.Truncate(string(out), maxManifestChars)
}

func requirementsBlock(cfg models.PresentationConfig) string {
	return strings.Join([]string{
		"PRESENTATION REQUIREMENTS:",
		"- Target duration: " + targetDuration(cfg.TimeConstraint),
		"- Time guidance: " + timeGuidance(cfg.TimeConstraint),
		"- Audience focus: " + focusAreas(cfg.Audience),
		fmt.Sprintf("- Include Q&A preparation: %t", cfg.IncludeQA),
		fmt.Sprintf("- Include live demo: %t", cfg.IncludeLiveDemo),
	}, "\n")
}

const storytellingBlock = `STORYTELLING FRAMEWORK:
Structure the presentation as a narrative arc:
1. Hook: open with a problem, question, or moment that grabs attention.
2. Context: explain why the problem matters and who it affects.
3. Journey: walk through how the project solves it, including the challenges along the way.
4. Impact: show the results, what changed, and what was learned.
5. Call to action: tell the audience exactly what to do next.`

const baseInstructions = `SPECIFIC INSTRUCTIONS:
- Break the talk into sections whose durations add up to the target duration.
- Give every section concrete content drawn from the repository, not placeholders.
- Write presenter notes as short, speakable cues rather than full paragraphs.
- List the key points the audience should remember from each section.
- When a live demo is included, place it where it best supports the narrative and note what to show.
- Close with notes that reinforce the main takeaway and the call to action.`

const workshopInstruction = "- Since this is a workshop, include hands-on exercises, expected setup steps, and checkpoints in the relevant sections."

func instructionsBlock(cfg models.PresentationConfig) string {
	if cfg.Audience == models.AudienceWorkshop {
		return baseInstructions + "\n" + workshopInstruction
	}
	return baseInstructions
}

const outputHead = `OUTPUT FORMAT:
Respond with a JSON object in exactly this shape:
{
  "title": "Presentation title",
  "overview": "Two or three sentence summary of the talk",
  "sections": [
    {
      "title": "Section title",
      "duration": "e.g. 3 minutes",
      "content": "What this section covers",
      "presenterNotes": ["Cue 1", "Cue 2"],
      "keyPoints": ["Point 1", "Point 2"]
    }
  ],`

const outputQA = `
  "qaPredictions": ["Likely audience question 1", "Likely audience question 2"],
  "techQuestions": ["Likely technical question 1", "Likely technical question 2"],`

const outputTail = `
  "closingNotes": "Closing remarks and call to action"
}

Base every section on the actual repository content above. Avoid generic advice that could apply to any project.`

func outputFormatBlock(cfg models.PresentationConfig) string {
	if cfg.IncludeQA {
		return outputHead + outputQA + outputTail
	}
	return outputHead + outputTail
}
