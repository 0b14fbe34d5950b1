package prompt

import (
	"fmt"

	"github.com/eveporcello/repo-to-presentation/internal/models"
)

// The lookup tables below are switches over the closed enumerations. An
// unknown value panics: callers validate configs before assembly, and the
// table tests walk every enumeration value.

func audienceContext(a models.Audience) string {
	switch a {
	case models.AudienceConference:
		return "You are an expert conference speaker and technical storyteller who helps developers turn their projects into engaging talks for a broad technical audience."
	case models.AudienceInternal:
		return "You are an experienced engineering lead who helps developers present their projects to internal teams and stakeholders in a clear, practical way."
	case models.AudienceClient:
		return "You are a seasoned technical consultant who helps developers present their projects to clients, translating technical work into business value."
	case models.AudienceInterview:
		return "You are a career coach for software engineers who helps candidates walk interviewers through a portfolio project with confidence and technical depth."
	case models.AudienceWorkshop:
		return "You are an experienced technical instructor who helps developers turn their projects into hands-on workshops where attendees learn by doing."
	}
	panic(fmt.Sprintf("prompt: no audience context for %q", a))
}

func timeGuidance(t models.TimeConstraint) string {
	switch t {
	case models.Time5Min:
		return "This is a lightning talk: focus on one core idea, skip deep implementation details, and land a single memorable takeaway."
	case models.Time15Min:
		return "This is a short talk: cover the problem, the solution, and one or two highlights with a brief demo or example."
	case models.Time30Min:
		return "This is a standard talk: there is room for architecture, a few technical deep dives, and a demo, while keeping a clear narrative."
	case models.Time1Hour:
		return "This is an in-depth session: cover architecture, implementation details, trade-offs, and extended demos, with natural pauses for questions."
	}
	panic(fmt.Sprintf("prompt: no time guidance for %q", t))
}

func targetDuration(t models.TimeConstraint) string {
	switch t {
	case models.Time5Min:
		return "5 minutes"
	case models.Time15Min:
		return "15 minutes"
	case models.Time30Min:
		return "30 minutes"
	case models.Time1Hour:
		return "1 hour"
	}
	panic(fmt.Sprintf("prompt: no duration for %q", t))
}

func focusAreas(a models.Audience) string {
	switch a {
	case models.AudienceConference:
		return "Focus on innovation, lessons learned, and ideas the audience can apply to their own work."
	case models.AudienceInternal:
		return "Focus on architecture decisions, integration points, operational concerns, and how the team can contribute or adopt it."
	case models.AudienceClient:
		return "Focus on business value, user outcomes, reliability, and how the project solves the client's problem."
	case models.AudienceInterview:
		return "Focus on your role, the technical challenges you solved, the trade-offs you made, and what you would improve next."
	case models.AudienceWorkshop:
		return "Focus on step-by-step learning, hands-on exercises, setup instructions, and checkpoints where attendees can verify progress."
	}
	panic(fmt.Sprintf("prompt: no focus areas for %q", a))
}
