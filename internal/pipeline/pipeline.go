package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eveporcello/repo-to-presentation/internal/github"
	"github.com/eveporcello/repo-to-presentation/internal/llm"
	"github.com/eveporcello/repo-to-presentation/internal/models"
	"github.com/eveporcello/repo-to-presentation/internal/prompt"
)

// LogComponent tags every orchestrator log line.
const LogComponent = "run-of-show"

const generatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrMisconfigured = errors.New("generation service is not configured")

// Analyzer produces the bounded repository snapshot for owner/repo.
type Analyzer interface {
	Analyze(ctx context.Context, owner, repo string) (*models.RepositoryAnalysis, error)
}

// Service sequences URL parsing, repository analysis, prompt assembly,
// generation and normalization for one request at a time. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	analyzer  Analyzer
	generator llm.Generator
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService wires the pipeline. A nil generator is accepted so the process
// can start without a generation secret; requests then fail as
// misconfigured.
func NewService(analyzer Analyzer, generator llm.Generator, logger zerolog.Logger) *Service {
	return &Service{
		analyzer:  analyzer,
		generator: generator,
		logger:    logger.With().Str("component", LogComponent).Logger(),
		now:       time.Now,
	}
}

// Generate runs the full pipeline for a decoded request.
func (s *Service) Generate(ctx context.Context, req *Request) (*models.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	owner, repo, err := github.ParseURL(req.RepoURL)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, ErrMisconfigured
	}

	analysis, err := s.analyzer.Analyze(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	p := prompt.Build(analysis, req.Config)
	s.logger.Debug().Str("repo", owner+"/"+repo).Int("prompt_bytes", len(p)).Msg("prompt assembled")

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generating run of show: %w", err)
	}

	ros, err := llm.Normalize(raw)
	if err != nil {
		s.logger.Debug().Int("raw_bytes", len(raw)).Msg("unparseable generation")
		return nil, err
	}
	if !req.Config.IncludeQA {
		ros.QAPredictions, ros.TechQuestions = nil, nil
	}

	return &models.Result{
		RunOfShow: ros,
		Metadata: models.Metadata{
			RepoName:    analysis.Name,
			Language:    analysis.PrimaryLanguage,
			Stars:       analysis.Stats.Stars,
			GeneratedAt: s.now().UTC().Format(generatedAtLayout),
			Config:      req.Config,
		},
	}, nil
}

// Prompt runs the pipeline up to prompt assembly. No generation secret is
// required.
func (s *Service) Prompt(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	owner, repo, err := github.ParseURL(req.RepoURL)
	if err != nil {
		return "", err
	}
	analysis, err := s.analyzer.Analyze(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return prompt.Build(analysis, req.Config), nil
}

// ErrorResponse is the wire body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handle decodes a raw request body, runs the pipeline and returns the HTTP
// status and body to send. Failures are logged here with full detail; the
// returned body only carries the human-readable message.
func (s *Service) Handle(ctx context.Context, requestID string, body []byte) (int, any) {
	logger := s.logger.With().Str("request_id", requestID).Logger()

	req, err := DecodeRequest(body)
	var result *models.Result
	if err == nil {
		result, err = s.Generate(ctx, req)
	}
	if err == nil {
		logger.Info().
			Str("repo", result.Metadata.RepoName).
			Str("audience", string(req.Config.Audience)).
			Str("time", string(req.Config.TimeConstraint)).
			Int("sections", len(result.RunOfShow.Sections)).
			Msg("generated run of show")
		return http.StatusOK, result
	}

	status, message := Classify(err)
	level := zerolog.WarnLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	ev := logger.WithLevel(level).Err(err).Int("status", status)
	if errors.Is(err, ErrMisconfigured) {
		ev = ev.Str("kind", "misconfiguration")
	}
	ev.Msg("request failed")

	return status, ErrorResponse{Error: message}
}
