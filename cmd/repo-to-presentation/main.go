package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eveporcello/repo-to-presentation/internal/config"
	"github.com/eveporcello/repo-to-presentation/internal/github"
	"github.com/eveporcello/repo-to-presentation/internal/httpkit"
	"github.com/eveporcello/repo-to-presentation/internal/llm"
	"github.com/eveporcello/repo-to-presentation/internal/models"
	"github.com/eveporcello/repo-to-presentation/internal/pipeline"
	"github.com/eveporcello/repo-to-presentation/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:           "repo-to-presentation",
		Short:         "Turn a GitHub repository into a presentation run of show",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), generateCmd(), promptCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.ListenAddr = addr
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := newService(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return server.New(cfg.ListenAddr, svc, cfg.RequestTimeout, logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides LISTEN_ADDR)")
	return cmd
}

type presentationFlags struct {
	audience string
	time     string
	qa       bool
	demo     bool
}

func (f *presentationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.audience, "audience", string(models.AudienceConference), "Audience: conference, internal, client, interview, workshop")
	cmd.Flags().StringVar(&f.time, "time", string(models.Time15Min), "Time constraint: 5min, 15min, 30min, 1hour")
	cmd.Flags().BoolVar(&f.qa, "qa", false, "Include Q&A preparation")
	cmd.Flags().BoolVar(&f.demo, "demo", false, "Include a live demo")
}

func (f *presentationFlags) request(repoURL string) *pipeline.Request {
	return &pipeline.Request{
		RepoURL: repoURL,
		Config: models.PresentationConfig{
			Audience:        models.Audience(f.audience),
			TimeConstraint:  models.TimeConstraint(f.time),
			IncludeQA:       f.qa,
			IncludeLiveDemo: f.demo,
		},
	}
}

func generateCmd() *cobra.Command {
	var flags presentationFlags
	var format string

	cmd := &cobra.Command{
		Use:   "generate <repo-url>",
		Short: "Generate a run of show for a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q", format)
			}
			cfg := config.Load()
			logger := newLogger(cfg.LogLevel, cfg.LogFormat)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()

			svc, err := newService(ctx, cfg, logger)
			if err != nil {
				return err
			}
			res, err := svc.Generate(ctx, flags.request(args[0]))
			if err != nil {
				return userError(logger, err)
			}
			return writeResult(cmd.OutOrStdout(), res, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json or yaml")
	return cmd
}

func promptCmd() *cobra.Command {
	var flags presentationFlags

	cmd := &cobra.Command{
		Use:   "prompt <repo-url>",
		Short: "Print the assembled prompt without calling the generation service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg.LogLevel, cfg.LogFormat)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()

			analyzer, err := newAnalyzer(cfg, logger)
			if err != nil {
				return err
			}
			p, err := pipeline.NewService(analyzer, nil, logger).Prompt(ctx, flags.request(args[0]))
			if err != nil {
				return userError(logger, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newAnalyzer(cfg *config.Config, logger zerolog.Logger) (*github.Client, error) {
	return github.NewClient(httpkit.NewClient(), cfg.GitHubToken, cfg.GitHubAPIURL, logger)
}

// newService builds the pipeline. A missing LLM_API_KEY is not fatal here;
// generation requests fail as misconfigured instead.
func newService(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*pipeline.Service, error) {
	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		return nil, err
	}

	gen, err := llm.New(ctx, cfg, httpkit.NewClient(httpkit.WithTimeout(cfg.RequestTimeout)))
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		logger.Warn().Str("provider", cfg.LLMProvider).Msg("LLM_API_KEY not set; generation requests will fail")
		gen = nil
	case err != nil:
		return nil, err
	}

	return pipeline.NewService(analyzer, gen, logger), nil
}

// userError logs the full failure and returns only the caller-facing message.
func userError(logger zerolog.Logger, err error) error {
	_, msg := pipeline.Classify(err)
	logger.Debug().Err(err).Msg("command failed")
	return errors.New(msg)
}
