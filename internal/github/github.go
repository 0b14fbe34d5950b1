package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	gogithub "github.com/google/go-github/v69/github"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eveporcello/repo-to-presentation/internal/models"
	"github.com/eveporcello/repo-to-presentation/internal/textutil"
)

// Bounds applied to everything read from a repository.
const (
	MaxReadmeChars      = 5000
	MaxKeyFileChars     = 3000
	MaxKeyFileBytes     = 50000
	MaxListingEntries   = 30
	MaxDescriptionChars = 1000
	MaxManifestChars    = 5000

	keyFileConcurrency = 8
	rateLimitWarnBelow = 10
)

var readmeCandidates = []string{"README.md", "readme.md", "README.rst", "README.txt", "README"}

var manifestCandidates = []string{"package.json", "pyproject.toml", "Cargo.toml", "go.mod", "pom.xml"}

// Client reads a bounded slice of a public repository through the GitHub
// REST API.
type Client struct {
	gh     *gogithub.Client
	logger zerolog.Logger
}

// NewClient builds a Client. An empty token uses unauthenticated access; a
// non-empty baseURL points the client at GitHub Enterprise (or a test server).
func NewClient(httpClient *http.Client, token, baseURL string, logger zerolog.Logger) (*Client, error) {
	gh := gogithub.NewClient(httpClient)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	if baseURL != "" && strings.TrimSuffix(baseURL, "/") != "https://api.github.com" {
		var err error
		gh, err = gh.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring GitHub API URL: %w", err)
		}
	}
	return &Client{gh: gh, logger: logger.With().Str("component", "github").Logger()}, nil
}

// Analyze fetches metadata, README, manifest, root listing and key files for
// owner/repo. Only the metadata lookup can fail the analysis; every other
// phase degrades to an empty value.
func (c *Client) Analyze(ctx context.Context, owner, repo string) (*models.RepositoryAnalysis, error) {
	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, classifyError(err)
	}
	c.checkRateLimit(resp)

	language := r.GetLanguage()
	if language == "" {
		language = "Unknown"
	}
	topics := append([]string{}, r.Topics...)

	analysis := &models.RepositoryAnalysis{
		Name:            r.GetName(),
		Description:     textutil.Truncate(r.GetDescription(), MaxDescriptionChars),
		PrimaryLanguage: language,
		Topics:          topics,
		Readme:          c.fetchReadme(ctx, owner, repo),
		Manifest:        c.fetchManifest(ctx, owner, repo),
		Stats: models.Stats{
			Stars:  r.GetStargazersCount(),
			Forks:  r.GetForksCount(),
			SizeKB: r.GetSize(),
		},
	}
	analysis.FileStructure, analysis.KeyFiles = c.fetchStructure(ctx, owner, repo)

	c.logger.Debug().
		Str("repo", owner+"/"+repo).
		Int("readme_chars", textutil.Len(analysis.Readme)).
		Bool("manifest", analysis.Manifest != nil).
		Int("entries", len(analysis.FileStructure)).
		Int("key_files", len(analysis.KeyFiles)).
		Msg("analyzed repository")

	return analysis, nil
}

func (c *Client) fetchReadme(ctx context.Context, owner, repo string) string {
	for _, name := range readmeCandidates {
		if text, ok := c.fetchText(ctx, owner, repo, name); ok {
			return textutil.Truncate(text, MaxReadmeChars)
		}
	}
	return ""
}

func (c *Client) fetchManifest(ctx context.Context, owner, repo string) *models.Manifest {
	for _, name := range manifestCandidates {
		fc, ok := c.fetchFile(ctx, owner, repo, name)
		if !ok {
			continue
		}
		if fc.GetSize() > MaxKeyFileBytes {
			c.logger.Debug().Str("path", name).Int("size", fc.GetSize()).Msg("manifest too large, skipping")
			continue
		}
		text, err := fc.GetContent()
		if err != nil {
			c.logger.Debug().Err(err).Str("path", name).Msg("decoding manifest")
			continue
		}
		if strings.HasSuffix(name, ".json") {
			if !json.Valid([]byte(text)) {
				c.logger.Debug().Str("path", name).Msg("manifest is not valid JSON")
				continue
			}
			return &models.Manifest{Kind: name, Parsed: json.RawMessage(text)}
		}
		return &models.Manifest{Kind: name, RawContent: textutil.Truncate(text, MaxManifestChars)}
	}
	return nil
}

// fetchStructure lists the repository root, keeps the first
// MaxListingEntries entries (directories first, then by name) and pulls the
// contents of qualifying key files.
func (c *Client) fetchStructure(ctx context.Context, owner, repo string) ([]string, []models.KeyFile) {
	_, entries, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, "", nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("listing repository root")
		return []string{}, []models.KeyFile{}
	}
	c.checkRateLimit(resp)

	entries = SortEntries(entries)
	if len(entries) > MaxListingEntries {
		entries = entries[:MaxListingEntries]
	}

	structure := make([]string, 0, len(entries))
	for _, e := range entries {
		structure = append(structure, structureLine(e))
	}

	return structure, c.fetchKeyFiles(ctx, owner, repo, entries)
}

// fetchKeyFiles fetches qualifying entries concurrently. A failed fetch only
// drops that file; results keep listing order.
func (c *Client) fetchKeyFiles(ctx context.Context, owner, repo string, entries []*gogithub.RepositoryContent) []models.KeyFile {
	slots := make([]*models.KeyFile, len(entries))

	var g errgroup.Group
	g.SetLimit(keyFileConcurrency)
	for i, e := range entries {
		if !qualifiesAsKeyFile(e) {
			continue
		}
		g.Go(func() error {
			p := e.GetPath()
			if p == "" {
				p = e.GetName()
			}
			text, ok := c.fetchText(ctx, owner, repo, p)
			if !ok {
				c.logger.Warn().Str("path", p).Msg("skipping key file")
				return nil
			}
			slots[i] = &models.KeyFile{
				Path:     p,
				Content:  textutil.Truncate(text, MaxKeyFileChars),
				Category: Category(e.GetName()),
			}
			return nil
		})
	}
	_ = g.Wait()

	files := make([]models.KeyFile, 0, len(slots))
	for _, kf := range slots {
		if kf != nil {
			files = append(files, *kf)
		}
	}
	return files
}

func (c *Client) fetchFile(ctx context.Context, owner, repo, p string) (*gogithub.RepositoryContent, bool) {
	fc, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, p, nil)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", p).Msg("file not available")
		return nil, false
	}
	c.checkRateLimit(resp)
	if fc == nil {
		return nil, false
	}
	return fc, true
}

func (c *Client) fetchText(ctx context.Context, owner, repo, p string) (string, bool) {
	fc, ok := c.fetchFile(ctx, owner, repo, p)
	if !ok {
		return "", false
	}
	text, err := fc.GetContent()
	if err != nil {
		c.logger.Debug().Err(err).Str("path", p).Msg("decoding file content")
		return "", false
	}
	return text, true
}

func (c *Client) checkRateLimit(resp *gogithub.Response) {
	if resp == nil || resp.Rate.Limit == 0 {
		return
	}
	if resp.Rate.Remaining < rateLimitWarnBelow {
		c.logger.Warn().
			Int("remaining", resp.Rate.Remaining).
			Time("reset", resp.Rate.Reset.Time).
			Msg("github rate limit low")
	}
}

// SortEntries orders a directory listing directories first, then by name.
// The input slice is not modified.
func SortEntries(entries []*gogithub.RepositoryContent) []*gogithub.RepositoryContent {
	sorted := append([]*gogithub.RepositoryContent(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].GetType() == "dir", sorted[j].GetType() == "dir"
		if di != dj {
			return di
		}
		return sorted[i].GetName() < sorted[j].GetName()
	})
	return sorted
}

func structureLine(e *gogithub.RepositoryContent) string {
	kind := e.GetType()
	if kind == "" {
		kind = "file"
	}
	name := e.GetName()
	if kind == "dir" {
		name += "/"
	}
	return kind + ": " + name
}

func qualifiesAsKeyFile(e *gogithub.RepositoryContent) bool {
	return e.GetType() == "file" &&
		IsKeyFile(e.GetName()) &&
		e.GetSize() > 0 &&
		e.GetSize() < MaxKeyFileBytes
}
