package check

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/parsatext/hamanand/core"
	"github.com/parsatext/hamanand/similarity"
	"github.com/parsatext/hamanand/storage"
	"github.com/parsatext/hamanand/textnorm"
)

const (
	defaultInternalLimit = 50
	defaultMaxHits       = 10
	defaultOpenResults   = 10

	// DefaultLang is the wiki queried when Options.Lang is empty.
	DefaultLang = "fa"

	// DefaultTimeout bounds the remote lookup when Options.Timeout is zero.
	DefaultTimeout = 5 * time.Second
)

// RemoteSearcher is the open-knowledge candidate provider consumed by the
// checker. Implementations perform a single best-effort lookup.
type RemoteSearcher interface {
	Search(ctx context.Context, query, lang string, maxResults int) ([]core.Candidate, error)
}

// Checker gathers candidate texts from the local corpus and, optionally,
// an open-knowledge search provider, scores each against the query, and
// merges everything into a single ranked result.
type Checker struct {
	repository    storage.SentenceRepository
	remote        RemoteSearcher
	scorer        *similarity.Scorer
	internalLimit int
	maxHits       int
	logger        *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithScorer sets a custom similarity scorer.
func WithScorer(scorer *similarity.Scorer) Option {
	return func(c *Checker) error {
		if scorer != nil {
			c.scorer = scorer
		}
		return nil
	}
}

// WithInternalLimit sets how many local candidates are requested per check.
// Default is 50.
func WithInternalLimit(limit int) Option {
	return func(c *Checker) error {
		if limit < 1 {
			return ErrInvalidLimit
		}
		c.internalLimit = limit
		return nil
	}
}

// WithMaxHits sets the length of the ranked shortlist.
// Default is 10.
func WithMaxHits(maxHits int) Option {
	return func(c *Checker) error {
		if maxHits < 1 {
			return ErrInvalidLimit
		}
		c.maxHits = maxHits
		return nil
	}
}

// NewChecker creates a checker. The remote provider may be nil, in which
// case open-source lookups degrade to zero candidates.
func NewChecker(repository storage.SentenceRepository, remote RemoteSearcher, opts ...Option) (*Checker, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	scorer, err := similarity.NewScorer(nil)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		repository:    repository,
		remote:        remote,
		scorer:        scorer,
		internalLimit: defaultInternalLimit,
		maxHits:       defaultMaxHits,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Options controls a single Check invocation.
type Options struct {
	// UseOpenSources enables the remote Wikipedia lookup.
	UseOpenSources bool

	// Lang selects the wiki language for the remote lookup.
	// Empty means DefaultLang.
	Lang string

	// Timeout bounds the remote lookup. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultOptions returns the standard per-check options.
func DefaultOptions() Options {
	return Options{
		UseOpenSources: true,
		Lang:           DefaultLang,
		Timeout:        DefaultTimeout,
	}
}

// Check scores the query sentence against local and optional remote
// candidates and returns the ranked result.
//
// Local candidates are scored before remote ones, and the first-seen
// maximum wins exact score ties; this ordering is observable behavior and
// is kept stable. Remote provider failures of any kind degrade to zero
// remote candidates and never surface as errors. The only returned error
// is a failure of the local corpus store.
func (c *Checker) Check(ctx context.Context, query string, opts Options) (*core.Result, error) {
	normalized := textnorm.Normalize(query)

	result := &core.Result{
		Query: query,
		Hits:  []core.Hit{},
	}

	// 1. Local candidates, most recent first.
	records, err := c.repository.FetchRecent(ctx, c.internalLimit)
	if err != nil {
		c.logger.Error("error fetching local candidates", "err", err)
		return nil, err
	}
	result.Notes.InternalCandidates = len(records)

	var best core.Hit
	var hasBest bool
	hits := make([]core.Hit, 0, len(records))
	score := func(source core.HitSource, id, text string) {
		hit := core.Hit{
			Source:            source,
			TargetId:          id,
			TargetText:        text,
			SimilarityPercent: c.scorer.Percent(normalized, text),
		}
		hits = append(hits, hit)

		// Strict comparison keeps the first-seen maximum on ties.
		if !hasBest || hit.SimilarityPercent > best.SimilarityPercent {
			best = hit
			hasBest = true
		}
	}

	for _, record := range records {
		score(core.SourceInternal, record.Id, record.Text)
	}

	// 2. Open-knowledge candidates, best-effort.
	if opts.UseOpenSources {
		candidates := c.openCandidates(ctx, normalized, opts)
		result.Notes.OpenCandidates = len(candidates)
		result.Notes.OpenSourcesUsed = len(candidates) > 0

		for _, candidate := range candidates {
			score(core.SourceOpenWikipedia, candidate.Id, candidate.Text)
		}
	}

	// 3. Rank. The stable sort preserves scoring order among equal scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].SimilarityPercent > hits[j].SimilarityPercent
	})
	if len(hits) > c.maxHits {
		hits = hits[:c.maxHits]
	}
	result.Hits = hits

	if hasBest {
		bestHit := best
		result.BestHit = &bestHit
		result.SimilarityPercent = bestHit.SimilarityPercent
	}

	c.logger.Debug("similarity check finished",
		"internal", result.Notes.InternalCandidates,
		"open", result.Notes.OpenCandidates,
		"best", result.SimilarityPercent)
	return result, nil
}

// openCandidates performs the single remote lookup. All failures are
// logged and swallowed.
func (c *Checker) openCandidates(ctx context.Context, query string, opts Options) []core.Candidate {
	if c.remote == nil {
		c.logger.Warn("open sources requested but no remote provider configured")
		return nil
	}

	lang := opts.Lang
	if lang == "" {
		lang = DefaultLang
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	searchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	candidates, err := c.remote.Search(searchCtx, query, lang, defaultOpenResults)
	if err != nil {
		c.logger.Warn("open source lookup failed, continuing with local candidates only", "err", err)
		return nil
	}
	return candidates
}
