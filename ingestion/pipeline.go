package ingestion

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/parsatext/hamanand/core"
	"github.com/parsatext/hamanand/storage"
)

// Pipeline loads sentences into the corpus in bulk. Lines are read
// sequentially and upserted concurrently through a worker pool; the
// repository serializes the actual writes.
type Pipeline struct {
	repository storage.SentenceRepository
	pool       *ants.Pool
	progress   *ProgressTracker
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent upserts.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithProgress reports load progress to w every reportInterval sentences.
// Default is no progress reporting.
func WithProgress(w io.Writer, reportInterval int) Option {
	return func(p *Pipeline) error {
		if w == nil {
			return nil
		}
		p.progress = NewProgressTracker(w, reportInterval)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a corpus loading pipeline.
func NewPipeline(repository storage.SentenceRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Stats summarizes a Load run.
type Stats struct {
	Read     int // non-blank lines read
	Skipped  int // blank lines skipped
	Inserted int // records upserted
	Failed   int // records that failed validation or storage
}

// Load reads sentences from r, one per line, and upserts each as a corpus
// record with a content-derived id. Blank lines are skipped. Individual
// record failures are logged and counted without aborting the run; Load
// returns an error only when the reader itself fails or the context is
// canceled.
func (p *Pipeline) Load(ctx context.Context, r io.Reader) (*Stats, error) {
	if r == nil {
		return nil, ErrReaderRequired
	}

	stats := &Stats{}
	var inserted, failed atomic.Int64
	var wg sync.WaitGroup

	if p.progress != nil {
		p.progress.Start()
	}

	now := time.Now().UTC()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			stats.Skipped++
			continue
		}
		stats.Read++

		record := &core.SentenceRecord{
			Id:        core.IDFromContent(text),
			Text:      text,
			CreatedAt: now,
		}

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.repository.Upsert(ctx, record); err != nil {
				p.logger.Error("error upserting sentence", "id", record.Id, "err", err)
				failed.Add(1)
				return
			}
			inserted.Add(1)
			if p.progress != nil {
				p.progress.Increment(1)
			}
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("error submitting sentence to pool", "id", record.Id, "err", submitErr)
			failed.Add(1)
		}
	}

	wg.Wait()

	if p.progress != nil {
		p.progress.Finish()
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	stats.Inserted = int(inserted.Load())
	stats.Failed = int(failed.Load())

	p.logger.Info("corpus load finished",
		"read", stats.Read, "skipped", stats.Skipped,
		"inserted", stats.Inserted, "failed", stats.Failed)
	return stats, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
