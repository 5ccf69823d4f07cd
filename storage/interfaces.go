package storage

import (
	"context"

	"github.com/parsatext/hamanand/core"
)

// SentenceRepository provides operations for managing the local sentence
// corpus. Implementations must be thread-safe and support concurrent access.
type SentenceRepository interface {
	// Upsert inserts or replaces a record by id, stamping the current time
	// when CreatedAt is zero. Timestamps are stored at whole-second
	// precision. Records are validated before writing; the caller's record
	// is not modified.
	Upsert(ctx context.Context, record *core.SentenceRecord) error

	// FetchRecent retrieves up to limit records, ordered by descending
	// creation time. Returns ErrInvalidQuery for a limit below 1.
	FetchRecent(ctx context.Context, limit int) ([]*core.SentenceRecord, error)

	// Get retrieves a single record by id.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id string) (*core.SentenceRecord, error)

	// Delete removes a record and its indices by id.
	// Returns ErrNotFound if the record doesn't exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of records in the corpus.
	Count(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
