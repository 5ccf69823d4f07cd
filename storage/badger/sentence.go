package badger

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/parsatext/hamanand/core"
	"github.com/parsatext/hamanand/storage"
)

// SentenceRepository implements storage.SentenceRepository for BadgerDB.
type SentenceRepository struct {
	backend *Backend
}

var _ storage.SentenceRepository = (*SentenceRepository)(nil)

// NewSentenceRepository creates a new SentenceRepository.
func NewSentenceRepository(backend *Backend) (*SentenceRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &SentenceRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is closed separately.
func (r *SentenceRepository) Close() error {
	return nil
}

// Upsert inserts or replaces a record by id. When CreatedAt is zero the
// current time is stamped. Timestamps are stored at whole-second precision
// so the record and its index entry agree with the serialized form; the
// caller's record is not modified. Concurrent upserts of the same id are
// retried when the transactions conflict.
func (r *SentenceRepository) Upsert(ctx context.Context, record *core.SentenceRecord) error {
	if record != nil {
		stamped := *record
		if stamped.CreatedAt.IsZero() {
			stamped.CreatedAt = time.Now().UTC()
		}
		stamped.CreatedAt = stamped.CreatedAt.UTC().Truncate(time.Second)
		record = &stamped
	}
	if err := core.ValidateSentenceRecord(record); err != nil {
		return err
	}

	for {
		err := r.upsertTx(record)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (r *SentenceRepository) upsertTx(record *core.SentenceRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSentenceKey(record.Id)

		// Replacing a record moves it in the recency index, so the old
		// index entry has to go first.
		old, err := r.readSentenceRecord(tx, key)
		if err != nil {
			return err
		}
		if old != nil {
			if err := tx.Delete(makeSentenceDateKey(old.CreatedAt, old.Id)); err != nil {
				return err
			}
		}

		if err := tx.Set(key, storage.MarshalSentenceRecord(record)); err != nil {
			return err
		}
		dateKey := makeSentenceDateKey(record.CreatedAt, record.Id)
		if err := tx.Set(dateKey, []byte(record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// FetchRecent retrieves up to limit records, newest first.
func (r *SentenceRepository) FetchRecent(ctx context.Context, limit int) ([]*core.SentenceRecord, error) {
	if limit < 1 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.SentenceRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use a reverse iterator to get most recent records first.
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index.
		startKey := makeSentenceDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), "\xff")
		prefix := sentenceDateKeyPrefix()

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			// The index value is the record id.
			var id string
			if err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			record, err := r.readSentenceRecord(tx, makeSentenceKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Get retrieves a single record by id.
func (r *SentenceRepository) Get(ctx context.Context, id string) (*core.SentenceRecord, error) {
	var record *core.SentenceRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = r.readSentenceRecord(tx, makeSentenceKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// Delete removes a record and its date index entry.
func (r *SentenceRepository) Delete(ctx context.Context, id string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSentenceKey(id)
		record, err := r.readSentenceRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeSentenceDateKey(record.CreatedAt, record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// Count returns the number of records in the corpus.
func (r *SentenceRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = sentenceKeyPrefix()

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}

// readSentenceRecord reads and unmarshals a record by primary key.
// Returns nil without error when the key does not exist.
func (r *SentenceRepository) readSentenceRecord(tx *badger.Txn, key []byte) (*core.SentenceRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.SentenceRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalSentenceRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
