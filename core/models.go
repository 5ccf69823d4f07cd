package core

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic sentence id from text content
// using BLAKE2b hashing. Identical content always produces the same id,
// which keeps repeated submissions of a sentence from piling up in the
// corpus.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// HitSource identifies where a scored candidate came from.
type HitSource int

const (
	// SourceInternal marks candidates fetched from the local sentence corpus.
	SourceInternal HitSource = iota + 1
	// SourceOpenWikipedia marks candidates fetched from the public
	// Wikipedia opensearch endpoint.
	SourceOpenWikipedia
)

const (
	sourceInternalName      = "internal_db"
	sourceOpenWikipediaName = "open_wikipedia"
)

// String returns the stable wire name of the source.
func (s HitSource) String() string {
	switch s {
	case SourceInternal:
		return sourceInternalName
	case SourceOpenWikipedia:
		return sourceOpenWikipediaName
	default:
		return "unknown"
	}
}

// MarshalJSON emits the source as its stable wire name.
func (s HitSource) MarshalJSON() ([]byte, error) {
	if err := ValidateHitSource(s); err != nil {
		return nil, err
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a stable wire name back into a HitSource.
func (s *HitSource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case sourceInternalName:
		*s = SourceInternal
	case sourceOpenWikipediaName:
		*s = SourceOpenWikipedia
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHitSource, name)
	}
	return nil
}

// SentenceRecord represents a single sentence stored in the local corpus.
type SentenceRecord struct {
	Id        string
	Text      string
	CreatedAt time.Time // When the sentence was inserted into the corpus
}

// Candidate is an (id, text) pair gathered from a provider and compared
// against the query.
type Candidate struct {
	Id   string
	Text string
}

// Hit is one scored candidate. Immutable once produced.
type Hit struct {
	Source            HitSource `json:"source"`
	TargetId          string    `json:"target_id"`
	TargetText        string    `json:"target_text"`
	SimilarityPercent float64   `json:"similarity_percent"`
}

// Notes carries per-check diagnostics.
type Notes struct {
	InternalCandidates int  `json:"internal_candidates"`
	OpenCandidates     int  `json:"open_candidates"`
	OpenSourcesUsed    bool `json:"open_sources_used"`
}

// Result is the outcome of checking one query sentence.
//
// SimilarityPercent always equals the maximum SimilarityPercent among Hits,
// or 0 when no candidates were available. BestHit is nil iff no candidates
// were available from either source.
type Result struct {
	Query             string  `json:"query"`
	SimilarityPercent float64 `json:"similarity_percent"`
	BestHit           *Hit    `json:"best_hit"`
	Hits              []Hit   `json:"hits"`
	Notes             Notes   `json:"notes"`
}
