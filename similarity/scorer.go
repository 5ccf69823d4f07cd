package similarity

import (
	"math"

	"github.com/parsatext/hamanand/textnorm"
)

// Scorer computes a bounded similarity percentage between two pieces of
// text by combining token-level and character-level set overlap.
//
// Scoring is a pure, total function: it performs no I/O and has no failure
// modes. It is symmetric because Jaccard similarity is symmetric.
type Scorer struct {
	config *Config
}

// NewScorer creates a scorer. A nil config uses DefaultConfig.
func NewScorer(config *Config) (*Scorer, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{config: config}, nil
}

// Percent returns the weighted similarity between a and b as a percentage
// in [0, 100], rounded to 2 decimal places.
//
// Both inputs are normalized before feature extraction. Two empty feature
// sets count as identical (Jaccard 1.0), one empty set against a non-empty
// one as maximally dissimilar (0.0).
func (s *Scorer) Percent(a, b string) float64 {
	na := textnorm.Normalize(a)
	nb := textnorm.Normalize(b)

	tokenJaccard := jaccard(
		toSet(textnorm.Tokens(na)),
		toSet(textnorm.Tokens(nb)),
	)
	charJaccard := jaccard(
		toSet(textnorm.NGrams(na, s.config.NGramSize)),
		toSet(textnorm.NGrams(nb, s.config.NGramSize)),
	)

	score := s.config.CharWeight*charJaccard + s.config.TokenWeight*tokenJaccard
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return math.Round(score*10000) / 100
}

// toSet collapses a feature sequence into a set; duplicate occurrences are
// intentionally dropped (Jaccard semantics, not frequency-weighted).
func toSet(features []string) map[string]struct{} {
	set := make(map[string]struct{}, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	return set
}

// jaccard returns |a∩b| / |a∪b|, with 1.0 for two empty sets and 0.0 when
// exactly one set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for f := range a {
		if _, ok := b[f]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
