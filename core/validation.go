// Copyright 2026 Parsatext
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateSentenceRecord validates a SentenceRecord according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Text must not be empty
//   - CreatedAt must not be in the future
//
// NOT validated:
//   - CreatedAt zero value (the repository stamps it on insert)
func ValidateSentenceRecord(record *SentenceRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSentenceRecord)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRecord, ErrEmptyId)
	}

	if record.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRecord, ErrEmptyText)
	}

	if !IsValidTimestamp(record.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidSentenceRecord, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateHitSource validates that a HitSource has a valid value.
func ValidateHitSource(source HitSource) error {
	switch source {
	case SourceInternal, SourceOpenWikipedia:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidHitSource, int(source))
	}
}

// IsValidTimestamp reports whether a timestamp is not in the future.
// A small clock-skew allowance keeps freshly stamped records valid across
// machines with slightly drifting clocks.
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now().Add(time.Minute))
}
