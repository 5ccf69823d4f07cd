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


package similarity

import "errors"

var (
	// ErrNegativeWeight indicates a negative scoring weight.
	ErrNegativeWeight = errors.New("scoring weight cannot be negative")

	// ErrZeroWeights indicates that both scoring weights are zero.
	ErrZeroWeights = errors.New("at least one scoring weight must be positive")

	// ErrInvalidNGramSize indicates an n-gram window length below 1.
	ErrInvalidNGramSize = errors.New("n-gram size must be at least 1")
)
