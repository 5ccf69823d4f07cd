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


package wikipedia

import "errors"

var (
	// ErrBaseURLRequired is returned when no api.php endpoint is configured.
	ErrBaseURLRequired = errors.New("base URL required")

	// ErrInvalidTimeout is returned for a non-positive request timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrInvalidLanguage is returned for a language code with characters
	// outside [a-z0-9-].
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrUnexpectedStatus indicates a non-200 response from the API.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse indicates a payload that is not a valid
	// opensearch result array.
	ErrMalformedResponse = errors.New("malformed opensearch response")
)
