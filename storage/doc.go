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


// Package storage provides the storage abstraction layer for the local
// sentence corpus.
//
// The SentenceRepository interface decouples the candidate aggregator from
// the storage implementation, so different backends (BadgerDB, in-memory)
// can be used interchangeably and tests can run against in-memory fixtures.
//
// # Architecture
//
//   - SentenceRepository: upsert, recency-ordered retrieval, lookup, delete
//   - SentenceRecordMUS: binary serialization of corpus records
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
