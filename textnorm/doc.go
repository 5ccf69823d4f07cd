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


// Package textnorm canonicalizes mixed Latin/Persian text and derives the
// feature views used for similarity scoring.
//
// Normalize unifies Arabic script variants with their Persian counterparts
// and makes comparisons case-, punctuation-, and whitespace-insensitive.
// Tokens and NGrams extract the two feature views (word-like tokens and
// fixed-length character windows) that the similarity scorer consumes.
package textnorm
