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


// Package similarity scores text pairs with a dual-signal overlap measure.
//
// The score combines Jaccard similarity over word-like token sets with
// Jaccard similarity over character n-gram sets, weighted and expressed as
// a percentage. The weights and the window length are configuration
// defaults, not hard-coded literals; see Config.
package similarity
