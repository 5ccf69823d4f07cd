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


// Package wikipedia implements the open-knowledge candidate provider on
// top of the public MediaWiki opensearch API.
//
// The client returns plain (id, text) candidates and reports failures as
// errors; the candidate aggregator treats any failure as zero candidates,
// so remote problems never surface to callers of the checker.
package wikipedia
