// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package define looks up words in a dictionary store and prints their
// definitions.
//
// Definitions are stored as wiki markup, one record per word, language and
// grammatical role. A [Fetcher] retrieves the records for a word, [Lookup]
// groups them by language according to a language allow-list, and a
// [Printer] renders each definition with a [markup.Renderer] and writes the
// result.
//
// Storage backends are implemented in the store package.
package define
