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

package define

import (
	"context"
)

// Record is a single definition of a word.
type Record struct {
	// Language is the name of the word's language, e.g. "English".
	Language string

	// Word is the defined word.
	Word string

	// Role is the grammatical role, e.g. "noun". It may contain macros.
	Role string

	// Text is the raw definition in wiki markup.
	Text string
}

// Fetcher retrieves the definitions of a word. A word without definitions is
// not an error and returns no records.
type Fetcher interface {
	Fetch(ctx context.Context, word string) ([]Record, error)
}

// FetcherFunc adapts a function to a Fetcher.
type FetcherFunc func(ctx context.Context, word string) ([]Record, error)

// Fetch implements [Fetcher.Fetch].
func (f FetcherFunc) Fetch(ctx context.Context, word string) ([]Record, error) {
	return f(ctx, word)
}
