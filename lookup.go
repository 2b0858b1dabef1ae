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
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrLookup indicates that the records for a word could not be fetched.
var ErrLookup = errors.New("lookup")

// Options are lookup options.
type Options struct {
	// Languages is the language allow-list. Allowed languages are printed
	// first in the given order. An empty list allows every language in
	// lexicographic order.
	Languages []string
}

// Definition is a definition in a lookup result.
type Definition struct {
	Role string
	Text string
}

// Group is the definitions for a single language.
type Group struct {
	Language    string
	Definitions []Definition
}

// Result is the result of a lookup.
type Result struct {
	// Word is the looked up word.
	Word string

	// Languages is the language allow-list used to build the result.
	Languages []string

	// Groups are the definitions in allowed languages in allow-list order.
	Groups []*Group

	// Others are the definitions in other languages in lexicographic order.
	Others []*Group
}

// Found returns true if the word has any definitions.
func (r *Result) Found() bool {
	return len(r.Groups) > 0 || len(r.Others) > 0
}

// Lookup fetches the definitions for word and groups them by language.
func Lookup(ctx context.Context, f Fetcher, word string, opts *Options) (*Result, error) {
	records, err := f.Fetch(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrLookup, word, err)
	}
	var languages []string
	if opts != nil {
		languages = opts.Languages
	}
	return NewResult(word, records, languages), nil
}

// NewResult groups records by language. Records keep their relative order
// within a language.
func NewResult(word string, records []Record, languages []string) *Result {
	byLang := map[string]*Group{}
	var found []string
	for _, r := range records {
		g, ok := byLang[r.Language]
		if !ok {
			g = &Group{Language: r.Language}
			byLang[r.Language] = g
			found = append(found, r.Language)
		}
		g.Definitions = append(g.Definitions, Definition{
			Role: r.Role,
			Text: strings.TrimSpace(r.Text),
		})
	}
	slices.Sort(found)

	res := &Result{
		Word:      word,
		Languages: slices.Clone(languages),
	}
	if len(languages) == 0 {
		for _, l := range found {
			res.Groups = append(res.Groups, byLang[l])
		}
		return res
	}

	for _, l := range languages {
		if g, ok := byLang[l]; ok {
			res.Groups = append(res.Groups, g)
			// An allow-list may repeat a language.
			delete(byLang, l)
		}
	}
	for _, l := range found {
		if g, ok := byLang[l]; ok && !slices.Contains(languages, l) {
			res.Others = append(res.Others, g)
		}
	}
	return res
}
