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

package markup

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-define/style"
)

// Options are options for a Renderer.
type Options struct {
	// Normalize are the Normalizer options. Nil uses DefaultNormalizeOptions.
	Normalize *NormalizeOptions

	// Expand are the Expander options.
	Expand *ExpandOptions

	// Sheet is the style sheet. Nil uses style.Plain.
	Sheet *style.Sheet

	// Raw disables formatting of definitions.
	Raw bool
}

// Renderer renders definitions and role labels.
type Renderer struct {
	normalizer *Normalizer
	expander   *Expander
	sheet      *style.Sheet
	raw        bool
}

// New returns a new Renderer. It returns an error wrapping
// style.ErrMissingStyle if the style sheet is incomplete.
func New(opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = &Options{}
	}
	sheet := opts.Sheet
	if sheet == nil {
		sheet = style.Plain()
	}

	n, err := NewNormalizer(opts.Normalize, sheet)
	if err != nil {
		return nil, err
	}
	e, err := NewExpander(opts.Expand, sheet)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		normalizer: n,
		expander:   e,
		sheet:      sheet,
		raw:        opts.Raw,
	}, nil
}

// Sheet returns the renderer's style sheet.
func (r *Renderer) Sheet() *style.Sheet {
	return r.sheet
}

// Render renders a raw definition.
func (r *Renderer) Render(raw string) string {
	if r.raw {
		return raw
	}
	s := r.normalizer.Normalize(raw)
	s = r.expander.Expand(s)
	return Emphasize(s, r.sheet)
}

// RenderRole renders a role label such as "noun" or "{{abbreviation}}". Macros
// are reduced to their names, the first letter is upper-cased and the rest is
// lower-cased.
func (r *Renderer) RenderRole(role string) string {
	return capitalize(r.expander.Strip(role))
}

func capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Casers are stateful and are not shared.
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
