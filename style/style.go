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

// Package style implements style sheets used when rendering definitions.
//
// A style sheet maps a style name to a pair of tokens that are written before
// and after the styled text. Tokens are opaque to the renderer: they may be
// ANSI escape sequences for a terminal, markup tags for rich-text display or
// empty strings for plain text.
package style

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingStyle indicates that a style sheet has no tokens for a style that
// is used during rendering.
var ErrMissingStyle = errors.New("missing style")

// ErrUnknownFormat indicates that an output format name is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Name is a style name.
type Name string

const (
	// Comment is used for annotated markup comments.
	Comment Name = "comment"

	// BoldItalic is used for five-quote emphasis.
	BoldItalic Name = "boldItalic"

	// Bold is used for three-quote emphasis.
	Bold Name = "bold"

	// Italic is used for two-quote emphasis.
	Italic Name = "italic"

	// MacroNote is used for the output of expanded macros.
	MacroNote Name = "macroNote"

	// CrossReference marks a lemma referenced by an inflection macro.
	CrossReference Name = "crossReference"

	// LanguageHeading is used for language headings in lookup output.
	LanguageHeading Name = "languageHeading"

	// RoleLabel is used for grammatical role labels in lookup output.
	RoleLabel Name = "roleLabel"
)

// Names is the list of style names that every style sheet must define.
var Names = []Name{
	Comment,
	BoldItalic,
	Bold,
	Italic,
	MacroNote,
	CrossReference,
	LanguageHeading,
	RoleLabel,
}

// Token is the pair of strings written around styled text.
type Token struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Sheet is a style sheet.
type Sheet struct {
	// Name is a descriptive name for the sheet.
	Name string `yaml:"name"`

	// Flat is true when the end token of a style resets all styling rather
	// than closing only the innermost style, as is the case for ANSI escape
	// sequences. Spans nested in a flat sheet re-open their parent's style.
	Flat bool `yaml:"flat"`

	// Tokens maps style names to their tokens.
	Tokens map[Name]Token `yaml:"styles"`
}

// Validate checks that the sheet defines tokens for every style in Names.
func (s *Sheet) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil style sheet", ErrMissingStyle)
	}
	var missing []string
	for _, n := range Names {
		if _, ok := s.Tokens[n]; !ok {
			missing = append(missing, string(n))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: sheet %q: %s", ErrMissingStyle, s.Name, strings.Join(missing, ", "))
	}
	return nil
}

// Start returns the start token for the style.
func (s *Sheet) Start(n Name) string {
	return s.Tokens[n].Start
}

// End returns the end token for the style.
func (s *Sheet) End(n Name) string {
	return s.Tokens[n].End
}

// Wrap surrounds text with the tokens for the style.
func (s *Sheet) Wrap(n Name, text string) string {
	t := s.Tokens[n]
	return t.Start + text + t.End
}

// WrapIn surrounds text with the tokens for the style n where the text is
// written inside a span of the parent style.
func (s *Sheet) WrapIn(parent, n Name, text string) string {
	if s.Flat {
		return s.Wrap(n, text) + s.Start(parent)
	}
	return s.Wrap(n, text)
}

// Load reads a YAML style sheet from r. The returned sheet is validated.
func Load(r io.Reader) (*Sheet, error) {
	var s Sheet
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding style sheet: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ByFormat returns the built-in style sheet for the named output format.
func ByFormat(format string) (*Sheet, error) {
	switch strings.ToLower(format) {
	case "term", "terminal":
		return Terminal(), nil
	case "html":
		return HTML(), nil
	case "text", "plain":
		return Plain(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func sgr(seqs ...string) string {
	return termenv.CSI + strings.Join(seqs, ";") + "m"
}

// Terminal returns a style sheet that uses ANSI escape sequences.
func Terminal() *Sheet {
	reset := sgr(termenv.ResetSeq)
	color := func(bold bool, c termenv.ANSIColor) Token {
		seqs := []string{c.Sequence(false)}
		if bold {
			seqs = slices.Insert(seqs, 0, termenv.BoldSeq)
		}
		return Token{Start: sgr(seqs...), End: reset}
	}

	grey := color(true, termenv.ANSIBlack)
	blue := color(true, termenv.ANSIBlue)
	return &Sheet{
		Name: "terminal",
		Flat: true,
		Tokens: map[Name]Token{
			Comment:         grey,
			BoldItalic:      color(true, termenv.ANSIMagenta),
			Bold:            color(true, termenv.ANSIRed),
			Italic:          blue,
			MacroNote:       color(false, termenv.ANSIYellow),
			CrossReference:  blue,
			LanguageHeading: color(true, termenv.ANSIGreen),
			RoleLabel:       grey,
		},
	}
}

// HTML returns a style sheet that uses span tags suitable for rich-text
// display such as Pango markup.
func HTML() *Sheet {
	span := func(color string) Token {
		return Token{
			Start: `<span color="` + color + `">`,
			End:   "</span>",
		}
	}

	return &Sheet{
		Name: "html",
		Tokens: map[Name]Token{
			Comment:         span("#888"),
			BoldItalic:      span("#f0f"),
			Bold:            span("#f00"),
			Italic:          span("#00f"),
			MacroNote:       span("#ff0"),
			CrossReference:  span("#00f"),
			LanguageHeading: span("#0f0"),
			RoleLabel:       span("#888"),
		},
	}
}

// Plain returns a style sheet with empty tokens.
func Plain() *Sheet {
	tokens := make(map[Name]Token, len(Names))
	for _, n := range Names {
		tokens[n] = Token{}
	}
	return &Sheet{
		Name:   "plain",
		Tokens: tokens,
	}
}
