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

package style_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-define/style"
)

func TestPresets_Validate(t *testing.T) {
	t.Parallel()

	for _, s := range []*style.Sheet{style.Terminal(), style.HTML(), style.Plain()} {
		t.Run(s.Name, func(t *testing.T) {
			t.Parallel()

			if err := s.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestSheet_Validate_missing(t *testing.T) {
	t.Parallel()

	s := &style.Sheet{
		Name: "partial",
		Tokens: map[style.Name]style.Token{
			style.Bold: {Start: "<b>", End: "</b>"},
		},
	}
	err := s.Validate()
	if !errors.Is(err, style.ErrMissingStyle) {
		t.Fatalf("Validate: want %v, got %v", style.ErrMissingStyle, err)
	}
	if !strings.Contains(err.Error(), "italic") {
		t.Fatalf("Validate: error %q does not name missing style", err)
	}
}

func TestTerminal_tokens(t *testing.T) {
	t.Parallel()

	s := style.Terminal()
	tests := []struct {
		name     style.Name
		expected string
	}{
		{style.Comment, "\x1b[1;30m"},
		{style.BoldItalic, "\x1b[1;35m"},
		{style.Bold, "\x1b[1;31m"},
		{style.Italic, "\x1b[1;34m"},
		{style.MacroNote, "\x1b[33m"},
		{style.LanguageHeading, "\x1b[1;32m"},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.expected, s.Start(test.name)); diff != "" {
			t.Errorf("Start(%q) (-want, +got):\n%s", test.name, diff)
		}
		if diff := cmp.Diff("\x1b[0m", s.End(test.name)); diff != "" {
			t.Errorf("End(%q) (-want, +got):\n%s", test.name, diff)
		}
	}
}

func TestSheet_WrapIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sheet    *style.Sheet
		expected string
	}{
		{
			name:     "flat",
			sheet:    style.Terminal(),
			expected: "\x1b[1;34mx\x1b[0m\x1b[33m",
		},
		{
			name:     "nested",
			sheet:    style.HTML(),
			expected: `<span color="#00f">x</span>`,
		},
		{
			name:     "plain",
			sheet:    style.Plain(),
			expected: "x",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := test.sheet.WrapIn(style.MacroNote, style.CrossReference, "x")
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("WrapIn (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("name: brackets\nflat: false\nstyles:\n")
	for _, n := range style.Names {
		b.WriteString("  " + string(n) + ":\n")
		b.WriteString("    start: \"[" + string(n) + "]\"\n")
		b.WriteString("    end: \"[/" + string(n) + "]\"\n")
	}

	s, err := style.Load(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff("[bold]x[/bold]", s.Wrap(style.Bold, "x")); diff != "" {
		t.Fatalf("Wrap (-want, +got):\n%s", diff)
	}
}

func TestLoad_missing(t *testing.T) {
	t.Parallel()

	_, err := style.Load(strings.NewReader("name: empty\nstyles:\n  bold:\n    start: x\n    end: y\n"))
	if !errors.Is(err, style.ErrMissingStyle) {
		t.Fatalf("Load: want %v, got %v", style.ErrMissingStyle, err)
	}
}

func TestByFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   string
		expected string
		err      error
	}{
		{"term", "terminal", nil},
		{"Terminal", "terminal", nil},
		{"html", "html", nil},
		{"text", "plain", nil},
		{"plain", "plain", nil},
		{"json", "", style.ErrUnknownFormat},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			t.Parallel()

			s, err := style.ByFormat(test.format)
			if !errors.Is(err, test.err) {
				t.Fatalf("ByFormat: want %v, got %v", test.err, err)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.expected, s.Name); diff != "" {
				t.Fatalf("ByFormat (-want, +got):\n%s", diff)
			}
		})
	}
}
