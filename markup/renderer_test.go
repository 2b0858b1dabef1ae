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

package markup_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-define/markup"
	"github.com/ianlewis/go-define/style"
)

// TestEmphasize tests Emphasize.
func TestEmphasize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold italic",
			input:    "'''''w'''''",
			expected: `<span color="#f0f">w</span>`,
		},
		{
			name:     "bold",
			input:    "a '''b''' c",
			expected: `a <span color="#f00">b</span> c`,
		},
		{
			name:     "italic",
			input:    "''chat''",
			expected: `<span color="#00f">chat</span>`,
		},
		{
			name:     "mixed",
			input:    "'''''x''''' '''y''' ''z''",
			expected: `<span color="#f0f">x</span> <span color="#f00">y</span> <span color="#00f">z</span>`,
		},
		{
			name:     "unterminated",
			input:    "''open",
			expected: "''open",
		},
		{
			name:     "quotes only",
			input:    "''''",
			expected: "''''",
		},
		{
			name:     "apostrophe",
			input:    "the cat's toy",
			expected: "the cat's toy",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, markup.Emphasize(test.input, style.HTML())); diff != "" {
				t.Fatalf("Emphasize (-want, +got):\n%s", diff)
			}
		})
	}
}

func newRenderer(t *testing.T, opts *markup.Options) *markup.Renderer {
	t.Helper()

	r, err := markup.New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// TestRenderer_Render tests Renderer.Render.
func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *markup.Options
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "# A small domesticated carnivore (Felis catus).",
			expected: "A small domesticated carnivore (Felis catus).",
		},
		{
			name:     "links",
			input:    "# A [[feline]] [[animal]]",
			expected: "A feline animal",
		},
		{
			name: "italic html",
			opts: &markup.Options{
				Sheet: style.HTML(),
			},
			input:    "# ''chat''",
			expected: `<span color="#00f">chat</span>`,
		},
		{
			name: "strong emphasis terminal",
			opts: &markup.Options{
				Sheet: style.Terminal(),
			},
			input:    "# '''''w'''''",
			expected: "\x1b[1;35mw\x1b[0m",
		},
		{
			name: "everything",
			opts: &markup.Options{
				Sheet: style.HTML(),
			},
			input: "# {{defdate|1900}} ''[[cat|Cats]]''<ref>Ref</ref><!-- c --> {{plural of|[[cat]]}}",
			expected: `<span color="#ff0">[1900]</span> <span color="#00f">Cats</span> ` +
				`<span color="#ff0">plural of cat</span>`,
		},
		{
			name: "raw",
			opts: &markup.Options{
				Raw: true,
			},
			input:    "# ''[[cat]]''",
			expected: "# ''[[cat]]''",
		},
		{
			name: "annotated comment",
			opts: &markup.Options{
				Normalize: &markup.NormalizeOptions{
					Comments: markup.CommentsAnnotate,
				},
			},
			input:    "# cat<!--sense 2-->",
			expected: "cat (sense 2)",
		},
		{
			name: "no handlers",
			opts: &markup.Options{
				Expand: &markup.ExpandOptions{
					Handlers: markup.Handlers(markup.NoHandlers),
				},
			},
			input:    "# {{plural of|cat}}",
			expected: "(cat)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := newRenderer(t, test.opts)
			if diff := cmp.Diff(test.expected, r.Render(test.input)); diff != "" {
				t.Fatalf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRenderer_RenderRole tests Renderer.RenderRole.
func TestRenderer_RenderRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"noun", "Noun"},
		{"proper noun", "Proper noun"},
		{"VERB", "Verb"},
		{"{{abbreviation}}", "Abbreviation"},
		{"{{en-noun|lang=en|s}}", "En-noun (s)"},
		{"été", "Été"},
		{"", ""},
	}

	r := newRenderer(t, &markup.Options{Sheet: style.Terminal()})
	for _, test := range tests {
		if diff := cmp.Diff(test.expected, r.RenderRole(test.input)); diff != "" {
			t.Errorf("RenderRole(%q) (-want, +got):\n%s", test.input, diff)
		}
	}
}

// TestRenderer_concurrent tests that a Renderer can be shared.
func TestRenderer_concurrent(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, &markup.Options{Sheet: style.HTML()})
	want := r.Render("# {{form of|plural|[[cat]]}} ''x''")

	var wg sync.WaitGroup
	got := make([]string, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = r.Render("# {{form of|plural|[[cat]]}} ''x''") + r.RenderRole("noun")
		}()
	}
	wg.Wait()

	for i := range got {
		if diff := cmp.Diff(want+"Noun", got[i]); diff != "" {
			t.Fatalf("Render %d (-want, +got):\n%s", i, diff)
		}
	}
}

func TestNew_missingStyle(t *testing.T) {
	t.Parallel()

	_, err := markup.New(&markup.Options{
		Sheet: &style.Sheet{Name: "broken"},
	})
	if !errors.Is(err, style.ErrMissingStyle) {
		t.Fatalf("New: want %v, got %v", style.ErrMissingStyle, err)
	}
}
