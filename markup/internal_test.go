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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDecodeConjugation tests decodeConjugation.
func TestDecodeConjugation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     Args
		expected string
		err      error
	}{
		{
			name:     "present indicative",
			code:     Args{"1", "s", "pres", "ind"},
			expected: "first person singular present indicative",
		},
		{
			name:     "imperative",
			code:     Args{"3", "p", "imp"},
			expected: "third person plural imperative",
		},
		{
			name:     "imperative ignores mood",
			code:     Args{"2", "s", "imp", "ind"},
			expected: "second person singular imperative",
		},
		{
			name:     "literal tense",
			code:     Args{"2", "p", "impf"},
			expected: "second person plural impf",
		},
		{
			name: "present without mood",
			code: Args{"1", "s", "pres"},
			err:  ErrArity,
		},
		{
			name: "short code",
			code: Args{"1", "s"},
			err:  ErrArity,
		},
		{
			name: "bad person",
			code: Args{"0", "s", "imp"},
			err:  ErrUnknownCode,
		},
		{
			name: "bad number",
			code: Args{"1", "d", "imp"},
			err:  ErrUnknownCode,
		},
		{
			name: "bad mood",
			code: Args{"1", "s", "pres", "cond"},
			err:  ErrUnknownCode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeConjugation(test.code)
			if !errors.Is(err, test.err) {
				t.Fatalf("decodeConjugation: want error %v, got %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("decodeConjugation (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestSpan_rewrite tests span scanning edge cases.
func TestSpan_rewrite(t *testing.T) {
	t.Parallel()

	wrap := func(inner string) (string, bool) {
		return "<" + inner + ">", true
	}

	tests := []struct {
		name     string
		span     *span
		input    string
		expected string
	}{
		{
			name:     "empty",
			span:     &span{open: "((", close: "))"},
			input:    "",
			expected: "",
		},
		{
			name:     "nearest close",
			span:     &span{open: "((", close: "))"},
			input:    "((a)) ((b))",
			expected: "<a> <b>",
		},
		{
			name:     "empty contents",
			span:     &span{open: "((", close: "))"},
			input:    "(())",
			expected: "<>",
		},
		{
			name:     "minimum contents",
			span:     &span{open: "((", close: "))", min: 1},
			input:    "(())",
			expected: "(())",
		},
		{
			name:     "open at end",
			span:     &span{open: "((", close: "))"},
			input:    "a((",
			expected: "a((",
		},
		{
			name:     "newline rejected",
			span:     &span{open: "((", close: "))"},
			input:    "((a\nb))",
			expected: "((a\nb))",
		},
		{
			name:     "newline allowed",
			span:     &span{open: "((", close: "))", multiline: true},
			input:    "((a\nb))",
			expected: "<a\nb>",
		},
		{
			name:     "leftmost open",
			span:     &span{open: "((", close: "))", min: 1},
			input:    "(((a))",
			expected: "<(a>",
		},
		{
			name:     "retry after open byte",
			span:     &span{open: "((", close: "))", min: 1},
			input:    "((\n((a))",
			expected: "((\n<a>",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.span.rewrite(test.input, wrap)); diff != "" {
				t.Fatalf("rewrite (-want, +got):\n%s", diff)
			}
		})
	}
}
