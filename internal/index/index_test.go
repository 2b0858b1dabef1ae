// Copyright 2025 Ian Lewis
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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	Word string
	Lang string
}

func entryWord(e entry) string {
	return e.Word
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []entry{
		{"foo", "English"},
		{"bar", "English"},
		{"baz", "French"},
		{"bar", "French"},
		{"bar", "Dutch"},
	}

	tests := []struct {
		name     string
		cmp      func(string, string) int
		query    string
		expected []entry
	}{
		{
			name:     "single result",
			cmp:      strings.Compare,
			query:    "foo",
			expected: []entry{{"foo", "English"}},
		},
		{
			name:  "multiple results keep order",
			cmp:   strings.Compare,
			query: "bar",
			expected: []entry{
				{"bar", "English"},
				{"bar", "French"},
				{"bar", "Dutch"},
			},
		},
		{
			name:     "no results",
			cmp:      strings.Compare,
			query:    "none",
			expected: nil,
		},
		{
			name: "case insensitive",
			cmp: func(a, b string) int {
				return strings.Compare(strings.ToLower(a), strings.ToLower(b))
			},
			query:    "FOO",
			expected: []entry{{"foo", "English"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(values, entryWord, test.cmp)
			if diff := cmp.Diff(test.expected, idx.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	idx := New(nil, entryWord, strings.Compare)
	if got := idx.Len(); got != 0 {
		t.Fatalf("Len: want 0, got %d", got)
	}
	if got := idx.Search("foo"); got != nil {
		t.Fatalf("Search: want nil, got %v", got)
	}
}
