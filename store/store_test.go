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

package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-define"
	"github.com/ianlewis/go-define/internal/testutil"
	"github.com/ianlewis/go-define/store"
)

var testDump = testutil.Dump(
	[]string{"English", "cat", "noun", "# A small domesticated carnivorous mammal."},
	[]string{"English", "cat", "verb", "# To hoist the anchor."},
	[]string{"malformed line"},
	[]string{"French", "chat", "noun", "# [[cat]]"},
	[]string{"French", "cat", "noun", "# tab\tin definition"},
)

var testRecords = []define.Record{
	{Language: "English", Word: "cat", Role: "noun", Text: "# A small domesticated carnivorous mammal."},
	{Language: "English", Word: "cat", Role: "verb", Text: "# To hoist the anchor."},
	{Language: "French", Word: "chat", Role: "noun", Text: "# [[cat]]"},
	{Language: "French", Word: "cat", Role: "noun", Text: "# tab\tin definition"},
}

func TestScanner(t *testing.T) {
	t.Parallel()

	s := store.NewScanner(strings.NewReader(testDump))

	var got []define.Record
	var ids []int
	for s.Scan() {
		got = append(got, s.Record())
		ids = append(ids, s.ID())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	if diff := cmp.Diff(testRecords, got); diff != "" {
		t.Errorf("Record (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 3, 4}, ids); diff != "" {
		t.Errorf("ID (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, s.Skipped()); diff != "" {
		t.Errorf("Skipped (-want, +got):\n%s", diff)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestScanner_crlf(t *testing.T) {
	t.Parallel()

	s := store.NewScanner(strings.NewReader("English\tcat\tnoun\tmammal\r\n"))
	if !s.Scan() {
		t.Fatalf("Scan: %v", s.Err())
	}
	if diff := cmp.Diff("mammal", s.Record().Text); diff != "" {
		t.Errorf("Text (-want, +got):\n%s", diff)
	}
}

func TestOpenDump(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"words.tsv", "words.tsv.gz", "words.tsv.dz", "words.tsv.xz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteDump(t, name, testDump)
			s, err := store.OpenDump(path)
			if err != nil {
				t.Fatalf("OpenDump: %v", err)
			}
			defer s.Close()

			var got []define.Record
			for s.Scan() {
				got = append(got, s.Record())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}
			if diff := cmp.Diff(testRecords, got); diff != "" {
				t.Errorf("Record (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpenDump_missing(t *testing.T) {
	t.Parallel()

	_, err := store.OpenDump(testutil.TempDB(t))
	if !errors.Is(err, store.ErrStore) {
		t.Fatalf("OpenDump: want %v, got %v", store.ErrStore, err)
	}
}

func TestMemory_Fetch(t *testing.T) {
	t.Parallel()

	m := store.NewMemory(testRecords)

	tests := []struct {
		name     string
		word     string
		expected []define.Record
	}{
		{
			name:     "storage order",
			word:     "cat",
			expected: []define.Record{testRecords[0], testRecords[1], testRecords[3]},
		},
		{
			name:     "folded",
			word:     "  chat ",
			expected: []define.Record{testRecords[2]},
		},
		{
			name:     "miss",
			word:     "dog",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := m.Fetch(context.Background(), test.word)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Fetch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMemory(t *testing.T) {
	t.Parallel()

	m, err := store.LoadMemory(store.NewScanner(strings.NewReader(testDump)))
	if err != nil {
		t.Fatalf("LoadMemory: %v", err)
	}
	if diff := cmp.Diff(len(testRecords), m.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
}
