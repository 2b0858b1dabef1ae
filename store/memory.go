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

package store

import (
	"context"
	"strings"

	"github.com/ianlewis/go-define"
	"github.com/ianlewis/go-define/internal/folding"
	"github.com/ianlewis/go-define/internal/index"
)

// Memory is an in-memory store. It is safe for concurrent use.
type Memory struct {
	idx *index.Index[define.Record]
}

// NewMemory returns a new Memory store holding the given records.
func NewMemory(records []define.Record) *Memory {
	return &Memory{
		idx: index.New(records, func(r define.Record) string {
			return folding.Key(r.Word)
		}, strings.Compare),
	}
}

// LoadMemory reads every record from s into a new Memory store.
func LoadMemory(s *Scanner) (*Memory, error) {
	var records []define.Record
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return NewMemory(records), nil
}

// Len returns the number of records in the store.
func (m *Memory) Len() int {
	return m.idx.Len()
}

// Fetch implements [define.Fetcher.Fetch].
func (m *Memory) Fetch(ctx context.Context, word string) ([]define.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.idx.Search(folding.Key(word)), nil
}
