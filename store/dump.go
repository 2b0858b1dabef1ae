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
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"

	"github.com/ianlewis/go-define"
)

const (
	fieldSeparator = "\t"
	numFields      = 4

	// maxLineSize is the maximum size of a dump line.
	maxLineSize = 16 * 1024 * 1024
)

// Scanner reads records from a tab separated dump. Each line holds the
// language, word, role and definition of a single record. Lines with fewer
// fields are skipped. Tabs after the third are part of the definition.
type Scanner struct {
	s       *bufio.Scanner
	closers []io.Closer

	line    int
	id      int
	rec     define.Record
	skipped int
	err     error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{
		s:    s,
		line: -1,
	}
}

// OpenDump opens the dump file at path. Files ending in .gz, .dz or .xz are
// decompressed with gzip, dictzip or xz respectively.
func OpenDump(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrStore, path, err)
	}

	var r io.Reader = f
	closers := []io.Closer{f}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: reading %q: %w", ErrStore, path, err)
		}
		r = gz
		closers = append(closers, gz)
	case ".dz":
		dz, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: reading %q: %w", ErrStore, path, err)
		}
		r = io.NewSectionReader(dz, 0, math.MaxInt64)
	case ".xz":
		x, err := xz.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: reading %q: %w", ErrStore, path, err)
		}
		r = x
	}

	s := NewScanner(r)
	s.closers = closers
	return s, nil
}

// Scan advances to the next record. It returns false at the end of the input
// or on error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		fields := strings.SplitN(strings.TrimRight(s.s.Text(), "\r"), fieldSeparator, numFields)
		if len(fields) < numFields {
			s.skipped++
			continue
		}
		s.id = s.line
		s.rec = define.Record{
			Language: fields[0],
			Word:     fields[1],
			Role:     fields[2],
			Text:     fields[3],
		}
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("%w: line %d: %w", ErrStore, s.line+2, err)
	}
	return false
}

// Record returns the current record.
func (s *Scanner) Record() define.Record {
	return s.rec
}

// ID returns the id of the current record. The id is the record's 0-based
// line number.
func (s *Scanner) ID() int {
	return s.id
}

// Skipped returns the number of malformed lines skipped so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying files, if any.
func (s *Scanner) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}
