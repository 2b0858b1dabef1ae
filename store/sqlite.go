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
	"database/sql"
	"errors"
	"fmt"

	// Registers the pure Go "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/ianlewis/go-define"
	"github.com/ianlewis/go-define/internal/folding"
)

const driverName = "sqlite"

const (
	dropTable   = `DROP TABLE IF EXISTS words`
	createTable = `CREATE TABLE words (id INTEGER, lang TEXT, word TEXT, role TEXT, defn TEXT)`
	createIndex = `CREATE INDEX word_index ON words (word)`
	insertWord  = `INSERT INTO words (id, lang, word, role, defn) VALUES (?, ?, ?, ?, ?)`
	selectWord  = `SELECT lang, word, role, defn FROM words WHERE word = ? ORDER BY id`
	countAll    = `SELECT lang, COUNT(*) FROM words GROUP BY lang ORDER BY lang`
	countWord   = `SELECT lang, COUNT(*) FROM words WHERE word = ? GROUP BY lang ORDER BY lang`
	hasTable    = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'words'`
)

// DefaultBatchSize is the default number of records inserted per transaction.
const DefaultBatchSize = 10000

// SQLite is a store backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path.
func Open(path string) (*SQLite, error) {
	return open(path)
}

// OpenReadOnly opens the existing SQLite database at path for reading.
func OpenReadOnly(path string) (*SQLite, error) {
	return open("file:" + path + "?mode=ro")
}

func open(dsn string) (*SQLite, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrStore, dsn, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: opening %q: %w", ErrStore, dsn, err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// Fetch implements [define.Fetcher.Fetch]. Records are returned in import
// order.
func (s *SQLite) Fetch(ctx context.Context, word string) ([]define.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectWord, folding.Key(word))
	if err != nil {
		return nil, s.queryErr(ctx, err)
	}
	defer rows.Close()

	var records []define.Record
	for rows.Next() {
		var r define.Record
		if err := rows.Scan(&r.Language, &r.Word, &r.Role, &r.Text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return records, nil
}

// LanguageCount is the number of definitions in a language.
type LanguageCount struct {
	Language string
	Count    int
}

// Languages returns the number of definitions of word per language in
// lexicographic language order. An empty word counts the whole database.
func (s *SQLite) Languages(ctx context.Context, word string) ([]LanguageCount, error) {
	var rows *sql.Rows
	var err error
	if word == "" {
		rows, err = s.db.QueryContext(ctx, countAll)
	} else {
		rows, err = s.db.QueryContext(ctx, countWord, folding.Key(word))
	}
	if err != nil {
		return nil, s.queryErr(ctx, err)
	}
	defer rows.Close()

	var counts []LanguageCount
	for rows.Next() {
		var c LanguageCount
		if err := rows.Scan(&c.Language, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return counts, nil
}

// ImportOptions are options for Import.
type ImportOptions struct {
	// BatchSize is the number of records inserted per transaction. Zero uses
	// DefaultBatchSize.
	BatchSize int

	// ProgressEvery is the number of records between calls to Progress.
	// Zero uses BatchSize.
	ProgressEvery int

	// Progress is called with the number of records imported so far.
	Progress func(n int)
}

// Import replaces the contents of the database with the records read from
// scanner and returns the number of records imported. The word index is
// created after every record is inserted.
func (s *SQLite) Import(ctx context.Context, scanner *Scanner, opts *ImportOptions) (int, error) {
	if opts == nil {
		opts = &ImportOptions{}
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	every := opts.ProgressEvery
	if every <= 0 {
		every = batchSize
	}

	for _, stmt := range []string{dropTable, createTable} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrStore, err)
		}
	}

	n := 0
	more := true
	for more {
		var err error
		var inserted int
		inserted, more, err = s.insertBatch(ctx, scanner, batchSize, func() {
			n++
			if opts.Progress != nil && n%every == 0 {
				opts.Progress(n)
			}
		})
		if err != nil {
			return n - inserted, err
		}
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}

	if _, err := s.db.ExecContext(ctx, createIndex); err != nil {
		return n, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return n, nil
}

// insertBatch inserts up to size records in a single transaction. It returns
// false when the scanner is exhausted.
func (s *SQLite) insertBatch(ctx context.Context, scanner *Scanner, size int, done func()) (n int, more bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertWord)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer stmt.Close()

	more = true
	for n < size {
		if !scanner.Scan() {
			more = false
			break
		}
		r := scanner.Record()
		if _, err = stmt.ExecContext(ctx, scanner.ID(), r.Language, folding.Key(r.Word), r.Role, r.Text); err != nil {
			return n, false, fmt.Errorf("%w: record %d: %w", ErrStore, scanner.ID(), err)
		}
		n++
		done()
	}

	if err = tx.Commit(); err != nil {
		return n, false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return n, more, nil
}

// queryErr reports ErrNotImported if the words table does not exist.
func (s *SQLite) queryErr(ctx context.Context, err error) error {
	var count int
	if qErr := s.db.QueryRowContext(ctx, hasTable).Scan(&count); qErr == nil && count == 0 {
		return fmt.Errorf("%w: %w", ErrStore, ErrNotImported)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
