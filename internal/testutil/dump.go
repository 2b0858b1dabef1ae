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

// Package testutil implements test helpers for dictionary dumps and
// databases.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"
)

// Dump returns the tab separated dump text for the given rows. Each row is
// joined with tabs and terminated by a newline.
func Dump(rows ...[]string) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDump writes the dump text to a new file called name in a temporary
// directory and returns its path. The file is compressed according to its
// extension: ".gz" with gzip, ".dz" with dictzip and ".xz" with xz.
func WriteDump(t *testing.T, name, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	var w io.WriteCloser
	switch filepath.Ext(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".dz":
		w, err = dictzip.NewWriter(f)
	case ".xz":
		w, err = xz.NewWriter(f)
	default:
		w = nopCloser{f}
	}
	if err != nil {
		t.Fatal(err)
	}

	if _, err := io.WriteString(w, text); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

// TempDB returns the path of a database file in a new temporary directory.
// The file is not created.
func TempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "words.db")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
