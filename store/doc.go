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

// Package store implements storage backends for dictionary records.
//
// Records are read from tab separated dump files with a [Scanner] and served
// from either a [SQLite] database built by [SQLite.Import] or an in-memory
// [Memory] index. Both implement [define.Fetcher]. Words are folded with
// internal/folding before they are stored or looked up.
package store

import (
	"errors"
)

var (
	// ErrStore is the parent error for store errors.
	ErrStore = errors.New("store")

	// ErrNotImported indicates that the database does not contain any
	// imported records.
	ErrNotImported = errors.New("database has not been imported")
)
