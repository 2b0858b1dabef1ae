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

// Package folding implements folding of dictionary lookup keys.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace is a [transform.Transformer] that trims leading and trailing
// whitespace and replaces each internal run of whitespace with a single ASCII
// space. Words typed on a command line or stored in a dump fold to the same
// key regardless of how they were spaced.
type Whitespace struct {
	// started is true once a non-whitespace rune has been written.
	started bool

	// pending is true while inside an internal whitespace run.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			// Runs are emitted lazily so trailing whitespace is dropped.
			w.pending = w.started
			nSrc += size
			continue
		}

		// NOTE: c may be utf8.RuneError for invalid input, which encodes to
		// three bytes regardless of size.
		need := utf8.RuneLen(c)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		w.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}

// Key folds a lookup key.
func Key(word string) string {
	// Whitespace never returns an error for string input.
	key, _, err := transform.String(&Whitespace{}, word)
	if err != nil {
		return word
	}
	return key
}
