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
	"strings"
)

type scanState int

const (
	// statePlain is outside of any span.
	statePlain scanState = iota

	// stateSpan is just after an opening delimiter.
	stateSpan
)

// span describes a delimited span of markup such as a comment, a tag, a link
// or a macro.
type span struct {
	open  string
	close string

	// min is the minimum length of the span's contents.
	min int

	// multiline allows the span's contents to contain newlines.
	multiline bool
}

// rewrite scans s from start to end and replaces each span with the result of
// fn. A span ends at the nearest closing delimiter. When fn returns false, or
// no closing delimiter is found, the opening delimiter is not a span and
// scanning resumes at the following byte.
func (sp *span) rewrite(s string, fn func(inner string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(s))

	state := statePlain
	open := 0
	for i := 0; i < len(s) || state == stateSpan; {
		switch state {
		case statePlain:
			j := strings.Index(s[i:], sp.open)
			if j < 0 {
				b.WriteString(s[i:])
				i = len(s)
				break
			}
			b.WriteString(s[i : i+j])
			open = i + j
			i = open + len(sp.open)
			state = stateSpan

		case stateSpan:
			state = statePlain
			if repl, end, ok := sp.match(s, i, fn); ok {
				b.WriteString(repl)
				i = end
				break
			}
			// The delimiter's first byte is plain text. Delimiters are ASCII
			// so this never splits a rune.
			b.WriteByte(s[open])
			i = open + 1
		}
	}

	return b.String()
}

// match finds the closing delimiter for a span whose contents begin at i and
// returns the replacement and the index just past the closing delimiter.
func (sp *span) match(s string, i int, fn func(string) (string, bool)) (string, int, bool) {
	from := i + sp.min
	if from > len(s) {
		return "", 0, false
	}
	j := strings.Index(s[from:], sp.close)
	if j < 0 {
		return "", 0, false
	}
	end := from + j
	inner := s[i:end]
	if !sp.multiline && strings.Contains(inner, "\n") {
		return "", 0, false
	}
	repl, ok := fn(inner)
	if !ok {
		return "", 0, false
	}
	return repl, end + len(sp.close), true
}
