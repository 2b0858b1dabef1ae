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

	"github.com/ianlewis/go-define/style"
)

// emphases are the quote markers, longest first so that five quotes are
// never read as three followed by two.
var emphases = []struct {
	span  *span
	style style.Name
}{
	{&span{open: "'''''", close: "'''''", min: 1}, style.BoldItalic},
	{&span{open: "'''", close: "'''", min: 1}, style.Bold},
	{&span{open: "''", close: "''", min: 1}, style.Italic},
}

// Emphasize replaces quote emphasis markers with style tokens.
func Emphasize(s string, sheet *style.Sheet) string {
	for _, em := range emphases {
		if !strings.Contains(s, em.span.open) {
			continue
		}
		s = em.span.rewrite(s, func(inner string) (string, bool) {
			return sheet.Wrap(em.style, inner), true
		})
	}
	return s
}
