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

// Package markup renders wiki markup found in dictionary definitions as
// styled text.
//
// Rendering happens in three steps, each applied to the whole string:
//  1. A [Normalizer] strips the list marker and removes comments, reference
//     tags, subscript and superscript tags and link syntax.
//  2. An [Expander] replaces macros ("templates") such as
//     {{plural of|cat}} with the output of a named [Handler]. Macros without
//     a handler are rendered by joining their arguments in parentheses.
//  3. [Emphasize] replaces quote emphasis markers with style tokens.
//
// Malformed markup is never an error. Unterminated spans are left as they
// are and macros whose handler fails are rendered with the fallback.
//
// A [Renderer] combines the three steps. Renderers are immutable and safe for
// concurrent use.
package markup
