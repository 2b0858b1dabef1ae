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
	"errors"
	"fmt"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-define/style"
)

// ErrUnknownCommentPolicy indicates an unrecognized comment policy name.
var ErrUnknownCommentPolicy = errors.New("unknown comment policy")

// listMarkers are the characters that start a definition list item.
const listMarkers = "#*:"

// Comment annotations are written as private use runes while the rest of the
// string is normalized and are replaced with style tokens at the end. This
// keeps the tokens away from the HTML stripping step.
const (
	commentStart = "\ue000"
	commentEnd   = "\ue001"
)

var (
	commentSpan = &span{open: "<!--", close: "-->", multiline: true}
	refSpan     = &span{open: "<ref>", close: "</ref>", multiline: true}
	subSpan     = &span{open: "<sub>", close: "</sub>", multiline: true}
	supSpan     = &span{open: "<sup>", close: "</sup>", multiline: true}
	linkSpan    = &span{open: "[[", close: "]]", min: 1}
	tagSpan     = &span{open: "<", close: ">", min: 1}
)

// CommentPolicy determines how markup comments are rendered.
type CommentPolicy int

const (
	// CommentsRemove removes comments and their contents.
	CommentsRemove CommentPolicy = iota

	// CommentsAnnotate renders comment contents in parentheses using the
	// comment style.
	CommentsAnnotate
)

// String implements [fmt.Stringer.String].
func (p CommentPolicy) String() string {
	switch p {
	case CommentsRemove:
		return "remove"
	case CommentsAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// ParseCommentPolicy parses a comment policy name.
func ParseCommentPolicy(s string) (CommentPolicy, error) {
	switch strings.ToLower(s) {
	case "remove", "":
		return CommentsRemove, nil
	case "annotate":
		return CommentsAnnotate, nil
	default:
		return CommentsRemove, fmt.Errorf("%w: %q", ErrUnknownCommentPolicy, s)
	}
}

// NormalizeOptions are options for a Normalizer.
type NormalizeOptions struct {
	// Comments is the comment policy.
	Comments CommentPolicy

	// Superscript unwraps <sup> tags.
	Superscript bool

	// StripHTML removes remaining well-formed HTML tags and decodes HTML
	// entities. A "<" that does not start a tag is kept.
	StripHTML bool
}

// DefaultNormalizeOptions are the default options for a Normalizer.
var DefaultNormalizeOptions = &NormalizeOptions{
	Comments:    CommentsRemove,
	Superscript: true,
}

// Normalizer removes structural markup from definitions. It leaves emphasis
// markers and macros in place.
type Normalizer struct {
	opts     NormalizeOptions
	comments *strings.Replacer
}

// NewNormalizer returns a new Normalizer. The sheet supplies the tokens used
// for annotated comments.
func NewNormalizer(opts *NormalizeOptions, sheet *style.Sheet) (*Normalizer, error) {
	if opts == nil {
		opts = DefaultNormalizeOptions
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{
		opts: *opts,
		comments: strings.NewReplacer(
			commentStart, sheet.Start(style.Comment),
			commentEnd, sheet.End(style.Comment),
		),
	}, nil
}

// Normalize strips the leading list marker from a definition and rewrites
// comments, tags and links. Each rewrite applies to the result of the
// previous one.
func (n *Normalizer) Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, listMarkers)
	s = strings.TrimSpace(s)

	s = commentSpan.rewrite(s, n.comment)
	s = refSpan.rewrite(s, drop)
	s = subSpan.rewrite(s, unwrap)
	if n.opts.Superscript {
		s = supSpan.rewrite(s, unwrap)
	}
	if n.opts.StripHTML && strings.ContainsAny(s, "<&") {
		s = stripHTML(s)
	}
	s = linkSpan.rewrite(s, pipedLink)
	s = linkSpan.rewrite(s, bareLink)

	if n.opts.Comments == CommentsAnnotate {
		return n.comments.Replace(s)
	}
	return s
}

func (n *Normalizer) comment(inner string) (string, bool) {
	if n.opts.Comments == CommentsAnnotate {
		return commentStart + " (" + inner + ")" + commentEnd, true
	}
	return "", true
}

func drop(string) (string, bool) {
	return "", true
}

func unwrap(inner string) (string, bool) {
	return inner, true
}

// stripHTML removes tags and decodes entities until neither changes the
// string, so entities that decode to tags or to other entities are stripped
// in a single pass. Every change shortens the string.
func stripHTML(s string) string {
	for {
		next := html2text.HTMLEntitiesToText(tagSpan.rewrite(s, dropTag))
		if next == s {
			return s
		}
		s = next
	}
}

// dropTag removes a tag such as <small>, </span> or <br/>. The tag name must
// follow the "<" directly.
func dropTag(inner string) (string, bool) {
	c := inner[0]
	isName := 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '/'
	if !isName || strings.Contains(inner, "<") {
		return "", false
	}
	return "", true
}

// pipedLink rewrites [[target|text]] as text. The target is the shortest
// non-empty prefix followed by a pipe and a non-empty text.
func pipedLink(inner string) (string, bool) {
	if strings.ContainsAny(inner, "[]") {
		return "", false
	}
	for i := 1; i < len(inner)-1; i++ {
		if inner[i] == '|' {
			return inner[i+1:], true
		}
	}
	return "", false
}

// bareLink rewrites [[target]] as target.
func bareLink(inner string) (string, bool) {
	if strings.ContainsAny(inner, "[]") {
		return "", false
	}
	return inner, true
}
