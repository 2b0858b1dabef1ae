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
	"maps"
	"strings"

	"github.com/ianlewis/go-define/style"
)

var (
	// ErrArity indicates that a macro was given too few arguments for its
	// handler.
	ErrArity = errors.New("too few arguments")

	// ErrUnknownCode indicates an inflection code that cannot be decoded.
	ErrUnknownCode = errors.New("unknown inflection code")

	// ErrUnknownHandlerSet indicates an unrecognized handler set name.
	ErrUnknownHandlerSet = errors.New("unknown handler set")
)

// Args are the positional arguments of a macro invocation, not including the
// macro name.
type Args []string

// Require returns ErrArity if there are fewer than n arguments.
func (a Args) Require(n int) error {
	if len(a) < n {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, n, len(a))
	}
	return nil
}

// Handler renders a macro invocation. The returned string replaces the macro
// verbatim. Handlers that return an error are rendered with the generic
// fallback instead.
type Handler interface {
	Expand(args Args, sheet *style.Sheet) (string, error)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(args Args, sheet *style.Sheet) (string, error)

// Expand implements [Handler.Expand].
func (f HandlerFunc) Expand(args Args, sheet *style.Sheet) (string, error) {
	return f(args, sheet)
}

// Table maps macro names to handlers. Names without a handler use the
// generic fallback.
type Table map[string]Handler

// HandlerSet selects a built-in handler table.
type HandlerSet int

const (
	// FullHandlers includes every built-in handler.
	FullHandlers HandlerSet = iota

	// MinimalHandlers includes only handlers for structural macros and
	// leaves inflection macros to the generic fallback.
	MinimalHandlers

	// NoHandlers renders every macro with the generic fallback.
	NoHandlers
)

// String implements [fmt.Stringer.String].
func (h HandlerSet) String() string {
	switch h {
	case FullHandlers:
		return "full"
	case MinimalHandlers:
		return "minimal"
	case NoHandlers:
		return "none"
	default:
		return "unknown"
	}
}

// ParseHandlerSet parses a handler set name.
func ParseHandlerSet(s string) (HandlerSet, error) {
	switch strings.ToLower(s) {
	case "full", "":
		return FullHandlers, nil
	case "minimal":
		return MinimalHandlers, nil
	case "none":
		return NoHandlers, nil
	default:
		return FullHandlers, fmt.Errorf("%w: %q", ErrUnknownHandlerSet, s)
	}
}

// Handlers returns a new handler table for the handler set. The caller may
// add or replace entries.
func Handlers(set HandlerSet) Table {
	t := Table{}
	switch set {
	case FullHandlers:
		maps.Copy(t, structuralHandlers)
		maps.Copy(t, inflectionHandlers)
	case MinimalHandlers:
		maps.Copy(t, structuralHandlers)
	case NoHandlers:
	}
	return t
}

var structuralHandlers = Table{
	"defdate": HandlerFunc(func(a Args, _ *style.Sheet) (string, error) {
		if err := a.Require(1); err != nil {
			return "", err
		}
		return "[" + a[0] + "]", nil
	}),
	"ja-def": HandlerFunc(func(a Args, _ *style.Sheet) (string, error) {
		if err := a.Require(1); err != nil {
			return "", err
		}
		return a[0] + ":", nil
	}),
	"non-gloss definition": HandlerFunc(func(a Args, _ *style.Sheet) (string, error) {
		if err := a.Require(1); err != nil {
			return "", err
		}
		return a[0], nil
	}),
	"rfv-sense": HandlerFunc(func(Args, *style.Sheet) (string, error) {
		return "(citation needed)", nil
	}),
	"mathematics": Label("math"),
}

var inflectionHandlers = Table{
	"form of":        HandlerFunc(formOf),
	"conjugation of": HandlerFunc(conjugationOf),

	"nonstandard spelling of":  RegularOf("nonstandard spelling"),
	"past participle of":       RegularOf("past participle"),
	"pinyin reading of":        RegularOf("pinyin reading"),
	"plural of":                RegularOf("plural"),
	"third-person singular of": RegularOf("third-person singular"),
	"rafsi of":                 RegularOf("rafsi"),
}

// Label returns a handler for a domain label macro. The label and each
// argument are rendered in parentheses, e.g. "(math, algebra)".
func Label(label string) Handler {
	return HandlerFunc(func(a Args, _ *style.Sheet) (string, error) {
		var b strings.Builder
		b.WriteString("(")
		b.WriteString(label)
		for _, arg := range a {
			b.WriteString(", ")
			b.WriteString(arg)
		}
		b.WriteString(")")
		return b.String(), nil
	})
}

// RegularOf returns a handler for a macro that renders as "<label> of <word>".
func RegularOf(label string) Handler {
	return HandlerFunc(func(a Args, _ *style.Sheet) (string, error) {
		if err := a.Require(1); err != nil {
			return "", err
		}
		return label + " of " + a[0], nil
	})
}

// formOf renders {{form of|<form>|<lemma>}}.
func formOf(a Args, sheet *style.Sheet) (string, error) {
	if err := a.Require(2); err != nil {
		return "", err
	}
	return a[0] + " of " + sheet.WrapIn(style.MacroNote, style.CrossReference, a[1]), nil
}

// conjugationOf renders {{conjugation of|<lemma>||<person>|<number>|<tense>|<mood>}}.
func conjugationOf(a Args, sheet *style.Sheet) (string, error) {
	if err := a.Require(5); err != nil {
		return "", err
	}
	phrase, err := decodeConjugation(a[2:])
	if err != nil {
		return "", err
	}
	return phrase + " of " + sheet.WrapIn(style.MacroNote, style.CrossReference, a[0]), nil
}

var (
	persons = map[string]string{
		"1": "first",
		"2": "second",
		"3": "third",
	}
	numbers = map[string]string{
		"s": "singular",
		"p": "plural",
	}
	moods = map[string]string{
		"ind": "indicative",
		"sub": "subordinate",
	}
)

// decodeConjugation decodes a person, number, tense and optional mood code
// into an English phrase.
func decodeConjugation(code Args) (string, error) {
	if err := code.Require(3); err != nil {
		return "", err
	}
	person, ok := persons[code[0]]
	if !ok {
		return "", fmt.Errorf("%w: person %q", ErrUnknownCode, code[0])
	}
	number, ok := numbers[code[1]]
	if !ok {
		return "", fmt.Errorf("%w: number %q", ErrUnknownCode, code[1])
	}

	var tense string
	switch code[2] {
	case "pres":
		if err := code.Require(4); err != nil {
			return "", err
		}
		mood, ok := moods[code[3]]
		if !ok {
			return "", fmt.Errorf("%w: mood %q", ErrUnknownCode, code[3])
		}
		tense = "present " + mood
	case "imp":
		tense = "imperative"
	default:
		tense = code[2]
	}

	return person + " person " + number + " " + tense, nil
}
