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
	"fmt"
	"runtime"
	"strings"

	"github.com/ianlewis/go-define/style"
)

const (
	argSeparator = "|"

	// langKey prefixes the language argument. It is metadata and never a
	// positional argument.
	langKey = "lang="
)

var macroSpan = &span{open: "{{", close: "}}", min: 1}

// Invocation is a parsed macro invocation.
type Invocation struct {
	Name string
	Args Args
}

// ParseInvocation parses the body of a macro, the text between "{{" and "}}".
// Language arguments are removed before the name and positional arguments
// are assigned. It returns false if nothing remains.
func ParseInvocation(body string) (*Invocation, bool) {
	var fields []string
	for _, f := range strings.Split(body, argSeparator) {
		if strings.HasPrefix(f, langKey) {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, false
	}
	inv := &Invocation{
		Name: strings.TrimSpace(fields[0]),
	}
	if len(fields) > 1 {
		inv.Args = fields[1:]
	}
	return inv, true
}

// ExpandOptions are options for an Expander.
type ExpandOptions struct {
	// Handlers is the handler table. A nil table uses the full set of
	// built-in handlers.
	Handlers Table

	// FallbackName includes the macro name in the generic fallback.
	FallbackName bool

	// OnFallback, if not nil, is called with the handler error when a
	// handler fails and the macro is rendered with the generic fallback. It
	// may be called concurrently.
	OnFallback func(inv *Invocation, err error)
}

// Expander expands macros.
type Expander struct {
	handlers     Table
	fallbackName bool
	onFallback   func(*Invocation, error)
	sheet        *style.Sheet
}

// NewExpander returns a new Expander. The handler table must not be modified
// after it is passed to NewExpander.
func NewExpander(opts *ExpandOptions, sheet *style.Sheet) (*Expander, error) {
	if opts == nil {
		opts = &ExpandOptions{}
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	handlers := opts.Handlers
	if handlers == nil {
		handlers = Handlers(FullHandlers)
	}
	return &Expander{
		handlers:     handlers,
		fallbackName: opts.FallbackName,
		onFallback:   opts.OnFallback,
		sheet:        sheet,
	}, nil
}

// Expand replaces every macro in s with its rendered form using the macro
// note style.
func (e *Expander) Expand(s string) string {
	return macroSpan.rewrite(s, func(body string) (string, bool) {
		return e.sheet.Wrap(style.MacroNote, e.Render(body)), true
	})
}

// Render renders a single macro body without styling.
func (e *Expander) Render(body string) string {
	inv, ok := ParseInvocation(body)
	if !ok {
		return "()"
	}
	if h, ok := e.handlers[inv.Name]; ok {
		out, err := invoke(h, inv.Args, e.sheet)
		if err == nil {
			return out
		}
		if e.onFallback != nil {
			e.onFallback(inv, err)
		}
	}
	return e.fallback(inv)
}

// Strip replaces every macro in s with its name followed by its arguments in
// parentheses. Handlers are not used.
func (e *Expander) Strip(s string) string {
	return macroSpan.rewrite(s, func(body string) (string, bool) {
		inv, ok := ParseInvocation(body)
		if !ok {
			return "", true
		}
		args := kept(inv.Args)
		if len(args) == 0 {
			return inv.Name, true
		}
		return inv.Name + " (" + strings.Join(args, ", ") + ")", true
	})
}

func (e *Expander) fallback(inv *Invocation) string {
	fields := inv.Args
	if e.fallbackName {
		fields = append(Args{inv.Name}, inv.Args...)
	}
	return "(" + strings.Join(kept(fields), ", ") + ")"
}

// invoke calls the handler. A handler that indexes past the end of its
// arguments is reported as ErrArity.
func invoke(h Handler, args Args, sheet *style.Sheet) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			out, err = "", fmt.Errorf("%w: %v", ErrArity, re)
		}
	}()
	return h.Expand(args, sheet)
}

// kept returns the arguments that are not empty or placeholders.
func kept(args Args) []string {
	var k []string
	for _, a := range args {
		if isPlaceholder(a) {
			continue
		}
		k = append(k, a)
	}
	return k
}

func isPlaceholder(a string) bool {
	switch a {
	case "", "_", ",", ",_":
		return true
	}
	return false
}
