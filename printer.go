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

package define

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-define/markup"
	"github.com/ianlewis/go-define/style"
)

// Printer prints lookup results.
type Printer struct {
	// Renderer renders definitions and role labels.
	Renderer *markup.Renderer

	// Sheet styles headings and role labels. Nil uses the renderer's sheet.
	Sheet *style.Sheet

	// Concurrency is the maximum number of definitions rendered at once. Zero
	// or less uses runtime.GOMAXPROCS.
	Concurrency int
}

type renderedGroup struct {
	language string
	lines    []string
}

// Print renders every definition in res and writes them to w. It returns an
// error wrapping style.ErrMissingStyle if the style sheet is incomplete.
func (p *Printer) Print(ctx context.Context, w io.Writer, res *Result) error {
	sheet := p.sheet()
	if err := sheet.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	if !res.Found() {
		fmt.Fprintf(bw, "'%s' was not found in any dictionary.\n\n", res.Word)
		return bw.Flush()
	}

	if len(res.Groups) > 0 {
		groups, err := p.render(ctx, res.Groups)
		if err != nil {
			return err
		}
		for _, g := range groups {
			writeGroup(bw, sheet.Wrap(style.LanguageHeading, g.language), g.lines)
		}
		if len(res.Others) > 0 {
			fmt.Fprintf(bw, "\"%s\" is also in: %s\n\n", res.Word, strings.Join(languages(res.Others), ", "))
		}
		return bw.Flush()
	}

	groups, err := p.render(ctx, res.Others)
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "'%s' was not found in: %s\n", res.Word, strings.Join(res.Languages, ", "))
	fmt.Fprintf(bw, "But we did find this:\n\n")
	for _, g := range groups {
		writeGroup(bw, sheet.Wrap(style.LanguageHeading, "### "+g.language+" ###"), g.lines)
	}
	return bw.Flush()
}

func (p *Printer) sheet() *style.Sheet {
	if p.Sheet != nil {
		return p.Sheet
	}
	return p.Renderer.Sheet()
}

// render renders the definitions of each group. Each line is the styled role
// label followed by the rendered definition.
func (p *Printer) render(ctx context.Context, groups []*Group) ([]renderedGroup, error) {
	sheet := p.sheet()
	out := make([]renderedGroup, len(groups))

	eg, ctx := errgroup.WithContext(ctx)
	limit := p.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(limit)

	for i, g := range groups {
		out[i] = renderedGroup{
			language: g.Language,
			lines:    make([]string, len(g.Definitions)),
		}
		for j, d := range g.Definitions {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				role := sheet.Wrap(style.RoleLabel, p.Renderer.RenderRole(d.Role)+": ")
				out[i].lines[j] = role + p.Renderer.Render(d.Text)
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	return out, nil
}

func writeGroup(w io.Writer, heading string, lines []string) {
	fmt.Fprintln(w, heading)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

func languages(groups []*Group) []string {
	l := make([]string, 0, len(groups))
	for _, g := range groups {
		l = append(l, g.Language)
	}
	return l
}
