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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-define"
	"github.com/ianlewis/go-define/markup"
	"github.com/ianlewis/go-define/store"
)

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "dump",
			Usage: "read definitions directly from the dump file at `PATH`",
		},
		&cli.BoolFlag{
			Name:               "all",
			Usage:              "print definitions in every language",
			Aliases:            []string{"a"},
			DisableDefaultText: true,
		},
		&cli.StringSliceFlag{
			Name:    "lang",
			Usage:   "print definitions in `LANG` in the given order",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output `FORMAT` (auto, term, html, text)",
		},
		&cli.BoolFlag{
			Name:               "html",
			Usage:              "print HTML output; same as --format=html",
			Aliases:            []string{"H"},
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "styles",
			Usage: "read the style sheet from the YAML file at `PATH`",
		},
		&cli.StringFlag{
			Name:  "comments",
			Usage: "comment `POLICY` (remove, annotate)",
		},
		&cli.StringFlag{
			Name:  "handlers",
			Usage: "template handler `SET` (full, minimal, none)",
		},
		&cli.BoolFlag{
			Name:               "no-templates",
			Usage:              "do not fix wiki templates in definitions",
			Aliases:            []string{"r"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "raw",
			Usage:              "do not format definitions at all",
			Aliases:            []string{"R"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:  "strip-html",
			Usage: "remove HTML tags from definitions",
			Value: true,
		},
	}
}

// newRenderer returns a definition renderer for the configuration.
func newRenderer(c *cli.Context, cfg *config) (*markup.Renderer, error) {
	sheet, err := styleSheet(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	comments, err := markup.ParseCommentPolicy(cfg.Comments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	set, err := markup.ParseHandlerSet(cfg.Handlers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	log.Debug().
		Str("styles", sheet.Name).
		Stringer("comments", comments).
		Stringer("handlers", set).
		Msg("renderer")

	r, err := markup.New(&markup.Options{
		Normalize: &markup.NormalizeOptions{
			Comments:    comments,
			Superscript: true,
			StripHTML:   cfg.StripHTML,
		},
		Expand: &markup.ExpandOptions{
			Handlers:   markup.Handlers(set),
			OnFallback: logFallback,
		},
		Sheet: sheet,
		Raw:   c.Bool("raw"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return r, nil
}

// logFallback logs a template whose handler failed.
func logFallback(inv *markup.Invocation, err error) {
	log.Debug().Err(err).Str("template", inv.Name).Strs("args", inv.Args).Msg("template fallback")
}

// openFetcher opens the dump given by --dump or the configured database.
// The returned function releases the fetcher.
func openFetcher(c *cli.Context, cfg *config) (define.Fetcher, func(), error) {
	if path := c.String("dump"); path != "" {
		s, err := store.OpenDump(path)
		if err != nil {
			return nil, nil, err
		}
		defer s.Close()

		m, err := store.LoadMemory(s)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("dump", path).Int("records", m.Len()).Int("skipped", s.Skipped()).Msg("dump loaded")
		return m, func() {}, nil
	}

	db, err := store.OpenReadOnly(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("database", cfg.Database).Msg("database opened")
	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Str("database", cfg.Database).Msg("closing database")
		}
	}, nil
}

func lookupAction(c *cli.Context) error {
	cfg := getConfig(c)

	r, err := newRenderer(c, cfg)
	if err != nil {
		return err
	}

	f, release, err := openFetcher(c, cfg)
	if err != nil {
		return err
	}
	defer release()

	word := strings.Join(c.Args().Slice(), " ")
	res, err := define.Lookup(c.Context, f, word, &define.Options{
		Languages: cfg.Languages,
	})
	if err != nil {
		return err
	}
	log.Debug().
		Str("word", word).
		Int("languages", len(res.Groups)).
		Int("others", len(res.Others)).
		Msg("lookup")

	p := &define.Printer{Renderer: r}
	if err := p.Print(c.Context, c.App.Writer, res); err != nil {
		return fmt.Errorf("%w: %w", ErrDefine, err)
	}
	return nil
}
