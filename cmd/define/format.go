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

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/ianlewis/go-define/style"
)

const (
	formatAuto = "auto"
	formatTerm = "term"
	formatHTML = "html"
	formatText = "text"
)

// detectFormat returns the output format for the file based on the
// environment and terminal capabilities.
func detectFormat(f *os.File) string {
	if termenv.EnvNoColor() {
		return formatText
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return formatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return formatText
	}

	return formatTerm
}

// styleSheet returns the style sheet for the configuration. A style sheet
// file takes precedence over the output format.
func styleSheet(cfg *config, out *os.File) (*style.Sheet, error) {
	if cfg.Styles != "" {
		f, err := os.Open(cfg.Styles)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		defer f.Close()

		s, err := style.Load(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfig, cfg.Styles, err)
		}
		return s, nil
	}

	format := strings.ToLower(cfg.Format)
	if format == formatAuto || format == "" {
		format = detectFormat(out)
	}
	s, err := style.ByFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return s, nil
}
