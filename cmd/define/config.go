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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// configRelPath is the config file path relative to the XDG config
// directories.
const configRelPath = "define/config.toml"

const configKey = "config"

// defaultLanguages are the languages printed by default, in order.
var defaultLanguages = []string{
	"French",
	"Lojban",
	"Translingual",
	"Mandarin",
	"Japanese",
	"English",
}

// config is the command configuration. Flags override values read from the
// config file.
type config struct {
	// Database is the path to the definition database.
	Database string `toml:"database"`

	// Languages is the language allow-list. Empty allows every language.
	Languages []string `toml:"languages"`

	// Format is the output format: auto, term, html or text.
	Format string `toml:"format"`

	// Comments is the comment policy: remove or annotate.
	Comments string `toml:"comments"`

	// Handlers is the macro handler set: full, minimal or none.
	Handlers string `toml:"handlers"`

	// StripHTML removes HTML tags left in definitions.
	StripHTML bool `toml:"strip_html"`

	// Styles is the path to a YAML style sheet. It overrides Format.
	Styles string `toml:"styles"`

	// LogLevel is the zerolog log level.
	LogLevel string `toml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Database:  defaultDatabase(),
		Languages: slices.Clone(defaultLanguages),
		Format:    "auto",
		Comments:  "remove",
		Handlers:  "full",
		StripHTML: true,
		LogLevel:  "warn",
	}
}

// readConfig reads the config file at path over the defaults.
func readConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	return cfg, nil
}

// configPath returns the config file given on the command line or the first
// config file found in the XDG config directories. It returns an empty path
// if there is no config file.
func configPath(c *cli.Context) string {
	if p := c.String("config"); p != "" {
		return p
	}
	p, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return ""
	}
	return p
}

// setup reads the configuration, applies flag overrides and configures
// logging.
func setup(c *cli.Context) error {
	path := configPath(c)
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}

	if c.IsSet("db") {
		cfg.Database = c.String("db")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("lang") {
		cfg.Languages = c.StringSlice("lang")
	}
	if c.Bool("all") {
		cfg.Languages = nil
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.Bool("html") {
		cfg.Format = "html"
	}
	if c.IsSet("comments") {
		cfg.Comments = c.String("comments")
	}
	if c.IsSet("handlers") {
		cfg.Handlers = c.String("handlers")
	}
	if c.Bool("no-templates") {
		cfg.Handlers = "none"
	}
	if c.IsSet("strip-html") {
		cfg.StripHTML = c.Bool("strip-html")
	}
	if c.IsSet("styles") {
		cfg.Styles = c.String("styles")
	}

	if err := setupLogger(cfg.LogLevel); err != nil {
		return err
	}
	log.Debug().Str("path", path).Str("database", cfg.Database).Msg("configuration loaded")

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

// getConfig returns the configuration loaded by setup.
func getConfig(c *cli.Context) *config {
	cfg, ok := c.App.Metadata[configKey].(*config)
	if !ok {
		return defaultConfig()
	}
	return cfg
}

// firstExisting returns the first path that exists or the empty string.
func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil || !errors.Is(err, fs.ErrNotExist) {
			return p
		}
	}
	return ""
}

// defaultDatabase returns the first existing database in the default
// locations, or the first location if none exists.
func defaultDatabase() string {
	locs := databaseLocations()
	if p := firstExisting(locs); p != "" {
		return p
	}
	return locs[0]
}
