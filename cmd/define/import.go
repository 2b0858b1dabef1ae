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
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-define/store"
)

// progressEvery is the number of records between progress messages.
const progressEvery = 100000

var importCommand = &cli.Command{
	Name:      "import",
	Usage:     "import a definition dump into the database",
	ArgsUsage: "DUMP",
	Description: "Replaces the contents of the database with the definitions in\n" +
		"the tab separated dump file DUMP. The dump may be compressed with\n" +
		"gzip (.gz), dictzip (.dz) or xz (.xz).",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "insert `N` definitions per transaction",
			Value: store.DefaultBatchSize,
		},
	},
	Action: importAction,
}

func importAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected a single dump file", ErrFlagParse)
	}
	cfg := getConfig(c)
	dump := c.Args().First()

	s, err := store.OpenDump(dump)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrDefine, err)
	}
	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Str("dump", dump).Str("database", cfg.Database).Msg("importing")
	n, err := db.Import(c.Context, s, &store.ImportOptions{
		BatchSize:     c.Int("batch-size"),
		ProgressEvery: progressEvery,
		Progress: func(n int) {
			log.Info().Int("records", n).Msg("definitions inserted")
		},
	})
	if err != nil {
		return err
	}
	if skipped := s.Skipped(); skipped > 0 {
		log.Warn().Int("lines", skipped).Msg("skipped malformed lines")
	}

	_, err = fmt.Fprintf(c.App.Writer, "Imported %d definitions into %s.\n", n, cfg.Database)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDefine, err)
	}
	return nil
}
