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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-define/store"
	"github.com/ianlewis/go-define/style"
)

var langsCommand = &cli.Command{
	Name:      "langs",
	Usage:     "list languages and their number of definitions",
	ArgsUsage: "[WORD...]",
	Action:    langsAction,
}

func langsAction(c *cli.Context) error {
	cfg := getConfig(c)

	sheet, err := styleSheet(cfg, os.Stdout)
	if err != nil {
		return err
	}

	db, err := store.OpenReadOnly(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	counts, err := db.Languages(c.Context, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	tbl := table.New("Language", "Definitions").
		WithWriter(c.App.Writer).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return sheet.Wrap(style.Bold, fmt.Sprintf(format, vals...))
		})
	for _, lc := range counts {
		tbl.AddRow(lc.Language, lc.Count)
	}
	tbl.Print()

	return nil
}
