// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/internal/folding"
	"github.com/ianlewis/go-kindledict/internal/index"
)

// keyedEntry is a dictionary entry indexed by its folded headword.
type keyedEntry struct {
	*kindledict.Entry
	key string
}

// Key implements [index.Keyed.Key].
func (e *keyedEntry) Key() string {
	return e.key
}

func newEntryIndex(entries []*kindledict.Entry) *index.Index[*keyedEntry] {
	keyed := make([]*keyedEntry, 0, len(entries))
	for _, e := range entries {
		keyed = append(keyed, &keyedEntry{
			Entry: e,
			key:   folding.String(folding.Key, e.Headword),
		})
	}
	return index.New(keyed)
}

var queryCommand = &cli.Command{
	Name:  "query",
	Usage: "Look up a word in a tab-delimited dictionary",
	Description: `Print the entries of FILE whose headword matches WORD. Matching ignores
case and character width.`,
	ArgsUsage:    "FILE WORD",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "prefix",
			Usage: "match headwords starting with WORD",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: query: expected FILE and WORD", ErrFlagParse)
		}
		path, word := c.Args().Get(0), c.Args().Get(1)

		entries, err := kindledict.ReadFile(path)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}

		idx := newEntryIndex(entries)
		key := folding.String(folding.Key, word)
		var found []*keyedEntry
		if c.Bool("prefix") {
			found = idx.Prefix(key)
		} else {
			found = idx.Search(key)
		}

		if len(found) == 0 {
			printWarning(c.App.ErrWriter, "%q not found in %s", word, path)
			return nil
		}

		tbl := table.New("Headword", "Definition").
			WithHeaderFormatter(headerColor.SprintfFunc()).
			WithWriter(c.App.Writer)
		for _, e := range found {
			// GCIDE definitions may carry inline markup.
			def := strings.TrimSpace(html2text.HTML2Text(e.Definition))
			tbl.AddRow(e.Headword, def)
		}
		tbl.Print()
		return nil
	},
}
