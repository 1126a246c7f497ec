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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict/book"
)

var booksFlag = &cli.StringFlag{
	Name:  "books",
	Usage: "book registry `FILE` (default: ROOT/" + book.RegistryFile + " if present)",
}

var booksCommand = &cli.Command{
	Name:  "books",
	Usage: "List books and their build status",
	Description: `List the registered books and any folder under ROOT holding a
<name>-characters.txt file.`,
	OnUsageError: usageError,
	Flags: []cli.Flag{
		booksFlag,
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: books: unexpected arguments", ErrFlagParse)
		}

		registry, err := loadRegistry(c)
		if err != nil {
			return fmt.Errorf("books: %w", err)
		}
		books, err := discoverBooks(rootDir(c), registry)
		if err != nil {
			return fmt.Errorf("books: %w", err)
		}

		tbl := table.New("Book", "Characters", "Output", "Status").
			WithHeaderFormatter(headerColor.SprintfFunc()).
			WithWriter(c.App.Writer)
		for _, b := range books {
			tbl.AddRow(b.Name, b.CharacterFile, b.OutputBasename+".mobi", bookStatus(b.Layout(rootDir(c))))
		}
		tbl.Print()
		return nil
	},
}

// loadRegistry returns the default books plus those in the registry file. The
// file is optional unless --books was given.
func loadRegistry(c *cli.Context) (*book.Registry, error) {
	registry := book.DefaultRegistry()
	path := c.String("books")
	if path == "" {
		path = filepath.Join(rootDir(c), book.RegistryFile)
	}
	if err := registry.LoadFile(path, !c.IsSet("books")); err != nil {
		return nil, err
	}
	return registry, nil
}

// discoverBooks returns the registered books and the unregistered folders
// under root that follow the naming convention, sorted by name.
func discoverBooks(root string, registry *book.Registry) ([]*book.Book, error) {
	books := registry.Books()

	dirents, err := os.ReadDir(root)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	for _, d := range dirents {
		if !d.IsDir() || slices.ContainsFunc(books, func(b *book.Book) bool { return b.Name == d.Name() }) {
			continue
		}
		b, err := registry.Lookup(d.Name())
		if err != nil {
			continue
		}
		if _, err := os.Stat(b.Layout(root).Characters); err == nil {
			books = append(books, b)
		}
	}

	slices.SortFunc(books, func(a, b *book.Book) int {
		return strings.Compare(a.Name, b.Name)
	})
	return books, nil
}

func bookStatus(l *book.Layout) string {
	if _, err := os.Stat(l.Characters); err != nil {
		return "missing characters"
	}
	if _, err := os.Stat(l.Mobi); err == nil {
		return "built"
	}
	if _, err := os.Stat(l.Union); err == nil {
		return "merged"
	}
	return "not built"
}
