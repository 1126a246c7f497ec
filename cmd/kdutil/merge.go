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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict/book"
	"github.com/ianlewis/go-kindledict/merge"
	"github.com/ianlewis/go-kindledict/tool"
)

var mergeCommand = &cli.Command{
	Name:    "merge",
	Aliases: []string{"build"},
	Usage:   "Merge GCIDE with a book's characters and build the Kindle dictionary",
	Description: fmt.Sprintf(`Merge the base dictionary with the character list in ROOT/BOOK, then run
%s and %s to produce ROOT/BOOK/<output>.mobi.

kindlegen is found from --kindlegen, then $%s, then the PATH.`,
		tool.ConverterName, tool.PackagerName, tool.PackagerEnv),
	ArgsUsage:    "BOOK",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "base",
			Usage: "base dictionary `FILE` (default: ROOT/" + filepath.ToSlash(gcideOutput) + ")",
		},
		booksFlag,
		&cli.StringFlag{
			Name:  "tag",
			Usage: "`TEXT` prefixed to character descriptions",
			Value: merge.CharacterTag,
		},
		&cli.StringFlag{
			Name:  "converter",
			Usage: "tab-to-OPF converter `COMMAND`, e.g. \"python3 tab2opf.py\"",
			Value: tool.ConverterName,
		},
		&cli.StringFlag{
			Name:  "kindlegen",
			Usage: "kindlegen executable `PATH`",
		},
		&cli.BoolFlag{
			Name:  "allow-warnings",
			Usage: "accept kindlegen exit status 1 when the .mobi was built",
		},
		&cli.BoolFlag{
			Name:  "skip-package",
			Usage: "stop after the converter and do not run kindlegen",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: merge: expected a single BOOK argument", ErrFlagParse)
		}

		root := rootDir(c)
		registry, err := loadRegistry(c)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		b, err := registry.Lookup(c.Args().First())
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		base := c.String("base")
		if base == "" {
			base = filepath.Join(root, gcideOutput)
		}

		p := &book.Pipeline{
			Root: root,
			Base: base,
			Tag:  c.String("tag"),
			Logf: func(format string, args ...any) {
				printStep(c.App.Writer, format, args...)
			},
		}

		// Missing inputs are reported before missing tools. The tools are then
		// resolved before any output is written.
		if _, err := p.Check(b); err != nil {
			return fmt.Errorf("merge %s: %w", b.Name, err)
		}
		converter, err := newConverter(c)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		p.Converter = converter
		if !c.Bool("skip-package") {
			packager, err := newPackager(c)
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			p.Packager = packager
		}

		result, err := p.Build(c.Context, b)
		if err != nil {
			return fmt.Errorf("merge %s: %w", b.Name, err)
		}

		printSuccess(c.App.Writer, "Done. Output: %s", strings.Join(result.Outputs, ", "))
		return nil
	},
}

func newConverter(c *cli.Context) (*tool.Command, error) {
	fields := strings.Fields(c.String("converter"))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: --converter: empty command", ErrFlagParse)
	}

	r := &tool.Resolver{
		Explicit: fields[0],
		Name:     tool.ConverterName,
	}
	path, err := r.Resolve()
	if err != nil {
		return nil, &tool.Error{Tool: tool.ConverterName, ExitCode: -1, Err: err}
	}

	// The converter runs in the book folder so relative script paths must be
	// made absolute.
	args := fields[1:]
	for i, a := range args {
		if _, err := os.Stat(a); err == nil {
			if abs, err := filepath.Abs(a); err == nil {
				args[i] = abs
			}
		}
	}

	return tool.NewConverter(path, args, c.App.Writer, c.App.ErrWriter), nil
}

func newPackager(c *cli.Context) (*tool.Packager, error) {
	r := &tool.Resolver{
		Explicit:  c.String("kindlegen"),
		EnvVar:    tool.PackagerEnv,
		Name:      tool.PackagerName,
		Fallbacks: tool.PackagerLocations(),
	}
	path, err := r.Resolve()
	if err != nil {
		return nil, &tool.Error{Tool: tool.PackagerName, ExitCode: -1, Err: err}
	}

	p := tool.NewPackager(path, c.App.Writer, c.App.ErrWriter)
	p.AllowWarnings = c.Bool("allow-warnings")
	return p, nil
}
