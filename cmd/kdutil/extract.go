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
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict/gcide"
)

// gcideSourceDir is the GCIDE XML directory relative to the dictionaries root.
var gcideSourceDir = filepath.Join("gcide_xml-0.53", "gcide_xml-0.53")

// gcideOutput is the extracted dictionary relative to the dictionaries root.
var gcideOutput = filepath.Join("gcide", "gcide.txt")

var extractCommand = &cli.Command{
	Name:  "extract",
	Usage: "Extract GCIDE XML into a tab-delimited dictionary",
	Description: fmt.Sprintf(`Extract every entry of the GCIDE XML letter files in SRC_DIR into OUTPUT.

SRC_DIR defaults to ROOT/%s and OUTPUT defaults to ROOT/%s.
Entries without a definition are skipped. OUTPUT is replaced only when every
source file parses.`, gcideSourceDir, gcideOutput),
	ArgsUsage:    "[SRC_DIR] [OUTPUT]",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "glob `PATTERN` matching the source file names",
			Value: gcide.DefaultPattern,
		},
		&cli.BoolFlag{
			Name:  "lenient",
			Usage: "tolerate unknown entities and unclosed elements",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() > 2 {
			return fmt.Errorf("%w: extract: too many arguments", ErrFlagParse)
		}

		src := filepath.Join(rootDir(c), gcideSourceDir)
		if c.NArg() > 0 {
			src = c.Args().Get(0)
		}
		out := filepath.Join(rootDir(c), gcideOutput)
		if c.NArg() > 1 {
			out = c.Args().Get(1)
		}

		printStep(c.App.Writer, "Extracting %s", src)
		stats, err := gcide.Extract(c.Context, &gcide.Options{
			SourceDir: src,
			Output:    out,
			Pattern:   c.String("pattern"),
			Lenient:   c.Bool("lenient"),
		})
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		for _, f := range stats.Files {
			_, _ = fmt.Fprintf(c.App.Writer, "  %s: %d entries", filepath.Base(f.Path), f.Entries)
			if f.Skipped > 0 {
				_, _ = fmt.Fprintf(c.App.Writer, " (%d without definition skipped)", f.Skipped)
			}
			_, _ = fmt.Fprintln(c.App.Writer)
		}
		printSuccess(c.App.Writer, "Wrote %d entries to %s", stats.Entries(), out)
		return nil
	},
}
