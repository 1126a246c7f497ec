// Copyright 2025 Ian Lewis
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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/book"
	"github.com/ianlewis/go-kindledict/gcide"
	"github.com/ianlewis/go-kindledict/merge"
	"github.com/ianlewis/go-kindledict/tool"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeInputError is the exit code for missing or malformed input.
	ExitCodeInputError

	// ExitCodeToolError is the exit code for a failed external tool.
	ExitCodeToolError
)

// ErrKdutil is a parent error for all command errors.
var ErrKdutil = errors.New("kdutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrKdutil)

// defaultRoot is the default dictionaries root.
const defaultRoot = "dictionaries"

var copyrightNames = []string{
	"2021 Google LLC",
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we handle --help ourselves.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode maps an error returned by the app to a process exit code.
func exitCode(err error) int {
	var toolErr *tool.Error
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.As(err, &toolErr), errors.Is(err, tool.ErrTool):
		return ExitCodeToolError
	case errors.Is(err, gcide.ErrGCIDE),
		errors.Is(err, kindledict.ErrKindledict),
		errors.Is(err, merge.ErrMerge),
		errors.Is(err, book.ErrBook),
		errors.Is(err, os.ErrNotExist):
		return ExitCodeInputError
	default:
		return ExitCodeUnknownError
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// rootDir returns the dictionaries root.
func rootDir(c *cli.Context) string {
	return c.String("root")
}

func newKdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build Kindle dictionaries from GCIDE and book character lists.",
		Description: strings.Join([]string{
			"Kindle dictionary utility written in Go.",
			"http://github.com/ianlewis/go-kindledict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "dictionaries root `DIR` holding gcide/ and the book folders",
				Aliases: []string{"r"},
				Value:   defaultRoot,
				EnvVars: []string{"KINDLEDICT_ROOT"},
			},
			&cli.BoolFlag{
				Name:               "no-color",
				Usage:              "disable colored output",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				disableColor()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			extractCommand,
			mergeCommand,
			booksCommand,
			queryCommand,
		},
	}
}
