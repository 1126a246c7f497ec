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

package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// ConverterName is the name of the tab-to-OPF converter.
	ConverterName = "tab2opf"

	// PackagerName is the name of the Kindle packager.
	PackagerName = "kindlegen"

	// PackagerEnv is the environment variable holding the packager path.
	PackagerEnv = "KINDLEGEN"
)

// exitWarnings is the kindlegen exit status for a build that completed with
// warnings.
const exitWarnings = 1

// NewConverter returns a tool that runs the tab-to-OPF converter at path. The
// converter reads "<name>.txt" and writes "<name>.opf" along with its HTML
// content files in the same directory. args are passed before the input file
// name, e.g. the script path when path is a Python interpreter.
func NewConverter(path string, args []string, stdout, stderr io.Writer) *Command {
	return &Command{
		ToolName: ConverterName,
		Path:     path,
		Args:     args,
		Outputs: func(inputPath string) []string {
			return []string{replaceExt(inputPath, ".opf")}
		},
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Packager runs kindlegen on an OPF file to produce a .mobi dictionary.
type Packager struct {
	Command

	// AllowWarnings accepts kindlegen's "built with warnings" exit status
	// when the .mobi file was produced.
	AllowWarnings bool
}

// NewPackager returns a Packager that runs the kindlegen executable at path.
func NewPackager(path string, stdout, stderr io.Writer) *Packager {
	return &Packager{
		Command: Command{
			ToolName: PackagerName,
			Path:     path,
			Outputs: func(inputPath string) []string {
				return []string{replaceExt(inputPath, ".mobi")}
			},
			Stdout: stdout,
			Stderr: stderr,
		},
	}
}

// Run implements ExternalTool.Run. Any existing .mobi file is removed before
// kindlegen runs and the .mobi file is removed again if the run fails, so a
// failed build never leaves an artifact behind.
func (p *Packager) Run(ctx context.Context, inputPath string) ([]string, error) {
	final := replaceExt(inputPath, ".mobi")

	cmd := p.Command
	if p.AllowWarnings {
		cmd.OK = func(exitCode int, outputs []string) bool {
			if exitCode != exitWarnings {
				return false
			}
			for _, out := range outputs {
				if _, err := os.Stat(out); err != nil {
					return false
				}
			}
			return true
		}
	}

	outputs, err := cmd.Run(ctx, inputPath)
	if err != nil {
		_ = removeIfExists(final)
		return nil, err
	}
	return outputs, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", path, err)
	}
	return nil
}
