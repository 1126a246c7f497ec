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

// Package tool runs the external programs that turn a tab-delimited dictionary
// into a Kindle dictionary: a tab-to-OPF converter and the kindlegen packager.
package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrTool is the parent error for all errors in this package.
	ErrTool = errors.New("tool")

	// ErrNotFound indicates that a tool's executable could not be found.
	ErrNotFound = fmt.Errorf("%w: not found", ErrTool)

	// ErrFailed indicates that a tool ran but did not succeed.
	ErrFailed = fmt.Errorf("%w: failed", ErrTool)
)

// ExternalTool is a build step implemented by an external program.
type ExternalTool interface {
	// Name returns a short name for the tool used in messages.
	Name() string

	// Run runs the tool on the file at inputPath and returns the paths of the
	// files it produced.
	Run(ctx context.Context, inputPath string) ([]string, error)
}

// Error is an error running an external tool.
type Error struct {
	// Tool is the tool name.
	Tool string

	// ExitCode is the exit status of the process, or -1 if it did not run to
	// completion.
	ExitCode int

	// Stderr is the diagnostic output captured from the process.
	Stderr string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Tool)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.ExitCode > 0 {
		fmt.Fprintf(&b, " (exit status %d)", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		b.WriteString("\n")
		b.WriteString(stderr)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Command is an ExternalTool that runs an executable with the input file name
// as its last argument. The process runs in the input file's directory.
type Command struct {
	// ToolName is the name returned by Name.
	ToolName string

	// Path is the executable path.
	Path string

	// Args are arguments passed before the input file name.
	Args []string

	// Outputs maps the input path to the paths the tool is expected to
	// produce. Existing outputs are removed before the process starts and
	// each output must exist after a successful run.
	Outputs func(inputPath string) []string

	// OK reports whether a non-zero exit status should be accepted. A nil OK
	// accepts only zero.
	OK func(exitCode int, outputs []string) bool

	// Stdout and Stderr receive the process output as it runs. Stderr is also
	// captured for error reporting. Either may be nil.
	Stdout io.Writer
	Stderr io.Writer
}

// Name implements ExternalTool.Name.
func (c *Command) Name() string {
	return c.ToolName
}

// Run implements ExternalTool.Run.
func (c *Command) Run(ctx context.Context, inputPath string) ([]string, error) {
	var outputs []string
	if c.Outputs != nil {
		outputs = c.Outputs(inputPath)
	}

	for _, out := range outputs {
		if err := removeIfExists(out); err != nil {
			return nil, &Error{Tool: c.ToolName, ExitCode: -1, Err: err}
		}
	}

	args := append(append([]string{}, c.Args...), filepath.Base(inputPath))
	//nolint:gosec // the executable is chosen by the user.
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Dir = filepath.Dir(inputPath)

	var stderr bytes.Buffer
	cmd.Stdout = c.Stdout
	cmd.Stderr = &stderr
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, c.Stderr)
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
			return nil, &Error{Tool: c.ToolName, ExitCode: -1, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		case errors.As(err, &exitErr) && exitErr.ExitCode() > 0:
			if c.OK == nil || !c.OK(exitErr.ExitCode(), outputs) {
				return nil, &Error{
					Tool:     c.ToolName,
					ExitCode: exitErr.ExitCode(),
					Stderr:   stderr.String(),
					Err:      ErrFailed,
				}
			}
		default:
			return nil, &Error{
				Tool:     c.ToolName,
				ExitCode: -1,
				Stderr:   stderr.String(),
				Err:      fmt.Errorf("%w: %w", ErrFailed, err),
			}
		}
	}

	for _, out := range outputs {
		if _, err := os.Stat(out); err != nil {
			return nil, &Error{
				Tool:     c.ToolName,
				ExitCode: 0,
				Stderr:   stderr.String(),
				Err:      fmt.Errorf("%w: output %q not created", ErrFailed, out),
			}
		}
	}

	return outputs, nil
}

// replaceExt replaces the extension of path with ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
