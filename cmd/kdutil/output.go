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
	"io"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgGreen, color.Underline)
)

func disableColor() {
	color.NoColor = true
}

// printStep prints a progress line.
func printStep(w io.Writer, format string, args ...any) {
	_, _ = stepColor.Fprintf(w, format, args...)
	_, _ = fmt.Fprintln(w)
}

// printSuccess prints a completion line.
func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, format, args...)
	_, _ = fmt.Fprintln(w)
}

// printWarning prints a warning line.
func printWarning(w io.Writer, format string, args ...any) {
	_, _ = warningColor.Fprint(w, "warning: ")
	_, _ = fmt.Fprintf(w, format, args...)
	_, _ = fmt.Fprintln(w)
}

// printError prints an error.
func printError(w io.Writer, err error) {
	_, _ = errorColor.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err)
}
