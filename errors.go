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

package kindledict

import (
	"errors"
	"fmt"
)

// ErrKindledict is the parent error for all errors in this package.
var ErrKindledict = errors.New("kindledict")

// ErrSyntax indicates a line that is not in the two-column tab format.
var ErrSyntax = fmt.Errorf("%w: syntax error", ErrKindledict)

// ErrInvalidField indicates a field that cannot be written on a single line.
var ErrInvalidField = fmt.Errorf("%w: invalid field", ErrKindledict)

// SyntaxError describes a malformed line in a tab-delimited file.
type SyntaxError struct {
	// Path is the file path, if known.
	Path string

	// Line is the 1-based line number.
	Line int

	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap allows errors.Is(err, ErrSyntax).
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
