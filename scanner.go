// Copyright 2021 Google LLC
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
	"bufio"
	"io"
	"strings"
)

const bom = "\ufeff"

// maxLineSize is the longest line accepted by a Scanner. GCIDE definitions for
// common words can run to tens of kilobytes once all senses are joined.
const maxLineSize = 4 * 1024 * 1024

// Scanner scans a tab-delimited dictionary from start to end.
type Scanner struct {
	s     *bufio.Scanner
	line  int
	entry *Entry
	err   error
}

// NewScanner returns a new Scanner that reads entries from r. Blank lines are
// skipped. A trailing carriage return and a leading byte order mark are
// removed.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{
		s: s,
	}
}

// Scan advances to the next entry. It returns false if the scan stops either
// by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.s.Scan() {
		s.line++
		line := strings.TrimSuffix(s.s.Text(), "\r")
		if s.line == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		// A line holding a tab is an entry even if it is otherwise blank.
		if !strings.Contains(line, "\t") && strings.TrimSpace(line) == "" {
			continue
		}

		headword, definition, found := strings.Cut(line, "\t")
		switch {
		case !found:
			s.err = &SyntaxError{Line: s.line, Msg: "missing tab separator"}
			return false
		case strings.Contains(definition, "\t"):
			s.err = &SyntaxError{Line: s.line, Msg: "more than one tab separator"}
			return false
		case strings.TrimSpace(headword) == "":
			s.err = &SyntaxError{Line: s.line, Msg: "empty headword"}
			return false
		}

		s.entry = &Entry{
			Headword:   headword,
			Definition: definition,
		}
		return true
	}

	//nolint:wrapcheck // error should not be wrapped
	s.err = s.s.Err()
	return false
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Line returns the 1-based line number of the most recent entry.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered. A malformed line is reported as a
// *SyntaxError.
func (s *Scanner) Err() error {
	return s.err
}
