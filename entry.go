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
	"fmt"
	"strings"

	"github.com/ianlewis/go-kindledict/internal/folding"
)

// Entry is a dictionary entry. Character list entries use the same shape with
// the character's name as the headword and the description as the definition.
type Entry struct {
	// Headword is the lookup key.
	Headword string

	// Definition is the rendered definition text.
	Definition string
}

// String returns the entry as a line of a tab-delimited file without the line
// terminator.
func (e *Entry) String() string {
	return e.Headword + "\t" + e.Definition
}

// Validate checks that the entry can be written as a single line.
func (e *Entry) Validate() error {
	if e.Headword == "" {
		return fmt.Errorf("%w: empty headword", ErrInvalidField)
	}
	if strings.ContainsAny(e.Headword, "\t\r\n") {
		return fmt.Errorf("%w: headword %q", ErrInvalidField, e.Headword)
	}
	if strings.ContainsAny(e.Definition, "\t\r\n") {
		return fmt.Errorf("%w: definition of %q", ErrInvalidField, e.Headword)
	}
	return nil
}

// Sanitize renders s as a single-line field. The result is NFC normalized,
// leading and trailing whitespace is removed and every internal whitespace
// span, including tabs and line breaks, becomes a single space.
func Sanitize(s string) string {
	return folding.String(folding.Field, s)
}
