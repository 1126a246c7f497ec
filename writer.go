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
	"bufio"
	"fmt"
	"io"
)

// Writer writes entries to a tab-delimited dictionary.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter returns a new Writer. Flush must be called when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single entry. Entries whose fields would break the
// one-entry-per-line format are rejected with ErrInvalidField.
func (w *Writer) Write(e *Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := w.w.WriteString(e.String()); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	w.count++
	return nil
}

// WriteAll writes all entries.
func (w *Writer) WriteAll(entries []*Entry) error {
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of entries written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing entries: %w", err)
	}
	return nil
}
