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
	"io"
	"os"
	"path/filepath"
)

// Read reads all entries from r.
func Read(r io.Reader) ([]*Entry, error) {
	var entries []*Entry
	s := NewScanner(r)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadFile reads all entries from the file at path. Syntax errors carry the
// path.
func ReadFile(path string) ([]*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		var synErr *SyntaxError
		if errors.As(err, &synErr) {
			synErr.Path = path
			return nil, synErr
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return entries, nil
}

// WriteFile writes entries to the file at path, replacing any existing file.
// The entries are written to a temporary file in the same directory which is
// renamed into place once complete, so a failed write leaves any previous file
// untouched. Parent directories are created as needed.
func WriteFile(path string, entries []*Entry) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	tmpPath := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	w := NewWriter(f)
	if err = w.WriteAll(entries); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	// CreateTemp uses mode 0600.
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
