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

package gcide

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-kindledict"
)

// DefaultPattern matches the GCIDE letter files.
const DefaultPattern = "gcide_[a-z].xml"

// dictzipExt is the extension of dictzip compressed sources.
const dictzipExt = ".dz"

var (
	// ErrGCIDE is the parent error for all errors in this package.
	ErrGCIDE = errors.New("gcide")

	// ErrSourceDir indicates the source directory is missing or unusable.
	ErrSourceDir = fmt.Errorf("%w: source directory", ErrGCIDE)

	// ErrNoSources indicates that no source files matched the pattern.
	ErrNoSources = fmt.Errorf("%w: no source files", ErrGCIDE)

	// ErrParse indicates a malformed source file.
	ErrParse = fmt.Errorf("%w: malformed source", ErrGCIDE)
)

// ParseError is an error parsing a single source file.
type ParseError struct {
	// Path is the source file.
	Path string

	// Line is the 1-based line number of the error or zero if unknown.
	Line int

	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Is allows errors.Is(err, ErrParse).
func (e *ParseError) Is(target error) bool {
	return target == ErrParse || target == ErrGCIDE
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options are options for Extract.
type Options struct {
	// SourceDir is the directory holding the GCIDE XML files.
	SourceDir string

	// Output is the path of the tab-delimited file to write.
	Output string

	// Pattern is a glob matched against file names in SourceDir. Files
	// matching Pattern with an additional ".dz" extension are read as dictzip
	// archives. Defaults to DefaultPattern.
	Pattern string

	// Lenient disables strict XML parsing.
	Lenient bool
}

// FileStats are the results of extracting one source file.
type FileStats struct {
	// Path is the source file path.
	Path string

	// Entries is the number of entries extracted.
	Entries int

	// Skipped is the number of entries skipped for lacking a headword or
	// definition.
	Skipped int
}

// Stats are the results of Extract.
type Stats struct {
	Files []FileStats
}

// Entries returns the total number of entries written.
func (s *Stats) Entries() int {
	var n int
	for _, f := range s.Files {
		n += f.Entries
	}
	return n
}

// Skipped returns the total number of entries skipped.
func (s *Stats) Skipped() int {
	var n int
	for _, f := range s.Files {
		n += f.Skipped
	}
	return n
}

// Extract converts every GCIDE source file in opts.SourceDir into a single
// tab-delimited dictionary at opts.Output. Entries are written in file name
// order and then document order. All sources are parsed before the output is
// written, and the output is replaced atomically, so a malformed source leaves
// any previous output untouched.
func Extract(ctx context.Context, opts *Options) (*Stats, error) {
	paths, err := Sources(opts.SourceDir, opts.Pattern)
	if err != nil {
		return nil, err
	}

	var stats Stats
	var entries []*kindledict.Entry
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extracting: %w", err)
		}

		fileEntries, skipped, err := ParseFile(path, &ScannerOptions{Lenient: opts.Lenient})
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
		stats.Files = append(stats.Files, FileStats{
			Path:    path,
			Entries: len(fileEntries),
			Skipped: skipped,
		})
	}

	if err := kindledict.WriteFile(opts.Output, entries); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Sources returns the source files in dir matching pattern, sorted by name.
// When both a plain and a dictzip compressed copy of a file exist the plain
// copy is used.
func Sources(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrSourceDir, dir)
	}

	plain, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrGCIDE, pattern, err)
	}
	compressed, err := filepath.Glob(filepath.Join(dir, pattern+dictzipExt))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrGCIDE, pattern, err)
	}

	var paths []string
	for _, p := range plain {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			paths = append(paths, p)
		}
	}
	for _, p := range compressed {
		if !slices.Contains(paths, strings.TrimSuffix(p, dictzipExt)) {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no files matching %q in %q", ErrNoSources, pattern, dir)
	}

	slices.SortFunc(paths, func(a, b string) int {
		return strings.Compare(strings.TrimSuffix(a, dictzipExt), strings.TrimSuffix(b, dictzipExt))
	})
	return paths, nil
}

// ParseFile parses all entries from a single GCIDE source file. Files ending in
// ".dz" are decompressed with dictzip. Errors are returned as a *ParseError.
func ParseFile(path string, options *ScannerOptions) ([]*kindledict.Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, dictzipExt) {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, 0, &ParseError{Path: path, Err: err}
		}
		defer z.Close()
		r = z
	}

	var entries []*kindledict.Entry
	s := NewScanner(r, options)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		pErr := &ParseError{Path: path, Err: err}
		var synErr *xml.SyntaxError
		if errors.As(err, &synErr) {
			pErr.Line = synErr.Line
		}
		return nil, 0, pErr
	}

	return entries, s.Skipped(), nil
}
