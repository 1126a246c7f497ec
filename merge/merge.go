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

// Package merge combines a base dictionary with a book's character list.
package merge

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-kindledict"
)

// CharacterTag prefixes the definitions of character entries so that they
// can be told apart from dictionary senses on the device.
const CharacterTag = "[Character] "

var (
	// ErrMerge is the parent error for all errors in this package.
	ErrMerge = errors.New("merge")

	// ErrMissingInput indicates that an input file does not exist.
	ErrMissingInput = fmt.Errorf("%w: missing input", ErrMerge)
)

// Stats are the results of a merge.
type Stats struct {
	// Base is the number of base dictionary entries written.
	Base int

	// Characters is the number of character entries written.
	Characters int
}

// Total returns the number of entries in the union.
func (s *Stats) Total() int {
	return s.Base + s.Characters
}

// Union returns every base entry unchanged followed by every character entry
// with tag prefixed to its definition. Entries are not deduplicated: a name
// that is also an English word keeps both senses.
func Union(base, characters []*kindledict.Entry, tag string) []*kindledict.Entry {
	union := make([]*kindledict.Entry, 0, len(base)+len(characters))
	union = append(union, base...)
	for _, c := range characters {
		union = append(union, &kindledict.Entry{
			Headword:   c.Headword,
			Definition: tag + c.Definition,
		})
	}
	return union
}

// Options are options for Files.
type Options struct {
	// Tag is the character tag. Defaults to CharacterTag.
	Tag string
}

// Files merges the dictionary at basePath with the character list at
// characterPath and writes the union to outPath. Both inputs are checked and
// parsed before anything is written. The union file is replaced atomically.
func Files(ctx context.Context, basePath, characterPath, outPath string, opts *Options) (*Stats, error) {
	tag := CharacterTag
	if opts != nil && opts.Tag != "" {
		tag = opts.Tag
	}

	if err := CheckInputs(basePath, characterPath); err != nil {
		return nil, err
	}

	base, err := kindledict.ReadFile(basePath)
	if err != nil {
		return nil, err
	}
	characters, err := kindledict.ReadFile(characterPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("merging: %w", err)
	}

	if err := kindledict.WriteFile(outPath, Union(base, characters, tag)); err != nil {
		return nil, err
	}

	return &Stats{
		Base:       len(base),
		Characters: len(characters),
	}, nil
}

// CheckInputs reports the first of paths that is missing or is a directory.
func CheckInputs(paths ...string) error {
	for _, path := range paths {
		if err := checkExists(path); err != nil {
			return err
		}
	}
	return nil
}

func checkExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return fmt.Errorf("%w: %w", ErrMerge, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingInput, path)
	}
	return nil
}
