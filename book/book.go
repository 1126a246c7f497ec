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

// Package book builds per-book Kindle dictionaries that combine the base
// dictionary with a book's character list.
//
// Each book has a folder under the dictionaries root holding its character
// list. Build outputs (the union .txt, the converter's .opf and HTML, and the
// packaged .mobi) are written alongside it.
package book

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// RegistryFile is the name of the optional book registry in the dictionaries
// root.
const RegistryFile = "books.yaml"

var (
	// ErrBook is the parent error for all errors in this package.
	ErrBook = errors.New("book")

	// ErrInvalid indicates an invalid book definition.
	ErrInvalid = fmt.Errorf("%w: invalid book", ErrBook)
)

// Book describes a book's dictionary inputs and outputs.
type Book struct {
	// Name is the book's folder name under the dictionaries root.
	Name string `yaml:"-"`

	// CharacterFile is the file name of the character list.
	CharacterFile string `yaml:"characters"`

	// OutputBasename is the file name, without extension, of the build
	// outputs.
	OutputBasename string `yaml:"output"`
}

// Validate checks that the book's file names are usable.
func (b *Book) Validate() error {
	for _, f := range []struct{ field, v string }{
		{"name", b.Name},
		{"characters", b.CharacterFile},
		{"output", b.OutputBasename},
	} {
		field, v := f.field, f.v
		if v == "" {
			return fmt.Errorf("%w: %q: empty %s", ErrInvalid, b.Name, field)
		}
		if strings.ContainsAny(v, `/\`) || v == "." || v == ".." {
			return fmt.Errorf("%w: %q: %s %q is not a plain file name", ErrInvalid, b.Name, field, v)
		}
	}
	return nil
}

// Layout resolves a book's file paths under the dictionaries root.
type Layout struct {
	// Dir is the book folder.
	Dir string

	// Characters is the character list path.
	Characters string

	// Union is the merged tab-delimited dictionary path.
	Union string

	// OPF is the converter's output path.
	OPF string

	// Mobi is the packaged dictionary path.
	Mobi string
}

// Layout returns the book's paths under root.
func (b *Book) Layout(root string) *Layout {
	dir := filepath.Join(root, b.Name)
	base := filepath.Join(dir, b.OutputBasename)
	return &Layout{
		Dir:        dir,
		Characters: filepath.Join(dir, b.CharacterFile),
		Union:      base + ".txt",
		OPF:        base + ".opf",
		Mobi:       base + ".mobi",
	}
}

// Registry maps book folder names to books.
type Registry struct {
	books map[string]*Book
}

// DefaultBooks are the books known without a registry file.
var DefaultBooks = []*Book{
	{
		Name:           "speaker-for-the-dead",
		CharacterFile:  "speaker-characters.txt",
		OutputBasename: "speaker-characters-and-gcide",
	},
}

// NewRegistry returns a registry holding the given books.
func NewRegistry(books ...*Book) (*Registry, error) {
	r := &Registry{
		books: map[string]*Book{},
	}
	for _, b := range books {
		if err := r.Add(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a registry holding DefaultBooks.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultBooks...)
	if err != nil {
		panic(err)
	}
	return r
}

// Add adds or replaces a book.
func (r *Registry) Add(b *Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	bc := *b
	r.books[b.Name] = &bc
	return nil
}

// Load reads books from YAML and adds them to the registry. The document is a
// mapping from folder name to book:
//
//	enders-game:
//	  characters: enders-game-characters.txt
//	  output: enders-game-characters-and-gcide
func (r *Registry) Load(rd io.Reader) error {
	var doc map[string]*Book
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: decoding registry: %w", ErrBook, err)
	}

	for _, name := range slices.Sorted(maps.Keys(doc)) {
		b := doc[name]
		if b == nil {
			b = &Book{}
		}
		b.Name = name
		if err := r.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads books from the YAML file at path. A missing file is not an
// error when optional is true.
func (r *Registry) LoadFile(path string, optional bool) error {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: opening registry: %w", ErrBook, err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Lookup returns the book with the given folder name. Unknown names get the
// conventional file names "<name>-characters.txt" and
// "<name>-characters-and-gcide".
func (r *Registry) Lookup(name string) (*Book, error) {
	name = filepath.Clean(strings.TrimRight(name, `/\`))
	// Accept a path to the book folder.
	name = filepath.Base(name)

	if b, ok := r.books[name]; ok {
		bc := *b
		return &bc, nil
	}

	b := &Book{
		Name:           name,
		CharacterFile:  name + "-characters.txt",
		OutputBasename: name + "-characters-and-gcide",
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Books returns the registered books sorted by name.
func (r *Registry) Books() []*Book {
	var books []*Book
	for _, name := range slices.Sorted(maps.Keys(r.books)) {
		bc := *r.books[name]
		books = append(books, &bc)
	}
	return books
}
