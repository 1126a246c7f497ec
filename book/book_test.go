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

package book

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kindledict/internal/testutil"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected *Book
		err      error
	}{
		{
			name:  "default book",
			query: "speaker-for-the-dead",
			expected: &Book{
				Name:           "speaker-for-the-dead",
				CharacterFile:  "speaker-characters.txt",
				OutputBasename: "speaker-characters-and-gcide",
			},
		},
		{
			name:  "book folder path",
			query: filepath.Join("dictionaries", "speaker-for-the-dead") + string(filepath.Separator),
			expected: &Book{
				Name:           "speaker-for-the-dead",
				CharacterFile:  "speaker-characters.txt",
				OutputBasename: "speaker-characters-and-gcide",
			},
		},
		{
			name:  "conventional names",
			query: "enders-game",
			expected: &Book{
				Name:           "enders-game",
				CharacterFile:  "enders-game-characters.txt",
				OutputBasename: "enders-game-characters-and-gcide",
			},
		},
		{
			name:  "empty",
			query: "",
			err:   ErrInvalid,
		},
		{
			name:  "parent",
			query: "..",
			err:   ErrInvalid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := DefaultRegistry().Lookup(test.query)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Lookup: want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_Load(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	err := r.Load(strings.NewReader(`
xenocide:
  characters: xenocide-cast.txt
  output: xenocide-dict
speaker-for-the-dead:
  characters: speaker.txt
  output: speaker
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := []*Book{
		{
			Name:           "speaker-for-the-dead",
			CharacterFile:  "speaker.txt",
			OutputBasename: "speaker",
		},
		{
			Name:           "xenocide",
			CharacterFile:  "xenocide-cast.txt",
			OutputBasename: "xenocide-dict",
		},
	}
	if diff := cmp.Diff(expected, r.Books()); diff != "" {
		t.Fatalf("Books (-want, +got):\n%s", diff)
	}
}

func TestRegistry_Load_invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "missing output",
			doc:  "xenocide:\n  characters: xenocide.txt\n",
			err:  ErrInvalid,
		},
		{
			name: "path in file name",
			doc:  "xenocide:\n  characters: ../xenocide.txt\n  output: x\n",
			err:  ErrInvalid,
		},
		{
			name: "unknown field",
			doc:  "xenocide:\n  characters: x.txt\n  output: x\n  author: Card\n",
			err:  ErrBook,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := DefaultRegistry().Load(strings.NewReader(test.doc))
			if !errors.Is(err, test.err) {
				t.Fatalf("Load: want: %v, got: %v", test.err, err)
			}
		})
	}
}

func TestRegistry_LoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	r := DefaultRegistry()
	if err := r.LoadFile(filepath.Join(dir, RegistryFile), true); err != nil {
		t.Fatalf("LoadFile (optional): %v", err)
	}
	if err := r.LoadFile(filepath.Join(dir, RegistryFile), false); !errors.Is(err, ErrBook) {
		t.Fatalf("LoadFile: want: %v, got: %v", ErrBook, err)
	}

	path := testutil.MakeFile(t, dir, RegistryFile, []byte("children-of-the-mind:\n  characters: cast.txt\n  output: cotm\n"), nil)
	if err := r.LoadFile(path, false); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if want, got := 2, len(r.Books()); want != got {
		t.Fatalf("Books; want: %d, got: %d", want, got)
	}
}

func TestBook_Layout(t *testing.T) {
	t.Parallel()

	b := DefaultBooks[0]
	root := filepath.Join("dictionaries")
	dir := filepath.Join(root, "speaker-for-the-dead")

	expected := &Layout{
		Dir:        dir,
		Characters: filepath.Join(dir, "speaker-characters.txt"),
		Union:      filepath.Join(dir, "speaker-characters-and-gcide.txt"),
		OPF:        filepath.Join(dir, "speaker-characters-and-gcide.opf"),
		Mobi:       filepath.Join(dir, "speaker-characters-and-gcide.mobi"),
	}
	if diff := cmp.Diff(expected, b.Layout(root)); diff != "" {
		t.Fatalf("Layout (-want, +got):\n%s", diff)
	}
}
