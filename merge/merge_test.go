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

package merge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/internal/testutil"
)

func TestUnion(t *testing.T) {
	t.Parallel()

	base := []*kindledict.Entry{
		{Headword: "alpha", Definition: "first letter"},
		{Headword: "speaker", Definition: "one who speaks"},
	}
	characters := []*kindledict.Entry{
		{Headword: "Ender", Definition: "Protagonist"},
		{Headword: "speaker", Definition: "Speaker for the Dead"},
		{Headword: "Jane", Definition: ""},
	}

	got := Union(base, characters, CharacterTag)

	expected := []*kindledict.Entry{
		{Headword: "alpha", Definition: "first letter"},
		{Headword: "speaker", Definition: "one who speaks"},
		{Headword: "Ender", Definition: "[Character] Protagonist"},
		{Headword: "speaker", Definition: "[Character] Speaker for the Dead"},
		{Headword: "Jane", Definition: "[Character] "},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Union (-want, +got):\n%s", diff)
	}

	// The inputs are not modified.
	if want, got := "Protagonist", characters[0].Definition; want != got {
		t.Fatalf("character definition; want: %q, got: %q", want, got)
	}

	if want, got := len(base)+len(characters), len(got); want != got {
		t.Fatalf("len(Union); want: %d, got: %d", want, got)
	}
	for i, c := range characters {
		def := got[len(base)+i].Definition
		if !strings.HasPrefix(def, CharacterTag) || strings.TrimPrefix(def, CharacterTag) != c.Definition {
			t.Fatalf("character %d definition %q does not tag %q", i, def, c.Definition)
		}
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := testutil.MakeFile(t, dir, "gcide/gcide.txt", []byte("alpha\tfirst letter\nbeta\tsecond letter\n"), nil)
	chars := testutil.MakeFile(t, dir, "book/characters.txt", []byte("Ender\tProtagonist\nValentine\tHis sister\n"), nil)
	out := filepath.Join(dir, "book", "union.txt")

	stats, err := Files(context.Background(), base, chars, out, nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	expected := "alpha\tfirst letter\nbeta\tsecond letter\nEnder\t[Character] Protagonist\nValentine\t[Character] His sister\n"
	if diff := cmp.Diff(expected, testutil.ReadFile(t, out)); diff != "" {
		t.Fatalf("union (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(&Stats{Base: 2, Characters: 2}, stats); diff != "" {
		t.Fatalf("Stats (-want, +got):\n%s", diff)
	}
	if want, got := 4, stats.Total(); want != got {
		t.Fatalf("Total; want: %d, got: %d", want, got)
	}
}

func TestFiles_tag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := testutil.MakeFile(t, dir, "gcide.txt", nil, nil)
	chars := testutil.MakeFile(t, dir, "characters.txt", []byte("Ender\tProtagonist\n"), nil)
	out := filepath.Join(dir, "union.txt")

	if _, err := Files(context.Background(), base, chars, out, &Options{Tag: "(Ender's Game) "}); err != nil {
		t.Fatalf("Files: %v", err)
	}
	if diff := cmp.Diff("Ender\t(Ender's Game) Protagonist\n", testutil.ReadFile(t, out)); diff != "" {
		t.Fatalf("union (-want, +got):\n%s", diff)
	}
}

func TestFiles_missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := testutil.MakeFile(t, dir, "gcide.txt", []byte("alpha\tfirst letter\n"), nil)
	chars := filepath.Join(dir, "characters.txt")
	out := filepath.Join(dir, "union.txt")

	_, err := Files(context.Background(), base, chars, out, nil)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Files: want: %v, got: %v", ErrMissingInput, err)
	}
	if !strings.Contains(err.Error(), chars) {
		t.Fatalf("error %q does not name %q", err, chars)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("union written despite missing input: %v", err)
	}
}

func TestFiles_malformedCharacters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := testutil.MakeFile(t, dir, "gcide.txt", []byte("alpha\tfirst letter\n"), nil)
	chars := testutil.MakeFile(t, dir, "characters.txt", []byte("Ender\tProtagonist\n\nValentine, his sister\n"), nil)
	out := filepath.Join(dir, "union.txt")

	_, err := Files(context.Background(), base, chars, out, nil)
	var synErr *kindledict.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("Files: expected *kindledict.SyntaxError, got: %v", err)
	}
	if want, got := chars, synErr.Path; want != got {
		t.Fatalf("SyntaxError.Path; want: %q, got: %q", want, got)
	}
	if want, got := 3, synErr.Line; want != got {
		t.Fatalf("SyntaxError.Line; want: %d, got: %d", want, got)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("union written despite malformed input: %v", err)
	}
}

func TestFiles_tabOnlyCharacterLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := testutil.MakeFile(t, dir, "gcide.txt", []byte("alpha\tfirst letter\n"), nil)
	chars := testutil.MakeFile(t, dir, "characters.txt", []byte("Ender\tProtagonist\n\t\n   \nValentine\tHis sister\n"), nil)
	out := filepath.Join(dir, "union.txt")

	stats, err := Files(context.Background(), base, chars, out, nil)
	var synErr *kindledict.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("Files: expected *kindledict.SyntaxError, got: %v (stats: %+v)", err, stats)
	}
	if want, got := chars+":2: empty headword", synErr.Error(); want != got {
		t.Fatalf("SyntaxError; want: %q, got: %q", want, got)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("union written despite malformed input: %v", err)
	}
}
