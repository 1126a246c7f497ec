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
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kindledict"
	"github.com/ianlewis/go-kindledict/internal/testutil"
)

func scanAll(t *testing.T, data []byte, opts *ScannerOptions) ([]*kindledict.Entry, int, error) {
	t.Helper()

	var entries []*kindledict.Entry
	s := NewScanner(bytes.NewReader(data), opts)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Skipped(), s.Err()
}

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []*kindledict.Entry
		skipped  int
	}{
		{
			name: "alpha beta",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "alpha", Defs: []string{"first letter"}},
				testutil.GCIDEEntry{Headword: "beta", Defs: []string{"second letter"}},
			),
			expected: []*kindledict.Entry{
				{Headword: "alpha", Definition: "first letter"},
				{Headword: "beta", Definition: "second letter"},
			},
		},
		{
			name: "continuation senses",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "Ab\"a*cus", Defs: []string{"A table for games.", "A calculating frame."}},
			),
			expected: []*kindledict.Entry{
				{Headword: "Abacus", Definition: "A table for games.; A calculating frame."},
			},
		},
		{
			name: "nested markup and whitespace",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{
					Headword: "A*ban\"don",
					Defs:     []string{"To give up wholly;\n\t<as>as, to <ex>abandon</ex> a cause</as>."},
				},
			),
			expected: []*kindledict.Entry{
				{Headword: "Abandon", Definition: "To give up wholly; as, to abandon a cause."},
			},
		},
		{
			name: "entities",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "D&emacr;mon", Defs: []string{"A spirit; caf&eacute; &amp; b&ebreve_;t &lt;x&gt;."}},
			),
			expected: []*kindledict.Entry{
				{Headword: "Dēmon", Definition: "A spirit; café & bĕt <x>."},
			},
		},
		{
			name: "tab in headword",
			data: []byte("<p><ent>x</ent><hw>two\twords</hw><def>a def</def></p>"),
			expected: []*kindledict.Entry{
				{Headword: "two words", Definition: "a def"},
			},
		},
		{
			name: "entry without definition skipped",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "alpha", Defs: []string{"first letter"}},
				testutil.GCIDEEntry{Headword: "Alpha"},
				testutil.GCIDEEntry{Headword: "beta", Defs: []string{"second letter"}},
			),
			expected: []*kindledict.Entry{
				{Headword: "alpha", Definition: "first letter"},
				{Headword: "beta", Definition: "second letter"},
			},
			skipped: 1,
		},
		{
			name: "empty definition skipped",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "alpha", Defs: []string{"  <br/> "}},
			),
			skipped: 1,
		},
		{
			name: "entry without headword skipped",
			data: []byte("<p><ent>x</ent><def>orphan</def></p><p><ent>y</ent><hw>y</hw><def>why</def></p>"),
			expected: []*kindledict.Entry{
				{Headword: "y", Definition: "why"},
			},
			skipped: 1,
		},
		{
			name: "duplicate headwords kept",
			data: testutil.MakeGCIDE(
				testutil.GCIDEEntry{Headword: "bow", Defs: []string{"To bend."}},
				testutil.GCIDEEntry{Headword: "bow", Defs: []string{"A weapon."}},
			),
			expected: []*kindledict.Entry{
				{Headword: "bow", Definition: "To bend."},
				{Headword: "bow", Definition: "A weapon."},
			},
		},
		{
			name: "definition before any entry ignored",
			data: []byte("<p><def>front matter</def></p><p><ent>a</ent><hw>a</hw><def>letter</def></p>"),
			expected: []*kindledict.Entry{
				{Headword: "a", Definition: "letter"},
			},
		},
		{
			name: "empty document",
			data: []byte(""),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, skipped, err := scanAll(t, test.data, nil)
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}
			if want, got := test.skipped, skipped; want != got {
				t.Fatalf("Skipped; want: %d, got: %d", want, got)
			}
		})
	}
}

// TestScanner_count checks that each well-formed entry produces exactly one
// entry.
func TestScanner_count(t *testing.T) {
	t.Parallel()

	var entries []testutil.GCIDEEntry
	for i := range 500 {
		entries = append(entries, testutil.GCIDEEntry{
			Headword: "word" + strings.Repeat("x", i%7),
			Defs:     []string{"sense one", "sense two"},
		})
	}

	got, skipped, err := scanAll(t, testutil.MakeGCIDE(entries...), nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if want, got := len(entries), len(got); want != got {
		t.Fatalf("entries; want: %d, got: %d", want, got)
	}
	if skipped != 0 {
		t.Fatalf("Skipped; want: 0, got: %d", skipped)
	}
}

func TestScanner_malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		line int
	}{
		{
			name: "mismatched tag",
			data: "<p><ent>a</ent><hw>a</hw>\n<def>letter</hw></p>",
			line: 2,
		},
		{
			name: "unknown entity",
			data: "<p><ent>a</ent><hw>a</hw>\n\n<def>&nosuch;</def></p>",
			line: 3,
		},
		{
			name: "unclosed",
			data: "<p><ent>a</ent><hw>a</hw><def>letter",
			line: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := scanAll(t, []byte(test.data), nil)
			var synErr *xml.SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("Scan: expected *xml.SyntaxError, got: %v", err)
			}
			if want, got := test.line, synErr.Line; want != got {
				t.Fatalf("SyntaxError.Line; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestScanner_lenient(t *testing.T) {
	t.Parallel()

	data := []byte("<p><ent>a</ent><hw>a</hw><def>&nosuch; letter</def></p>")

	got, _, err := scanAll(t, data, &ScannerOptions{Lenient: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	expected := []*kindledict.Entry{
		{Headword: "a", Definition: "&nosuch; letter"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Scan (-want, +got):\n%s", diff)
	}
}

func TestScanner_charset(t *testing.T) {
	t.Parallel()

	// "caf\xe9" is "café" in ISO-8859-1.
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<p><ent>caf\xe9</ent><hw>caf\xe9</hw><def>coffee house</def></p>")

	got, _, err := scanAll(t, data, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	expected := []*kindledict.Entry{
		{Headword: "café", Definition: "coffee house"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Scan (-want, +got):\n%s", diff)
	}
}
