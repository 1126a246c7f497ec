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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/ianlewis/go-kindledict"
)

// DefinitionSeparator joins the senses of an entry.
const DefinitionSeparator = "; "

// headwordMarks strips GCIDE syllable and stress marks from headwords.
var headwordMarks = strings.NewReplacer(`*`, "", `"`, "", "`", "")

// ScannerOptions are options for scanning GCIDE XML.
type ScannerOptions struct {
	// Lenient disables strict parsing. Unknown entities are passed through as
	// literal text and unclosed elements are closed automatically.
	Lenient bool
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{}

// Scanner scans GCIDE entries from an XML document.
type Scanner struct {
	d *xml.Decoder

	// cur is the entry under construction.
	cur *entry

	// next is an entry completed by the start of the following entry.
	next *kindledict.Entry

	entry   *kindledict.Entry
	skipped int
	done    bool
	err     error
}

type entry struct {
	headword strings.Builder
	hwDepth  int
	hwDone   bool

	def      strings.Builder
	defDepth int
	defs     []string
}

// NewScanner returns a new Scanner that reads GCIDE XML from r.
func NewScanner(r io.Reader, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}

	d := xml.NewDecoder(r)
	d.Strict = !options.Lenient
	if options.Lenient {
		d.AutoClose = xml.HTMLAutoClose
	}
	d.Entity = entities
	d.CharsetReader = charsetReader

	return &Scanner{
		d: d,
	}
}

// Scan advances to the next entry that has both a headword and a definition.
// Entries lacking either are skipped and counted. Scan returns false when the
// document ends or an error occurs.
func (s *Scanner) Scan() bool {
	for !s.done && s.err == nil {
		if s.next != nil {
			s.entry, s.next = s.next, nil
			return true
		}

		tok, err := s.d.Token()
		if errors.Is(err, io.EOF) {
			s.done = true
			if e := s.finish(); e != nil {
				s.entry = e
				return true
			}
			return false
		}
		if err != nil {
			s.err = err
			return false
		}
		s.handle(tok)
	}
	return false
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *kindledict.Entry {
	return s.entry
}

// Skipped returns the number of entries skipped so far because they had no
// headword or no definition.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error encountered. Malformed XML is reported as a
// *xml.SyntaxError.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return fmt.Errorf("parsing GCIDE XML: %w", s.err)
}

func (s *Scanner) handle(tok xml.Token) {
	switch t := tok.(type) {
	case xml.StartElement:
		switch t.Name.Local {
		case "ent":
			s.next = s.finish()
			s.cur = &entry{}
		case "hw":
			if s.cur == nil {
				s.cur = &entry{}
			}
			if !s.cur.hwDone {
				s.cur.hwDepth++
			}
		case "def":
			if s.cur == nil {
				// A sense outside of any entry has nothing to attach to.
				return
			}
			if s.cur.defDepth == 0 {
				s.cur.def.Reset()
			}
			s.cur.defDepth++
		case "br":
			s.text(" ")
		}
	case xml.EndElement:
		if s.cur == nil {
			return
		}
		switch t.Name.Local {
		case "hw":
			if s.cur.hwDepth > 0 {
				s.cur.hwDepth--
				if s.cur.hwDepth == 0 {
					s.cur.hwDone = true
				}
			}
		case "def":
			if s.cur.defDepth > 0 {
				s.cur.defDepth--
				if s.cur.defDepth == 0 {
					if def := kindledict.Sanitize(s.cur.def.String()); def != "" {
						s.cur.defs = append(s.cur.defs, def)
					}
				}
			}
		}
	case xml.CharData:
		s.text(string(t))
	}
}

func (s *Scanner) text(str string) {
	if s.cur == nil {
		return
	}
	if s.cur.hwDepth > 0 {
		s.cur.headword.WriteString(str)
	}
	if s.cur.defDepth > 0 {
		s.cur.def.WriteString(str)
	}
}

// finish completes the current entry. It returns nil if there is no current
// entry or the entry was skipped.
func (s *Scanner) finish() *kindledict.Entry {
	cur := s.cur
	s.cur = nil
	if cur == nil {
		return nil
	}

	headword := kindledict.Sanitize(headwordMarks.Replace(cur.headword.String()))
	if headword == "" || len(cur.defs) == 0 {
		s.skipped++
		return nil
	}

	return &kindledict.Entry{
		Headword:   headword,
		Definition: strings.Join(cur.defs, DefinitionSeparator),
	}
}

// charsetReader decodes documents that declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
