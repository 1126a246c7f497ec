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

package testutil

import (
	"strings"
)

// GCIDEEntry is a test GCIDE entry. Fields hold raw XML which is inserted
// without escaping.
type GCIDEEntry struct {
	Headword string
	Defs     []string
}

// MakeGCIDE renders entries in the layout of the GCIDE letter files. Each
// definition after the first is written in its own continuation paragraph.
func MakeGCIDE(entries ...GCIDEEntry) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	for _, e := range entries {
		b.WriteString("<p><ent>")
		b.WriteString(e.Headword)
		b.WriteString("</ent><br/>\n<hw>")
		b.WriteString(e.Headword)
		b.WriteString("</hw> <pos>n.</pos>")
		for i, d := range e.Defs {
			if i > 0 {
				b.WriteString("<p><sn>")
				b.WriteString(strings.Repeat("I", i+1))
				b.WriteString(".</sn> ")
			}
			b.WriteString("<def>")
			b.WriteString(d)
			b.WriteString("</def></p>\n")
		}
		if len(e.Defs) == 0 {
			b.WriteString("</p>\n")
		}
	}
	return []byte(b.String())
}
