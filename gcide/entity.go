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

	"golang.org/x/text/unicode/norm"
)

const (
	combiningBreve  = "\u0306"
	combiningMacron = "\u0304"
)

// entities maps entity names to their replacement text. It holds the HTML
// entities and the GCIDE diacritic entities. GCIDE spells some entities with a
// trailing underscore (&ebreve_;) and some without (&emacr;), so both spellings
// are accepted.
var entities = makeEntities()

func makeEntities() map[string]string {
	m := make(map[string]string, len(xml.HTMLEntity)+64)
	for k, v := range xml.HTMLEntity {
		m[k] = v
	}

	for _, v := range "aeiouyAEIOUY" {
		base := string(v)
		breve := norm.NFC.String(base + combiningBreve)
		macron := norm.NFC.String(base + combiningMacron)
		m[base+"breve"] = breve
		m[base+"breve_"] = breve
		m[base+"macr"] = macron
		m[base+"macr_"] = macron
	}

	// GCIDE marks an italic e in some etymologies.
	m["eitalic_"] = "\u00e9"
	return m
}
