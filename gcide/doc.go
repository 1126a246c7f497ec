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

// Package gcide implements extracting dictionary entries from the XML
// distribution of the GNU Collaborative International Dictionary of English.
//
// GCIDE is distributed as one XML file per letter (gcide_a.xml through
// gcide_z.xml). Each file is a sequence of <p> paragraphs. An entry begins with
// a paragraph whose first child is <ent> and continues through any following
// paragraphs until the next <ent>. Within an entry:
//  1. <hw> holds the headword, with '*' marking syllable breaks and '"' and
//     '`' marking primary and secondary stress.
//  2. Each <def> holds one sense. Definitions may contain nested markup which
//     is flattened to its text.
//
// The files use a number of custom entities for Latin diacritics (for example
// &ebreve_; and &omacr;) which are decoded along with the standard HTML
// entities.
package gcide
