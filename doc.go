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

// Package kindledict implements reading and writing the tab-delimited
// dictionary files used to build Kindle lookup dictionaries.
//
// A tab-delimited dictionary is UTF-8 text with one entry per line:
//  1. The headword, which must not be empty.
//  2. A single tab character ('\t').
//  3. The definition, which may be empty.
//
// Lines are terminated by '\n'. Neither field may contain a tab or a line
// break. There is no header line and no escaping convention.
//
// The files are consumed by tab2opf, which produces the OPF and HTML sources
// that kindlegen compiles into a .mobi dictionary. The gcide package extracts
// such a file from the GCIDE XML sources and the merge package combines it with
// a book's character list.
package kindledict
