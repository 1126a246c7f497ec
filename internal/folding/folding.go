// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements text transformers used to normalize dictionary
// fields and lookup keys.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Field returns a transformer that renders text as a single-line field of a
// tab-delimited dictionary: NFC normalized with whitespace folded.
func Field() transform.Transformer {
	return transform.Chain(norm.NFC, &WhitespaceFolder{})
}

// Key returns a transformer that produces a lookup key. Keys are compared
// without regard to case, character width or surrounding whitespace.
func Key() transform.Transformer {
	return transform.Chain(
		norm.NFKC,
		width.Fold,
		cases.Fold(),
		&WhitespaceFolder{},
	)
}

// String applies a fresh transformer from fn to s.
func String(fn func() transform.Transformer, s string) string {
	out, _, err := transform.String(fn(), s)
	if err != nil {
		// None of the transformers used here report errors on complete input.
		return s
	}
	return out
}
