// Copyright 2025 Ian Lewis
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

// Package index implements an in-memory sorted index over dictionary entries.
package index

import (
	"slices"
	"strings"
)

// Keyed is a value indexed by a lookup key.
type Keyed interface {
	Key() string
}

// Index is a sorted array index. Values with equal keys keep their original
// relative order.
type Index[V Keyed] struct {
	index []V
}

// New creates an index from the given values. The slice is copied.
func New[V Keyed](values []V) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.Key(), b.Key())
	})

	return &Index[V]{
		index: sorted,
	}
}

// Len returns the number of indexed values.
func (idx *Index[V]) Len() int {
	return len(idx.index)
}

// Search performs a binary search over the index and returns the values whose
// key equals key.
func (idx *Index[V]) Search(key string) []V {
	return idx.match(key, func(k string) bool { return k == key })
}

// Prefix returns the values whose key starts with prefix.
func (idx *Index[V]) Prefix(prefix string) []V {
	return idx.match(prefix, func(k string) bool { return strings.HasPrefix(k, prefix) })
}

func (idx *Index[V]) match(start string, ok func(string) bool) []V {
	i, _ := slices.BinarySearchFunc(idx.index, start, func(v V, target string) int {
		return strings.Compare(v.Key(), target)
	})

	j := i
	for j < len(idx.index) && ok(idx.index[j].Key()) {
		j++
	}
	if i == j {
		return nil
	}
	return idx.index[i:j]
}
