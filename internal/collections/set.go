// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package collections has general-purpose container helpers shared across
// the rest of the codebase.
package collections

import (
	"fmt"
	"slices"
	"strings"
)

// Set is a container that can hold each item only once and has a fast
// lookup time.
//
// You can define a new set either literally:
//
//	var seen = collections.Set[string]{
//	    "a": {},
//	    "b": {},
//	}
//
// or by adding items to an empty one with Add.
type Set[T comparable] map[T]struct{}

// Add inserts the given item into the set. Adding an item that is already
// present is a no-op.
func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// Has returns true if the item exists in the Set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// String creates a sorted, comma-separated list of all values in the set.
func (s Set[T]) String() string {
	parts := make([]string, 0, len(s))
	for v := range s {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	slices.Sort(parts)
	return strings.Join(parts, ", ")
}
