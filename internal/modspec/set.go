// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modspec

import (
	"iter"
	"maps"
)

// UniqueKeyer is implemented by types that can produce a UniqueKey for
// themselves. ModuleSpecification is the primary implementation; wrapper
// types that embed a specification can implement it by delegation so they
// too can live in a Set.
type UniqueKeyer interface {
	UniqueKey() UniqueKey
}

// Set represents a set of values that implement UniqueKeyer, deduplicated
// by their keys, so two specifications differing only in name casing occupy
// one slot.
//
// Modify the set only by the methods on this type. The map representation
// is exposed for convenient reading, such as ranging over the values, but
// direct modification can make the set inconsistent.
type Set[T UniqueKeyer] map[UniqueKey]T

// MakeSet produces a set containing the given values.
func MakeSet[T UniqueKeyer](elems ...T) Set[T] {
	ret := Set[T](make(map[UniqueKey]T, len(elems)))
	for _, elem := range elems {
		ret.Add(elem)
	}
	return ret
}

// Has returns true if and only if the set includes the given value.
func (s Set[T]) Has(v T) bool {
	_, exists := s[v.UniqueKey()]
	return exists
}

// Add inserts the given value into the set. If an equal value is already
// present it is replaced by the new one.
func (s Set[T]) Add(v T) {
	s[v.UniqueKey()] = v
}

// Remove deletes the given value from the set, if present.
func (s Set[T]) Remove(v T) {
	delete(s, v.UniqueKey())
}

// All returns a sequence of all values in the set in a pseudorandom order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Values(s)
}
