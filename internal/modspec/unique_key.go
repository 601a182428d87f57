// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modspec

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueKey is a comparable value that uniquely represents the identity of
// a ModuleSpecification, for use directly as a map key or via Set. Two
// specifications have equal keys exactly when Equal reports them equal.
type UniqueKey struct {
	name            string
	guid            uuid.UUID
	hasGUID         bool
	version         string
	requiredVersion string
	maximumVersion  string
}

// UniqueKey returns the comparison key for this specification.
//
// The module name is folded to lower case, since names compare
// case-insensitively. Version constraints are normalized through the
// version type's canonical form, so "1.0" and "1.0.0" produce the same key.
// MaximumVersion is compared as its raw text, case-sensitively; it can
// carry wildcard segments and has never participated in the
// case-insensitive name folding. That asymmetry is deliberate and matches
// the comparer this type replaces.
func (s *ModuleSpecification) UniqueKey() UniqueKey {
	key := UniqueKey{
		name:           strings.ToLower(s.name),
		maximumVersion: s.maximumVersion,
	}
	if s.guid != nil {
		key.guid = *s.guid
		key.hasGUID = true
	}
	if s.version != nil {
		key.version = s.version.String()
	}
	if s.requiredVersion != nil {
		key.requiredVersion = s.requiredVersion.String()
	}
	return key
}

// Equal reports whether two specifications are structurally equal: names
// match case-insensitively and all other members match exactly. Either or
// both operands may be nil; two nils are equal.
func (s *ModuleSpecification) Equal(other *ModuleSpecification) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.UniqueKey() == other.UniqueKey()
}
