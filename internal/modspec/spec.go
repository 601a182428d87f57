// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package modspec defines ModuleSpecification, the value object describing
// one entry in a "required modules" list: a module name plus an optional
// identity GUID and an optional version constraint, which may be exact
// (RequiredVersion), a minimum (Version), or a minimum/maximum range
// (Version together with MaximumVersion).
//
// A ModuleSpecification is immutable once constructed and carries no
// references to shared state, so values may be freely copied and compared
// across goroutines without locking.
package modspec

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	version "github.com/hashicorp/go-version"
)

// ModuleSpecification describes a required module and the versions of it
// that are acceptable.
//
// Construct values with New, FromMap, or TryParse; the zero value is not
// meaningful.
type ModuleSpecification struct {
	name            string
	guid            *uuid.UUID
	version         *version.Version
	requiredVersion *version.Version
	maximumVersion  string
}

// New returns a specification carrying only a module name, with no version
// constraint at all. Consumers must treat such a specification as matching
// any version of the named module.
//
// This is the one construction path allowed to produce a specification with
// no version constraint; FromMap requires at least one.
func New(name string) (*ModuleSpecification, error) {
	if name == "" {
		return nil, &ArgumentError{Argument: "name"}
	}
	return &ModuleSpecification{name: name}, nil
}

// Name returns the module name. Name comparisons are case-insensitive
// throughout this package.
func (s *ModuleSpecification) Name() string {
	return s.name
}

// GUID returns the module identity GUID, or nil if the specification does
// not constrain identity. The returned pointer refers to a copy, so callers
// cannot disturb the specification through it.
func (s *ModuleSpecification) GUID() *uuid.UUID {
	if s.guid == nil {
		return nil
	}
	g := *s.guid
	return &g
}

// Version returns the minimum-version constraint (the "ModuleVersion"
// member), or nil if none was given.
func (s *ModuleSpecification) Version() *version.Version {
	return s.version
}

// RequiredVersion returns the exact-version constraint, or nil if none was
// given.
func (s *ModuleSpecification) RequiredVersion() *version.Version {
	return s.requiredVersion
}

// MaximumVersion returns the upper-bound constraint, or the empty string if
// none was given. The value is kept as the original text rather than a
// parsed version because the final segment may be a "*" wildcard, which is
// interpreted only at resolution time.
func (s *ModuleSpecification) MaximumVersion() string {
	return s.maximumVersion
}

// String returns the canonical textual form of the specification. A
// specification with no GUID and no version constraint renders as the bare
// module name; anything else renders as a constant map literal with members
// in a fixed order.
//
// Quote characters embedded in the name or version text are not escaped, so
// the result is not guaranteed to be parseable by TryParse. This matches
// long-standing behavior that downstream tooling depends on; do not "fix"
// it here.
func (s *ModuleSpecification) String() string {
	if s.guid == nil && s.version == nil && s.requiredVersion == nil && s.maximumVersion == "" {
		return s.name
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "@{ ModuleName = '%s'", s.name)
	if s.guid != nil {
		fmt.Fprintf(&buf, "; Guid = '{%s}'", s.guid)
	}
	switch {
	case s.requiredVersion != nil:
		fmt.Fprintf(&buf, "; RequiredVersion = '%s'", s.requiredVersion.Original())
	case s.version != nil:
		fmt.Fprintf(&buf, "; ModuleVersion = '%s'", s.version.Original())
	}
	if s.maximumVersion != "" {
		fmt.Fprintf(&buf, "; MaximumVersion = '%s'", s.maximumVersion)
	}
	buf.WriteString(" }")
	return buf.String()
}
