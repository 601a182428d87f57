// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modspec

import (
	"fmt"
	"strings"
)

// ArgumentError indicates that a required constructor argument was nil or
// empty.
type ArgumentError struct {
	Argument string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q must not be null or empty", e.Argument)
}

// InvalidMembersError indicates that a specification map contained one or
// more keys outside the recognized member set. The offending keys are
// collected across the whole map before this error is returned, so Members
// lists every unrecognized key, not just the first.
type InvalidMembersError struct {
	Members []string
}

func (e *InvalidMembersError) Error() string {
	return fmt.Sprintf(
		"invalid member(s) %s in module specification; valid members are %s",
		quoteJoin(e.Members), quoteJoin(validMembers),
	)
}

// MissingNameError indicates that a specification map carried no
// (non-empty) ModuleName member.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "module specification must include the 'ModuleName' member"
}

// MissingVersionError indicates that a specification map carried none of the
// version constraint members.
type MissingVersionError struct {
	Name string
}

func (e *MissingVersionError) Error() string {
	return fmt.Sprintf(
		"module specification for %q must include at least one of the 'ModuleVersion', 'RequiredVersion' or 'MaximumVersion' members",
		e.Name,
	)
}

// ConflictingMembersError indicates that two mutually-exclusive version
// constraint members were both present.
type ConflictingMembersError struct {
	Member        string
	ConflictsWith string
}

func (e *ConflictingMembersError) Error() string {
	return fmt.Sprintf(
		"the '%s' and '%s' members cannot both be used in a module specification",
		e.Member, e.ConflictsWith,
	)
}

// MemberConversionError indicates that the value supplied for a recognized
// member could not be converted to the member's type.
type MemberConversionError struct {
	Member string
	Err    error
}

func (e *MemberConversionError) Error() string {
	return fmt.Sprintf("invalid value for member '%s': %s", e.Member, e.Err)
}

func (e *MemberConversionError) Unwrap() error {
	return e.Err
}

// quoteJoin renders a list of member names as 'A', 'B', 'C' for use in
// error messages.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ", ")
}
