// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	version "github.com/hashicorp/go-version"
)

// The members recognized in a specification map. Keys are matched
// case-insensitively against these, using plain byte-wise folding rather
// than any locale-aware collation.
const (
	memberModuleName      = "ModuleName"
	memberModuleVersion   = "ModuleVersion"
	memberRequiredVersion = "RequiredVersion"
	memberMaximumVersion  = "MaximumVersion"
	memberGUID            = "GUID"
)

var validMembers = []string{
	memberModuleName,
	memberModuleVersion,
	memberRequiredVersion,
	memberMaximumVersion,
	memberGUID,
}

// FromMap builds a specification from a heterogeneous member map, as found
// in a module manifest's "required modules" list.
//
// Keys are matched case-insensitively against the recognized member set;
// unrecognized keys are collected across the whole map and reported
// together in a single InvalidMembersError. A value that fails to convert
// to its member's type aborts immediately with a MemberConversionError.
//
// After mapping, the member combination is validated in a fixed order of
// precedence: unrecognized keys, then a missing name, then a missing
// version constraint, then RequiredVersion conflicting with ModuleVersion,
// then RequiredVersion conflicting with MaximumVersion. Callers relying on
// a particular diagnostic must not assume any other ordering.
//
// Go map iteration is randomized, so members are processed in sorted key
// order to keep multi-key diagnostics deterministic.
func FromMap(fields map[string]any) (*ModuleSpecification, error) {
	if len(fields) == 0 {
		return nil, &ArgumentError{Argument: "fields"}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	spec := &ModuleSpecification{}
	var badMembers []string
	for _, key := range keys {
		raw := fields[key]
		var err error
		switch {
		case strings.EqualFold(key, memberModuleName):
			spec.name, err = stringValue(memberModuleName, raw)
		case strings.EqualFold(key, memberModuleVersion):
			spec.version, err = versionValue(memberModuleVersion, raw)
		case strings.EqualFold(key, memberRequiredVersion):
			spec.requiredVersion, err = versionValue(memberRequiredVersion, raw)
		case strings.EqualFold(key, memberMaximumVersion):
			spec.maximumVersion, err = stringValue(memberMaximumVersion, raw)
		case strings.EqualFold(key, memberGUID):
			spec.guid, err = guidValue(memberGUID, raw)
		default:
			badMembers = append(badMembers, key)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(badMembers) > 0 {
		return nil, &InvalidMembersError{Members: badMembers}
	}
	if spec.name == "" {
		return nil, &MissingNameError{}
	}
	if spec.version == nil && spec.requiredVersion == nil && spec.maximumVersion == "" {
		return nil, &MissingVersionError{Name: spec.name}
	}
	if spec.requiredVersion != nil && spec.version != nil {
		return nil, &ConflictingMembersError{
			Member:        memberModuleVersion,
			ConflictsWith: memberRequiredVersion,
		}
	}
	if spec.requiredVersion != nil && spec.maximumVersion != "" {
		return nil, &ConflictingMembersError{
			Member:        memberMaximumVersion,
			ConflictsWith: memberRequiredVersion,
		}
	}
	return spec, nil
}

func stringValue(member string, raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", &MemberConversionError{
			Member: member,
			Err:    fmt.Errorf("cannot convert %T to a string", raw),
		}
	}
}

func versionValue(member string, raw any) (*version.Version, error) {
	var text string
	switch v := raw.(type) {
	case *version.Version:
		return v, nil
	case version.Version:
		return &v, nil
	case string:
		text = v
	case fmt.Stringer:
		text = v.String()
	default:
		return nil, &MemberConversionError{
			Member: member,
			Err:    fmt.Errorf("cannot convert %T to a version number", raw),
		}
	}
	ver, err := version.NewVersion(text)
	if err != nil {
		return nil, &MemberConversionError{Member: member, Err: err}
	}
	return ver, nil
}

func guidValue(member string, raw any) (*uuid.UUID, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return &v, nil
	case *uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, &MemberConversionError{Member: member, Err: err}
		}
		return &id, nil
	case fmt.Stringer:
		id, err := uuid.Parse(v.String())
		if err != nil {
			return nil, &MemberConversionError{Member: member, Err: err}
		}
		return &id, nil
	default:
		return nil, &MemberConversionError{
			Member: member,
			Err:    fmt.Errorf("cannot convert %T to a GUID", raw),
		}
	}
}
