// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package modresolve matches module specifications against concrete
// installed module versions: deciding whether a single version satisfies a
// specification's constraints, and scanning a local directory tree of
// installed modules to pick the best available version.
package modresolve

import (
	"fmt"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/modspec/modspec/internal/modspec"
)

// maxSegment is the expansion of a trailing "*" in a maximum-version
// constraint: the largest value a version segment can hold in the module
// engines this tool interoperates with (a signed 32-bit integer).
const maxSegment = "2147483647"

// MaximumVersionBound converts a maximum-version constraint string into an
// inclusive upper bound. Only the final dotted segment may be the "*"
// wildcard; "2.*" expands to "2.2147483647" so that every 2.x version sorts
// at or below the bound while 3.0 sorts above it.
func MaximumVersionBound(maximum string) (*version.Version, error) {
	segments := strings.Split(maximum, ".")
	for i, segment := range segments {
		if segment != "*" {
			continue
		}
		if i != len(segments)-1 {
			return nil, fmt.Errorf("invalid maximum version %q: the \"*\" wildcard is only allowed in the final segment", maximum)
		}
		segments[i] = maxSegment
	}
	bound, err := version.NewVersion(strings.Join(segments, "."))
	if err != nil {
		return nil, fmt.Errorf("invalid maximum version %q: %w", maximum, err)
	}
	return bound, nil
}

// SatisfiedBy reports whether the given version satisfies the
// specification's constraints. An exact RequiredVersion must match
// precisely; otherwise the version must be at or above the minimum and at
// or below the (possibly wildcarded) maximum, whichever of those are set. A
// name-only specification with no constraints matches every version.
//
// The error return is non-nil only for a malformed MaximumVersion, which
// can't be detected earlier because maximums are carried as raw text.
func SatisfiedBy(spec *modspec.ModuleSpecification, v *version.Version) (bool, error) {
	if required := spec.RequiredVersion(); required != nil {
		return v.Equal(required), nil
	}
	if minimum := spec.Version(); minimum != nil && v.LessThan(minimum) {
		return false, nil
	}
	if maximum := spec.MaximumVersion(); maximum != "" {
		bound, err := MaximumVersionBound(maximum)
		if err != nil {
			return false, err
		}
		if v.GreaterThan(bound) {
			return false, nil
		}
	}
	return true, nil
}
