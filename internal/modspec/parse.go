// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modspec

import (
	"github.com/modspec/modspec/internal/maplit"
)

// TryParse attempts to interpret the given string as a constant map literal
// describing a module specification, e.g.:
//
//	@{ ModuleName = 'Utils'; ModuleVersion = '1.2.0' }
//
// It returns (nil, false) on any failure, whether the text is not a valid
// constant literal at all or it parses but describes an invalid member
// combination. This is a best-effort contract for callers such as manifest
// loaders and completion engines that only need a yes/no answer and fall
// back to other interpretations on failure; use FromMap directly when a
// specific error is needed.
func TryParse(input string) (*ModuleSpecification, bool) {
	entries, err := maplit.Parse(input)
	if err != nil {
		return nil, false
	}

	fields := make(map[string]any, len(entries))
	for _, entry := range entries {
		fields[entry.Key] = entry.Value
	}
	spec, err := FromMap(fields)
	if err != nil {
		return nil, false
	}
	return spec, true
}
