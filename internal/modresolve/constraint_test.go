// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modresolve

import (
	"testing"

	version "github.com/hashicorp/go-version"

	"github.com/modspec/modspec/internal/modspec"
)

func mustSpec(t *testing.T, fields map[string]any) *modspec.ModuleSpecification {
	t.Helper()
	spec, err := modspec.FromMap(fields)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return spec
}

func TestSatisfiedBy(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		version string
		want    bool
	}{
		{"required exact match", map[string]any{"ModuleName": "Foo", "RequiredVersion": "1.2.0"}, "1.2.0", true},
		{"required no match above", map[string]any{"ModuleName": "Foo", "RequiredVersion": "1.2.0"}, "1.2.1", false},
		{"required no match below", map[string]any{"ModuleName": "Foo", "RequiredVersion": "1.2.0"}, "1.1.9", false},
		{"required normalized", map[string]any{"ModuleName": "Foo", "RequiredVersion": "1.0"}, "1.0.0", true},
		{"minimum met exactly", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0"}, "1.0.0", true},
		{"minimum exceeded", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0"}, "4.7.1", true},
		{"minimum not met", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0"}, "0.9.0", false},
		{"maximum plain met", map[string]any{"ModuleName": "Foo", "MaximumVersion": "2.0"}, "2.0.0", true},
		{"maximum plain exceeded", map[string]any{"ModuleName": "Foo", "MaximumVersion": "2.0"}, "2.0.1", false},
		{"maximum wildcard inside", map[string]any{"ModuleName": "Foo", "MaximumVersion": "2.*"}, "2.9.4", true},
		{"maximum wildcard boundary", map[string]any{"ModuleName": "Foo", "MaximumVersion": "2.*"}, "3.0.0", false},
		{"maximum bare wildcard", map[string]any{"ModuleName": "Foo", "MaximumVersion": "*"}, "99.0.0", true},
		{"range inside", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0", "MaximumVersion": "2.*"}, "1.5.0", true},
		{"range below", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0", "MaximumVersion": "2.*"}, "0.5.0", false},
		{"range above", map[string]any{"ModuleName": "Foo", "ModuleVersion": "1.0", "MaximumVersion": "2.*"}, "3.0.0", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spec := mustSpec(t, test.fields)
			v := version.Must(version.NewVersion(test.version))
			got, err := SatisfiedBy(spec, v)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != test.want {
				t.Errorf("SatisfiedBy(%s, %s) = %v; want %v", spec, v, got, test.want)
			}
		})
	}
}

func TestSatisfiedBy_nameOnly(t *testing.T) {
	spec, err := modspec.New("Foo")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, raw := range []string{"0.0.1", "1.0.0", "99.99.99"} {
		v := version.Must(version.NewVersion(raw))
		got, err := SatisfiedBy(spec, v)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !got {
			t.Errorf("a name-only specification must match %s", v)
		}
	}
}

func TestSatisfiedBy_malformedMaximum(t *testing.T) {
	spec := mustSpec(t, map[string]any{"ModuleName": "Foo", "MaximumVersion": "banana"})
	v := version.Must(version.NewVersion("1.0.0"))
	if _, err := SatisfiedBy(spec, v); err == nil {
		t.Fatal("unexpected success with malformed maximum version")
	}
}

func TestMaximumVersionBound(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2.0", "2.0.0"},
		{"2.*", "2.2147483647.0"},
		{"1.2.*", "1.2.2147483647"},
		{"*", "2147483647.0.0"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := MaximumVersionBound(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got.String() != test.want {
				t.Errorf("wrong bound %s; want %s", got, test.want)
			}
		})
	}
}

func TestMaximumVersionBound_invalid(t *testing.T) {
	for _, input := range []string{"*.2", "1.*.3", "banana", ""} {
		t.Run(input, func(t *testing.T) {
			if bound, err := MaximumVersionBound(input); err == nil {
				t.Fatalf("unexpected success: %s", bound)
			}
		})
	}
}
