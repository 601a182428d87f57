// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package maplit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_valid(t *testing.T) {
	tests := []struct {
		input string
		want  []Entry
	}{
		{
			`@{}`,
			nil,
		},
		{
			`@{ModuleName='Foo'}`,
			[]Entry{{Key: "ModuleName", Value: "Foo"}},
		},
		{
			`@{ ModuleName = 'Foo'; ModuleVersion = '1.0' }`,
			[]Entry{
				{Key: "ModuleName", Value: "Foo"},
				{Key: "ModuleVersion", Value: "1.0"},
			},
		},
		{
			`@{ ModuleName = "Foo"; RequiredVersion = 2.1.4 }`,
			[]Entry{
				{Key: "ModuleName", Value: "Foo"},
				{Key: "RequiredVersion", Value: Number("2.1.4")},
			},
		},
		{
			"@{\n  ModuleName = 'Foo'\n  MaximumVersion = '2.*'\n}",
			[]Entry{
				{Key: "ModuleName", Value: "Foo"},
				{Key: "MaximumVersion", Value: "2.*"},
			},
		},
		{
			`@{ ModuleName = 'It''s'; Count = 3 }`,
			[]Entry{
				{Key: "ModuleName", Value: "It's"},
				{Key: "Count", Value: Number("3")},
			},
		},
		{
			"@{ Name = \"a`\"b\"; Flag = $true; Other = $false }",
			[]Entry{
				{Key: "Name", Value: "a\"b"},
				{Key: "Flag", Value: true},
				{Key: "Other", Value: false},
			},
		},
		{
			`@{ ModuleName = 'Foo'; }`,
			[]Entry{{Key: "ModuleName", Value: "Foo"}},
		},
		{
			"  @{ ModuleName = 'Foo' }  ",
			[]Entry{{Key: "ModuleName", Value: "Foo"}},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := Parse(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong entries\n%s", diff)
			}
		})
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []string{
		``,
		`Foo`,
		`not a valid literal`,
		`@{ ModuleName = 'Foo'`,          // unterminated
		`@{ ModuleName = 'Foo' } trailing`,
		`@{ ModuleName = $name }`,        // variable reference
		`@{ ModuleName = Get-Name }`,     // bare word / command
		`@{ ModuleName = 'Foo' Junk = 1 }`, // missing separator
		`@{ ModuleName = (1 + 2) }`,      // subexpression
		`@{ ModuleName = "a$b" }`,        // interpolation
		`@{ ModuleName = 'a; 2 = b }`,    // unterminated string
		`@{ ModuleName = 1. }`,           // malformed number
		`@{ ModuleName = 'a'; modulename = 'b' }`, // duplicate key
		`@{ = 'Foo' }`,                   // missing key
		`@{ ModuleName 'Foo' }`,          // missing equals
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			if err == nil {
				t.Fatalf("unexpected success; got %#v", got)
			}
		})
	}
}

func TestParse_errorPosition(t *testing.T) {
	_, err := Parse(`@{ ModuleName = $name }`)
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("wrong error type %T; want *ParseError", err)
	}
	if parseErr.Pos != 16 {
		t.Errorf("wrong error position %d; want 16", parseErr.Pos)
	}
}
