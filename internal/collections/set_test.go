// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package collections_test

import (
	"strings"
	"testing"

	"github.com/modspec/modspec/internal/collections"
)

func TestSet_has(t *testing.T) {
	set := collections.Set[string]{
		"a": {},
		"b": {},
	}
	set.Add("c")
	set.Add("c")

	testValueResults := map[string]bool{
		"a": true,
		"b": true,
		"c": true,
		"d": false,
		"e": false,
	}
	for value, has := range testValueResults {
		t.Run(value, func(t *testing.T) {
			if got := set.Has(value); got != has {
				t.Fatalf("Has(%q) = %v; want %v", value, got, has)
			}
		})
	}
}

func TestSet_string(t *testing.T) {
	testSet := collections.Set[string]{
		"c": {},
		"a": {},
		"b": {},
	}

	if str := testSet.String(); !strings.Contains(str, "a, b, c") {
		t.Fatalf("Incorrect string concatenation: %s", str)
	}
}
