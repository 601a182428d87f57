// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modresolve

import (
	"testing"

	"github.com/spf13/afero"
)

func testDir(t *testing.T) *Dir {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{
		"modules/Utils/1.0.0",
		"modules/Utils/1.5.0",
		"modules/Utils/2.0.0",
		"modules/utils/2.1.0", // same module, different directory casing
		"modules/Web/0.9.0",
		"modules/Web/not-a-version", // skipped with a log line
		"modules/Empty",
	} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := afero.WriteFile(fs, "modules/stray-file", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return NewDirWithFs("modules", fs)
}

func TestDirAllAvailableModules(t *testing.T) {
	dir := testDir(t)

	all, err := dir.AllAvailableModules()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) != 2 {
		t.Fatalf("wrong module count %d; want 2 (got %#v)", len(all), all)
	}
	if got := len(all["utils"]); got != 4 {
		t.Errorf("wrong version count %d for utils; want 4", got)
	}
	if got := len(all["web"]); got != 1 {
		t.Errorf("wrong version count %d for web; want 1", got)
	}
}

func TestDirInstalledVersions(t *testing.T) {
	dir := testDir(t)

	// Lookup is case-insensitive and results are in ascending version order.
	installed, err := dir.InstalledVersions("UTILS")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var got []string
	for _, mod := range installed {
		got = append(got, mod.Version.Original())
	}
	want := []string{"1.0.0", "1.5.0", "2.0.0", "2.1.0"}
	if len(got) != len(want) {
		t.Fatalf("wrong versions %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrong versions %v; want %v", got, want)
		}
	}

	installed, err = dir.InstalledVersions("NoSuchModule")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if installed != nil {
		t.Errorf("unexpected versions %#v for uninstalled module", installed)
	}
}

func TestDirSelectNewestCompatible(t *testing.T) {
	dir := testDir(t)

	tests := []struct {
		name   string
		fields map[string]any
		want   string // "" means no compatible version
	}{
		{"newest in range", map[string]any{"ModuleName": "Utils", "ModuleVersion": "1.0", "MaximumVersion": "1.*"}, "1.5.0"},
		{"newest overall", map[string]any{"ModuleName": "Utils", "ModuleVersion": "1.0"}, "2.1.0"},
		{"exact", map[string]any{"ModuleName": "Utils", "RequiredVersion": "1.0.0"}, "1.0.0"},
		{"exact missing", map[string]any{"ModuleName": "Utils", "RequiredVersion": "9.9.9"}, ""},
		{"minimum too high", map[string]any{"ModuleName": "Web", "ModuleVersion": "1.0"}, ""},
		{"not installed", map[string]any{"ModuleName": "Ghost", "ModuleVersion": "1.0"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spec := mustSpec(t, test.fields)
			got, err := dir.SelectNewestCompatible(spec)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			switch {
			case test.want == "" && got != nil:
				t.Errorf("unexpected selection %s %s", got.Name, got.Version)
			case test.want != "" && got == nil:
				t.Errorf("no selection; want %s", test.want)
			case test.want != "" && got.Version.Original() != test.want:
				t.Errorf("wrong selection %s; want %s", got.Version.Original(), test.want)
			}
		})
	}
}

func TestDirMissingBaseDir(t *testing.T) {
	dir := NewDirWithFs("no-such-dir", afero.NewMemMapFs())
	all, err := dir.AllAvailableModules()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) != 0 {
		t.Errorf("unexpected modules %#v", all)
	}
}
