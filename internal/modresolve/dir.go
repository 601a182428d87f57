// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package modresolve

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/spf13/afero"

	"github.com/modspec/modspec/internal/modspec"
)

// Dir represents a single local filesystem directory containing installed
// modules, laid out as <base>/<module name>/<version>/ with the module's
// content inside each version directory.
//
// Module names are matched case-insensitively, so two directories whose
// names differ only in case are treated as versions of the same module.
//
// Values returned from Dir methods are technically mutable due to the
// restrictions of the Go typesystem, but callers are not permitted to
// mutate any part of the returned data structures.
type Dir struct {
	baseDir string
	fs      afero.Afero

	// metaCache holds the modules found on the last scan, keyed by
	// lowercase module name. nil means the cache is cold. Nothing in this
	// package mutates the directory, so the cache is filled at most once
	// per Dir.
	metaCache map[string][]CachedModule
}

// CachedModule is one installed version of one module found in a Dir.
type CachedModule struct {
	// Name is the module name as spelled on disk.
	Name string

	// Version is the installed version, parsed from the directory name.
	Version *version.Version

	// PackageDir is the path of the directory holding this version's
	// content, relative to the process working directory.
	PackageDir string
}

// NewDir creates a Dir reading installed modules from the given base
// directory on the real filesystem.
func NewDir(baseDir string) *Dir {
	return NewDirWithFs(baseDir, afero.NewOsFs())
}

// NewDirWithFs is a variant of NewDir that reads through the given
// filesystem implementation. This is primarily for portable unit testing
// against an in-memory filesystem.
func NewDirWithFs(baseDir string, fsys afero.Fs) *Dir {
	return &Dir{
		baseDir: baseDir,
		fs:      afero.Afero{Fs: fsys},
	}
}

// BasePath returns the filesystem path of the base directory of this
// module directory.
func (d *Dir) BasePath() string {
	return filepath.Clean(d.baseDir)
}

// AllAvailableModules returns a description of all of the modules already
// installed in the directory, keyed by lowercase module name, with the
// versions for each name in ascending order.
//
// A missing base directory is not an error; it just means no modules are
// installed. Entries that don't fit the expected layout are skipped with a
// log line rather than failing the whole scan, so one stray directory
// can't make every module unresolvable.
func (d *Dir) AllAvailableModules() (map[string][]CachedModule, error) {
	if err := d.fillMetaCache(); err != nil {
		return nil, err
	}
	return d.metaCache, nil
}

// InstalledVersions returns the installed versions of the named module in
// ascending version order, or nil if the module is not installed at all.
func (d *Dir) InstalledVersions(name string) ([]CachedModule, error) {
	if err := d.fillMetaCache(); err != nil {
		return nil, err
	}
	return d.metaCache[strings.ToLower(name)], nil
}

// SelectNewestCompatible returns the newest installed version of the
// specification's module that satisfies its constraints, or nil if no
// installed version does.
func (d *Dir) SelectNewestCompatible(spec *modspec.ModuleSpecification) (*CachedModule, error) {
	installed, err := d.InstalledVersions(spec.Name())
	if err != nil {
		return nil, err
	}
	for i := len(installed) - 1; i >= 0; i-- {
		ok, err := SatisfiedBy(spec, installed[i].Version)
		if err != nil {
			return nil, err
		}
		if ok {
			return &installed[i], nil
		}
	}
	return nil, nil
}

func (d *Dir) fillMetaCache() error {
	if d.metaCache != nil {
		return nil
	}

	entries, err := d.fs.ReadDir(d.baseDir)
	if os.IsNotExist(err) {
		d.metaCache = map[string][]CachedModule{}
		return nil
	}
	if err != nil {
		return err
	}

	cache := make(map[string][]CachedModule)
	for _, entry := range entries {
		if !entry.IsDir() {
			log.Printf("[TRACE] modresolve: ignoring non-directory %s", filepath.Join(d.baseDir, entry.Name()))
			continue
		}
		name := entry.Name()
		nameDir := filepath.Join(d.baseDir, name)
		versionEntries, err := d.fs.ReadDir(nameDir)
		if err != nil {
			return err
		}
		for _, versionEntry := range versionEntries {
			if !versionEntry.IsDir() {
				log.Printf("[TRACE] modresolve: ignoring non-directory %s", filepath.Join(nameDir, versionEntry.Name()))
				continue
			}
			v, err := version.NewVersion(versionEntry.Name())
			if err != nil {
				log.Printf("[WARN] modresolve: ignoring %s with invalid version directory name", filepath.Join(nameDir, versionEntry.Name()))
				continue
			}
			key := strings.ToLower(name)
			cache[key] = append(cache[key], CachedModule{
				Name:       name,
				Version:    v,
				PackageDir: filepath.ToSlash(filepath.Join(nameDir, versionEntry.Name())),
			})
		}
	}

	for _, modules := range cache {
		sort.Slice(modules, func(i, j int) bool {
			return modules[i].Version.LessThan(modules[j].Version)
		})
	}

	d.metaCache = cache
	return nil
}
