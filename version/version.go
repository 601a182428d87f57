// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package version holds the release version of the modspec tool itself.
package version

import (
	version "github.com/hashicorp/go-version"
)

// Version is the main version number that is being run at the moment.
var Version = "0.2.0"

// Prerelease is a pre-release marker for the version. If this is ""
// then it means that it is a final release. Otherwise, this is a suffix
// like "dev" joined to the version with a dash.
var Prerelease = "dev"

// SemVer is an instance of version.Version representing the main version
// without any prerelease information.
var SemVer *version.Version

func init() {
	SemVer = version.Must(version.NewVersion(Version))
}

// String returns the complete version string, including prerelease.
func String() string {
	if Prerelease != "" {
		return Version + "-" + Prerelease
	}
	return Version
}
