// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package command contains the subcommands of the modspec CLI and the glue
// that binds them to the manifest, specification, and resolution packages.
package command

import (
	"io"

	"github.com/hashicorp/hcl/v2"
)

// EnvModulePath is the environment variable consulted for the installed
// module directory when the --module-path flag is not given.
const EnvModulePath = "MODSPEC_MODULE_PATH"

// diagWidth is the wrap width for rendered diagnostics. Fixed rather than
// taken from the terminal so that output is stable when redirected.
const diagWidth = 78

// Meta carries the process-level context shared by all commands: where to
// write output and whether to decorate it.
type Meta struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  bool
}

// showDiagnostics renders the given diagnostics to the error stream, with
// source snippets for any diagnostic that points into one of the given
// files.
func (m *Meta) showDiagnostics(files map[string]*hcl.File, diags hcl.Diagnostics) {
	if len(diags) == 0 {
		return
	}
	writer := hcl.NewDiagnosticTextWriter(m.Stderr, files, diagWidth, m.Color)
	// WriteDiagnostics can only fail if the underlying stream fails, and
	// there is nowhere better to report that.
	_ = writer.WriteDiagnostics(diags)
}
