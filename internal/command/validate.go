// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modspec/modspec/internal/manifest"
)

func newValidateCommand(m *Meta, rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check whether a module manifest is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.runValidate(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}

func (m *Meta) runValidate(path string) error {
	parser := manifest.NewParser(nil)
	mf, diags := parser.LoadManifestFile(path)
	m.showDiagnostics(parser.Files(), diags)
	if diags.HasErrors() {
		return fmt.Errorf("manifest %s is not valid", path)
	}

	fmt.Fprintf(m.Stdout, "Manifest %s is valid: %s with %d required module(s).\n",
		path, describeModule(mf), len(mf.RequiredModules))
	return nil
}

func describeModule(mf *manifest.Manifest) string {
	if mf.Version != nil {
		return fmt.Sprintf("module %s %s", mf.Name, mf.Version.Original())
	}
	return fmt.Sprintf("module %s", mf.Name)
}
