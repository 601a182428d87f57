// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/modspec/modspec/internal/manifest"
	"github.com/modspec/modspec/internal/modresolve"
)

func newResolveCommand(m *Meta, rootCmd *cobra.Command) {
	var modulePath string
	cmd := &cobra.Command{
		Use:   "resolve <manifest>",
		Short: "Resolve each required module against the installed module path",
		Long: "resolve loads the given manifest and, for every required module, selects\n" +
			"the newest installed version satisfying the specification. Installed\n" +
			"modules are expected under <module-path>/<name>/<version>/.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.runResolve(args[0], modulePath)
		},
	}
	cmd.Flags().StringVar(&modulePath, "module-path", "",
		"Directory containing installed modules (defaults to $"+EnvModulePath+", then ./modules)")
	rootCmd.AddCommand(cmd)
}

func (m *Meta) runResolve(path, modulePath string) error {
	if modulePath == "" {
		modulePath = os.Getenv(EnvModulePath)
	}
	if modulePath == "" {
		modulePath = "modules"
	}

	parser := manifest.NewParser(nil)
	mf, diags := parser.LoadManifestFile(path)
	m.showDiagnostics(parser.Files(), diags)
	if diags.HasErrors() {
		return fmt.Errorf("manifest %s is not valid", path)
	}

	log.Printf("[DEBUG] resolving %d required modules for %s against %s",
		len(mf.RequiredModules), mf.Name, modulePath)

	dir := modresolve.NewDir(modulePath)
	unresolved := 0
	for _, spec := range mf.RequiredModules {
		selected, err := dir.SelectNewestCompatible(spec)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", spec.Name(), err)
		}
		if selected == nil {
			unresolved++
			fmt.Fprintf(m.Stdout, "- %s: no installed version satisfies %s\n", spec.Name(), spec)
			continue
		}
		fmt.Fprintf(m.Stdout, "- %s %s (%s)\n", selected.Name, selected.Version, selected.PackageDir)
	}

	if unresolved > 0 {
		return fmt.Errorf("%d of %d required modules could not be resolved", unresolved, len(mf.RequiredModules))
	}
	return nil
}
