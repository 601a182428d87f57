// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/spf13/cobra"
)

// CobraCommands builds the root command of the modspec CLI with all
// subcommands attached.
func CobraCommands(m *Meta) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modspec",
		Short: "Inspect, validate, and resolve module requirement manifests",
		Long: "modspec works with module manifests: files declaring a module's identity\n" +
			"and the specifications of the modules it requires. It can validate a\n" +
			"manifest, print specifications in their canonical form, and resolve each\n" +
			"requirement against a directory of installed modules.",
		// Commands print their own diagnostics and return an error only to
		// set the exit status, so the default reporting would duplicate it.
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	newValidateCommand(m, rootCmd)
	newShowCommand(m, rootCmd)
	newResolveCommand(m, rootCmd)
	newVersionCommand(m, rootCmd)

	return rootCmd
}
