// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/modspec/modspec/internal/logging"
	"github.com/modspec/modspec/version"
)

func newVersionCommand(m *Meta, rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the current modspec version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.runVersion()
		},
	}
	rootCmd.AddCommand(cmd)
}

func (m *Meta) runVersion() error {
	fmt.Fprintf(m.Stdout, "modspec v%s\n", version.String())
	if logging.IsDebugOrHigher() {
		for _, mod := range version.InterestingDependencies() {
			log.Printf("[DEBUG] using %s %s", mod.Path, mod.Version)
		}
	}
	return nil
}
