// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modspec/modspec/internal/modspec"
)

func newShowCommand(m *Meta, rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <specification>",
		Short: "Print a module specification in its canonical form",
		Long: "show parses the given module specification, either a bare module name or\n" +
			"a constant map literal such as \"@{ ModuleName = 'Utils'; ModuleVersion = '1.0' }\",\n" +
			"and prints it back in canonical form.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.runShow(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}

func (m *Meta) runShow(input string) error {
	if strings.HasPrefix(strings.TrimSpace(input), "@{") {
		spec, ok := modspec.TryParse(input)
		if !ok {
			return fmt.Errorf("cannot interpret %q as a module specification literal", input)
		}
		fmt.Fprintln(m.Stdout, spec.String())
		return nil
	}

	spec, err := modspec.New(input)
	if err != nil {
		return fmt.Errorf("cannot use %q as a module name: %w", input, err)
	}
	fmt.Fprintln(m.Stdout, spec.String())
	return nil
}
