// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/modspec/modspec/internal/command"
	"github.com/modspec/modspec/internal/logging"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Importing the logging package routes the stdlib log output through
	// the level-filtered global logger; this call just makes the
	// dependency explicit.
	logging.HCLogger()

	meta := &command.Meta{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  isatty.IsTerminal(os.Stderr.Fd()),
	}

	rootCmd := command.CobraCommands(meta)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
