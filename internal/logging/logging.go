// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide logger. Most code logs
// through the standard library's log package with a "[LEVEL]" prefix on
// each message; this package routes those messages through an hclog logger
// whose level is chosen by the MODSPEC_LOG environment variable.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// The env var that selects the log level. Unset or empty means logging is
// off apart from errors.
const envLog = "MODSPEC_LOG"

var (
	// logger is the global hclog logger.
	logger hclog.Logger

	// logWriter is an io.Writer that routes "[LEVEL] message" lines into
	// the global logger, for use via the standard log package.
	logWriter io.Writer
)

func init() {
	logger = newHCLogger("modspec")
	logWriter = logger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels:              true,
		InferLevelsWithTimestamp: true,
	})

	// Stdlib log calls throughout the codebase land on the global logger.
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(logWriter)
}

func newHCLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:              name,
		Level:             globalLogLevel(),
		Output:            os.Stderr,
		IndependentLevels: true,
	})
}

// HCLogger returns the global logger, for handing to components that want
// structured logging rather than the stdlib log package.
func HCLogger() hclog.Logger {
	return logger
}

// IsDebugOrHigher returns true if the current log level is at least as
// verbose as debug, for callers that want to skip building expensive log
// output when nobody will see it.
func IsDebugOrHigher() bool {
	return logger.IsDebug()
}

func globalLogLevel() hclog.Level {
	envLevel := strings.ToUpper(os.Getenv(envLog))
	switch envLevel {
	case "":
		return hclog.Error
	case "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return hclog.LevelFromString(envLevel)
	case "JSON":
		// Accepted for compatibility with tooling that sets the level to
		// request machine-readable output; treated as maximum verbosity.
		return hclog.Trace
	default:
		// An unrecognized level means the user wanted something, so give
		// them everything.
		return hclog.Trace
	}
}
