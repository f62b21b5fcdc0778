package main

import (
	"os"

	"github.com/decred/slog"
)

// log is a logger that is initialized with no output filters, so callers
// that use this package as a library (and the tests) stay quiet until
// initLogging is called.
var log = slog.Disabled

// initLogging routes warnings about skipped locales and templates to
// stderr at the given level.
func initLogging(level slog.Level) {
	logger := slog.NewBackend(os.Stderr).Logger("AUDIT")
	logger.SetLevel(level)
	log = logger
}
