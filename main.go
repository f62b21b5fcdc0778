// transloco-audit reports missing translations in an Angular/Transloco
// project: flat keys absent from locale dictionaries compared to the
// reference dictionary, and static text or transloco pipe keys in HTML
// templates that no dictionary defines.
//
// Usage:
//
//	transloco-audit <subcommand> [flags]
//
// Run "transloco-audit" with no arguments for a list of subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/decred/slog"
)

var subcommands = map[string]func([]string) error{
	"audit":   runAudit,
	"missing": runMissing,
	"tokens":  runTokens,
	"check":   runCheck,
}

func main() {
	initLogging(slog.LevelInfo)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return
	}

	run, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: transloco-audit <subcommand> [flags]

Subcommands:
  audit    Full report: locale diff, untranslated static text, undefined pipe keys
  missing  Flat keys in the reference dictionary absent from other locales
  tokens   Extracted static text and transloco pipe keys per template file
  check    Lint check: non-zero exit when any audit section has findings

Run "transloco-audit <subcommand> -h" for subcommand-specific flags.`)
}
