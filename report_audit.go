package main

import (
	"flag"
	"os"

	"github.com/fatih/color"
)

func runAudit(args []string) error {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	opts := addCommonFlags(fs)
	format := fs.String("format", "text", "Output format: text, json")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	fs.Parse(args)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if *noColor {
		color.NoColor = true
	}

	report, err := findMissingTranslations(cfg)
	if err != nil {
		return err
	}
	return printReport(os.Stdout, report, cfg, *format)
}
