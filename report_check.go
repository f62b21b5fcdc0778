package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	opts := addCommonFlags(fs)
	fs.Parse(args)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	report, err := findMissingTranslations(cfg)
	if err != nil {
		return err
	}
	return checkReport(os.Stdout, report)
}

// checkReport prints one OK/FAIL line per audit section and returns an
// error when any section has findings, so the caller exits non-zero.
func checkReport(w io.Writer, report *Report) error {
	passed := true
	printResult := func(label string, count int) {
		status := "OK"
		if count > 0 {
			status = "FAIL"
			passed = false
		}
		fmt.Fprintf(w, "  %-34s %4d  %s\n", label+":", count, status)
	}

	printResult("keys missing from other locales", report.TotalDiffKeys)
	printResult("untranslated static text", report.TotalStatic)
	printResult("undefined transloco pipe keys", report.TotalLookup)

	if passed {
		fmt.Fprintln(w, "All checks passed.")
		return nil
	}
	return fmt.Errorf("checks failed")
}
