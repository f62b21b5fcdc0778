package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var sectionHeader = color.New(color.FgCyan, color.Bold)

// printReport renders a report in text or JSON format.
func printReport(w io.Writer, report *Report, cfg *auditConfig, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printText(w, report, cfg)
	return nil
}

func printText(w io.Writer, report *Report, cfg *auditConfig) {
	sectionHeader.Fprintf(w, "Missing Keys Compared to %s\n", localeName(cfg.Reference))
	if len(report.MissingKeys) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, file := range sortedKeys(report.MissingKeys) {
		fmt.Fprintf(w, "  %s:\n", localeName(file))
		for _, key := range report.MissingKeys[file] {
			fmt.Fprintf(w, "    - %s\n", key)
		}
	}

	sectionHeader.Fprintln(w, "\nMissing Static Translations in Template Files")
	printBuckets(w, report.MissingStatic)

	sectionHeader.Fprintln(w, "\nMissing Transloco Pipe Keys")
	printBuckets(w, report.MissingLookup)

	sectionHeader.Fprintln(w, "\nSummary")
	fmt.Fprintf(w, "  Total missing static translations: %d\n", report.TotalStatic)
	fmt.Fprintf(w, "  Total missing transloco pipe keys: %d\n", report.TotalLookup)
	fmt.Fprintf(w, "  Total missing keys compared to reference: %d\n", report.TotalDiffKeys)
}

// printBuckets prints a token (or file) with its associated list, in
// sorted order for stable output.
func printBuckets(w io.Writer, buckets map[string][]string) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, token := range sortedKeys(buckets) {
		fmt.Fprintf(w, "  %s:\n", token)
		for _, entry := range buckets[token] {
			fmt.Fprintf(w, "    - %s\n", entry)
		}
	}
}
