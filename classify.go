package main

import "strings"

// knownKeys merges the key sets of every loaded locale into one union.
// A token covered by any locale counts as translated, so one precomputed
// set answers every membership test in constant time.
func knownKeys(localeKeys map[string]map[string]bool) map[string]bool {
	union := make(map[string]bool)
	for _, keys := range localeKeys {
		for k := range keys {
			union[k] = true
		}
	}
	return union
}

// classifyTokens buckets untranslated tokens into the report, keyed by
// token with one origin-file entry per occurrence. Pipe keys containing a
// dot address nested objects and are skipped before the membership test.
func classifyTokens(templates []templateTokens, known map[string]bool, report *Report) {
	for _, t := range templates {
		for _, text := range sortedKeys(t.Static) {
			if known[text] {
				continue
			}
			report.MissingStatic[text] = append(report.MissingStatic[text], t.Path)
			report.TotalStatic++
		}
		for _, key := range sortedKeys(t.Lookup) {
			if strings.Contains(key, ".") {
				continue
			}
			if known[key] {
				continue
			}
			report.MissingLookup[key] = append(report.MissingLookup[key], t.Path)
			report.TotalLookup++
		}
	}
}
