package main

import (
	"sort"
	"strings"
)

// flatKeys filters a key set down to flat keys, dropping any key that
// contains a dot. Dotted keys address nested objects and are not
// comparable across locales.
func flatKeys(keys map[string]bool) map[string]bool {
	flat := make(map[string]bool, len(keys))
	for k := range keys {
		if !strings.Contains(k, ".") {
			flat[k] = true
		}
	}
	return flat
}

// diffMissing returns the flat keys of ref that candidate lacks, sorted.
func diffMissing(ref, candidate map[string]bool) []string {
	refFlat := flatKeys(ref)
	candidateFlat := flatKeys(candidate)

	var missing []string
	for k := range refFlat {
		if !candidateFlat[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}
