package main

import (
	"errors"
	"io/fs"
)

// Report is the result of one audit run. Built once, never mutated after
// return.
type Report struct {
	// MissingKeys maps each non-reference locale file to the flat keys
	// it lacks compared to the reference dictionary.
	MissingKeys map[string][]string `json:"missingKeys"`
	// MissingStatic maps untranslated static text to the template files
	// it appears in.
	MissingStatic map[string][]string `json:"missingStatic"`
	// MissingLookup maps undefined transloco pipe keys to the template
	// files they appear in.
	MissingLookup map[string][]string `json:"missingLookup"`

	TotalStatic   int `json:"totalMissingStatic"`
	TotalLookup   int `json:"totalMissingLookup"`
	TotalDiffKeys int `json:"totalMissingKeys"`
}

func newReport() *Report {
	return &Report{
		MissingKeys:   make(map[string][]string),
		MissingStatic: make(map[string][]string),
		MissingLookup: make(map[string][]string),
	}
}

// findMissingTranslations runs the whole audit: load the reference
// dictionary, diff every other locale against it, scan the template tree,
// and classify extracted tokens against the union of all loaded locales.
//
// If the reference dictionary cannot be loaded the run is abandoned and an
// empty report is returned without an error. Any other locale failure
// skips that locale only.
func findMissingTranslations(cfg *auditConfig) (*Report, error) {
	report := newReport()

	refDict, err := loadLocale(cfg.Reference)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Errorf("Reference locale file not found: %s", cfg.Reference)
		} else {
			log.Errorf("Reference locale unusable: %v", err)
		}
		return report, nil
	}
	refKeys := keySet(refDict)

	// Key sets of every locale that loaded, reference included. This is
	// the translation surface tokens are classified against.
	localeKeys := map[string]map[string]bool{cfg.Reference: refKeys}

	for _, path := range cfg.Locales {
		if path == cfg.Reference {
			continue
		}
		dict, err := loadLocale(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warnf("Translation file not found, skipping: %s", path)
			} else {
				log.Warnf("Skipping locale: %v", err)
			}
			continue
		}
		keys := keySet(dict)
		localeKeys[path] = keys

		if missing := diffMissing(refKeys, keys); len(missing) > 0 {
			report.MissingKeys[path] = missing
			report.TotalDiffKeys += len(missing)
		}
	}

	templates, err := scanTemplates(cfg.Root, cfg.Extension, cfg.Entrypoint)
	if err != nil {
		return nil, err
	}
	classifyTokens(templates, knownKeys(localeKeys), report)

	return report, nil
}
