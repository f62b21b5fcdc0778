package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
)

func runMissing(args []string) error {
	fset := flag.NewFlagSet("missing", flag.ExitOnError)
	opts := addCommonFlags(fset)
	format := fset.String("format", "text", "Output format: text, json")
	fset.Parse(args)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	refDict, err := loadLocale(cfg.Reference)
	if err != nil {
		return err
	}
	refKeys := keySet(refDict)

	missing := make(map[string][]string)
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
		if diff := diffMissing(refKeys, keySet(dict)); len(diff) > 0 {
			missing[path] = diff
		}
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(missing)
	}

	if len(missing) == 0 {
		fmt.Printf("No keys missing compared to %s.\n", localeName(cfg.Reference))
		return nil
	}
	for _, path := range sortedKeys(missing) {
		fmt.Printf("%s: %d missing\n", localeName(path), len(missing[path]))
		for _, key := range missing[path] {
			fmt.Printf("  %s\n", key)
		}
	}
	return nil
}
