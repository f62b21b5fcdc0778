package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// loadLocale reads a translation dictionary and returns its flat
// key-to-value mapping. Values that are not strings are stringified;
// only the keys matter downstream.
func loadLocale(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	dict := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			dict[k] = val
		default:
			dict[k] = fmt.Sprintf("%v", val)
		}
	}
	return dict, nil
}

// keySet returns the set of keys of a dictionary.
func keySet(dict map[string]string) map[string]bool {
	set := make(map[string]bool, len(dict))
	for k := range dict {
		set[k] = true
	}
	return set
}

// localeName renders a locale file path for report headers, e.g.
// "i18n/de.json (German)". Files whose basename is not a BCP-47 tag are
// rendered as the bare path.
func localeName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tag, err := language.Parse(base)
	if err != nil {
		return path
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return path
	}
	return fmt.Sprintf("%s (%s)", path, name)
}

// sortedKeys returns the sorted keys of a string-keyed map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
