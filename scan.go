package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Extraction patterns for template content.
var (
	// Text strictly between a markup close ">" and the next "<",
	// rejecting any span that touches a dynamic-binding delimiter
	// ("{{" or "["). A heuristic, not an HTML parser: text adjacent to
	// bindings is skipped rather than resolved.
	staticTextPattern = regexp.MustCompile(`>([^<>{\[]*?)<`)
	// Transloco pipe expressions: {{ 'key' | transloco }}, whitespace
	// tolerant around the braces, quotes, and pipe.
	translocoPattern = regexp.MustCompile(`{{\s*'([^']+)'\s*\|\s*transloco\s*}}`)
)

// templateTokens holds the candidate tokens extracted from one template.
// Both sets are deduplicated within that file.
type templateTokens struct {
	Path   string
	Static map[string]bool
	Lookup map[string]bool
}

// extractTokens pulls static text and transloco pipe keys out of template
// content. Static matches are whitespace trimmed and empties discarded.
func extractTokens(path, content string) templateTokens {
	tokens := templateTokens{
		Path:   path,
		Static: make(map[string]bool),
		Lookup: make(map[string]bool),
	}
	for _, m := range staticTextPattern.FindAllStringSubmatch(content, -1) {
		if text := strings.TrimSpace(m[1]); text != "" {
			tokens.Static[text] = true
		}
	}
	for _, m := range translocoPattern.FindAllStringSubmatch(content, -1) {
		tokens.Lookup[m[1]] = true
	}
	return tokens
}

// scanTemplates walks root and extracts tokens from every eligible
// template file: name ends with extension and is not the entry point.
// Files that cannot be read as text are skipped with a warning.
func scanTemplates(root, extension, entrypoint string) ([]templateTokens, error) {
	var results []templateTokens
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, extension) || name == entrypoint {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("Skipping template %s: %v", path, err)
			return nil
		}
		content := string(data)
		if !utf8.ValidString(content) {
			log.Warnf("Skipping template with undecodable content: %s", path)
			return nil
		}
		tokens := extractTokens(path, content)
		log.Debugf("%s: %d static tokens, %d pipe keys", path, len(tokens.Static), len(tokens.Lookup))
		results = append(results, tokens)
		return nil
	})
	return results, err
}
