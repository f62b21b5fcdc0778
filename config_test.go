package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transloco-audit.yaml")
	writeFile(t, path, `
root: ./src
reference: ./src/assets/i18n/en.json
locales:
  - ./src/assets/i18n/en.json
  - ./src/assets/i18n/de.json
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Root != "./src" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if cfg.Reference != "./src/assets/i18n/en.json" {
		t.Errorf("Reference = %q", cfg.Reference)
	}
	if len(cfg.Locales) != 2 {
		t.Errorf("Locales = %v", cfg.Locales)
	}
	if cfg.Extension != defaultExtension {
		t.Errorf("Extension = %q, want default %q", cfg.Extension, defaultExtension)
	}
	if cfg.Entrypoint != defaultEntrypoint {
		t.Errorf("Entrypoint = %q, want default %q", cfg.Entrypoint, defaultEntrypoint)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transloco-audit.yaml")
	writeFile(t, path, `
root: ./app
reference: ./i18n/en.json
locales: [./i18n/en.json]
extension: .htm
entrypoint: main.htm
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Extension != ".htm" || cfg.Entrypoint != "main.htm" {
		t.Errorf("overrides not honored: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing root",
			"reference: en.json\nlocales: [en.json]\n",
			"root directory is required",
		},
		{
			"missing reference",
			"root: ./src\nlocales: [en.json]\n",
			"reference locale file is required",
		},
		{
			"reference not listed",
			"root: ./src\nreference: en.json\nlocales: [de.json, es.json]\n",
			"not listed under locales",
		},
		{
			"malformed yaml",
			"root: [unclosed\n",
			"parsing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			writeFile(t, path, tc.content)

			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}
