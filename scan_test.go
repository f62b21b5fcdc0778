package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantStatic map[string]bool
		wantLookup map[string]bool
	}{
		{
			"static and pipe",
			`<div>Welcome</div>{{ 'greeting' | transloco }}`,
			set("Welcome"),
			set("greeting"),
		},
		{
			"interpolation adjacent text skipped",
			`<span>{{ user.name }}</span>`,
			set(),
			set(),
		},
		{
			"property binding adjacent text skipped",
			`<div>[innerText]</div>`,
			set(),
			set(),
		},
		{
			"attribute binding does not hide element text",
			`<li [class.active]="cur">Item</li>`,
			set("Item"),
			set(),
		},
		{
			"whitespace trimmed across lines",
			"<p>\n  Hello World\n</p>",
			set("Hello World"),
			set(),
		},
		{
			"duplicates collapse within a file",
			`<b>Hi</b><i>Hi</i>`,
			set("Hi"),
			set(),
		},
		{
			"empty spans discarded",
			`<div>   </div><span></span>`,
			set(),
			set(),
		},
		{
			"pipe without spaces",
			`{{'save'|transloco}}`,
			set(),
			set("save"),
		},
		{
			"pipe with generous spaces",
			`{{   'cancel'   |   transloco   }}`,
			set(),
			set("cancel"),
		},
		{
			"double-quoted pipe key not matched",
			`{{ "save" | transloco }}`,
			set(),
			set(),
		},
		{
			"dotted pipe key still extracted",
			`{{ 'nav.title' | transloco }}`,
			set(),
			set("nav.title"),
		},
		{
			"other pipes not matched",
			`{{ 'price' | currency }}`,
			set(),
			set(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractTokens("test.html", tc.content)
			if !reflect.DeepEqual(got.Static, tc.wantStatic) {
				t.Errorf("static = %v, want %v", got.Static, tc.wantStatic)
			}
			if !reflect.DeepEqual(got.Lookup, tc.wantLookup) {
				t.Errorf("lookup = %v, want %v", got.Lookup, tc.wantLookup)
			}
		})
	}
}

func TestExtractTokensIdempotent(t *testing.T) {
	content := `<div>Welcome</div><p>Back</p>{{ 'greeting' | transloco }}{{ 'farewell' | transloco }}`
	first := extractTokens("a.html", content)
	second := extractTokens("a.html", content)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent: %v vs %v", first, second)
	}
}

func TestScanTemplates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.html"), `<div>Alpha</div>`)
	writeFile(t, filepath.Join(root, "index.html"), `<div>Ignored</div>`)
	writeFile(t, filepath.Join(root, "notes.txt"), `<div>Not a template</div>`)
	writeFile(t, filepath.Join(root, "sub", "b.html"), `{{ 'beta' | transloco }}`)
	if err := os.WriteFile(filepath.Join(root, "bad.html"), []byte{0xff, 0xfe, '<'}, 0o644); err != nil {
		t.Fatal(err)
	}

	templates, err := scanTemplates(root, ".html", "index.html")
	if err != nil {
		t.Fatalf("scanTemplates: %v", err)
	}

	wantPaths := []string{
		filepath.Join(root, "a.html"),
		filepath.Join(root, "sub", "b.html"),
	}
	var gotPaths []string
	for _, tmpl := range templates {
		gotPaths = append(gotPaths, tmpl.Path)
	}
	if !reflect.DeepEqual(gotPaths, wantPaths) {
		t.Fatalf("scanned %v, want %v", gotPaths, wantPaths)
	}

	if !templates[0].Static["Alpha"] {
		t.Errorf("a.html static tokens = %v, want Alpha", templates[0].Static)
	}
	if !templates[1].Lookup["beta"] {
		t.Errorf("sub/b.html lookup tokens = %v, want beta", templates[1].Lookup)
	}
}

func TestScanTemplatesMissingRoot(t *testing.T) {
	_, err := scanTemplates(filepath.Join(t.TempDir(), "nope"), ".html", "index.html")
	if err == nil {
		t.Fatal("expected error for missing root directory")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
