package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// fileTokens is the JSON shape of one template's extracted tokens.
type fileTokens struct {
	File   string   `json:"file"`
	Static []string `json:"static"`
	Lookup []string `json:"lookup"`
}

func runTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	opts := addCommonFlags(fs)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	templates, err := scanTemplates(cfg.Root, cfg.Extension, cfg.Entrypoint)
	if err != nil {
		return err
	}

	if *format == "json" {
		out := make([]fileTokens, 0, len(templates))
		for _, t := range templates {
			out = append(out, fileTokens{
				File:   t.Path,
				Static: sortedKeys(t.Static),
				Lookup: sortedKeys(t.Lookup),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, t := range templates {
		fmt.Println(t.Path)
		for _, text := range sortedKeys(t.Static) {
			fmt.Printf("  text:   %s\n", text)
		}
		for _, key := range sortedKeys(t.Lookup) {
			fmt.Printf("  lookup: %s\n", key)
		}
	}
	return nil
}
