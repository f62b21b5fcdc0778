package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decred/slog"
	"gopkg.in/yaml.v3"
)

// Template eligibility defaults, matching the Angular layout this tool
// audits: every .html file is a template except the bootstrap page.
const (
	defaultExtension  = ".html"
	defaultEntrypoint = "index.html"
)

// auditConfig describes one audit run: where the templates live, which
// translation dictionaries exist, and which of them is authoritative.
type auditConfig struct {
	Root       string   `yaml:"root"`
	Reference  string   `yaml:"reference"`
	Locales    []string `yaml:"locales"`
	Extension  string   `yaml:"extension"`
	Entrypoint string   `yaml:"entrypoint"`
}

// loadConfig reads a YAML audit config, fills in defaults, and validates it.
func loadConfig(path string) (*auditConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg auditConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// validate fills in defaults and checks the run invariants. The reference
// dictionary must be one of the listed locale files.
func (c *auditConfig) validate() error {
	if c.Extension == "" {
		c.Extension = defaultExtension
	}
	if c.Entrypoint == "" {
		c.Entrypoint = defaultEntrypoint
	}
	if c.Root == "" {
		return fmt.Errorf("root directory is required")
	}
	if c.Reference == "" {
		return fmt.Errorf("reference locale file is required")
	}
	for _, l := range c.Locales {
		if l == c.Reference {
			return nil
		}
	}
	return fmt.Errorf("reference %s is not listed under locales", c.Reference)
}

// cliOptions holds the flags shared by every subcommand.
type cliOptions struct {
	config    string
	root      string
	reference string
	verbose   bool
}

func addCommonFlags(fs *flag.FlagSet) *cliOptions {
	opts := &cliOptions{}
	fs.StringVar(&opts.config, "config", "transloco-audit.yaml", "Path to the audit config file")
	fs.StringVar(&opts.root, "root", "", "Override the template root directory")
	fs.StringVar(&opts.reference, "reference", "", "Override the reference locale file")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	return opts
}

// loadConfig resolves the effective config for a subcommand: the YAML file
// with any flag overrides applied, re-validated.
func (o *cliOptions) loadConfig() (*auditConfig, error) {
	if o.verbose {
		log.SetLevel(slog.LevelDebug)
	}
	cfg, err := loadConfig(o.config)
	if err != nil {
		return nil, err
	}
	if o.root != "" {
		cfg.Root = o.root
	}
	if o.reference != "" {
		cfg.Reference = o.reference
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
