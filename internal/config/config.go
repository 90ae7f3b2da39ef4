// Package config loads and validates the docsmith site configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsmith/internal/nav"
)

// Config represents the application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Docs   DocsConfig   `yaml:"docs"`
	Output OutputConfig `yaml:"output"`
	Nav    []nav.Node   `yaml:"nav,omitempty"` // pre-existing entries; derived nav is appended
}

// SiteConfig describes the published site.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
}

// DocsConfig describes the documentation source tree.
type DocsConfig struct {
	Dir        string   `yaml:"dir"`
	Extension  string   `yaml:"extension,omitempty"`  // markup extension, default ".md"
	Categories []string `yaml:"categories,omitempty"` // top-level dirs that become their own nav groups
	Standalone []string `yaml:"standalone,omitempty"` // root files excluded from the general sweep
	Exclude    []string `yaml:"exclude,omitempty"`    // extra paths (relative to dir) to keep out of the nav
}

// OutputConfig describes where the generated site is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // remove the output directory before building
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Site,
		validation.Field(&c.Site.Title, validation.Required),
	); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := validation.ValidateStruct(&c.Docs,
		validation.Field(&c.Docs.Dir, validation.Required),
		validation.Field(&c.Docs.Extension, validation.By(extensionShape)),
	); err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	if err := validation.ValidateStruct(&c.Output,
		validation.Field(&c.Output.Directory, validation.Required),
	); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func extensionShape(value any) error {
	ext, _ := value.(string)
	if ext == "" {
		return nil
	}
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("must start with a dot, got %q", ext)
	}
	return nil
}

// Load reads, defaults and validates the configuration at configPath. A .env
// file alongside the process is honored before the YAML is read.
func Load(configPath string) (*Config, error) {
	loadEnv()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Docs.Extension == "" {
		c.Docs.Extension = ".md"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
	}
	if v := os.Getenv("DOCSMITH_BASE_URL"); v != "" && c.Site.BaseURL == "" {
		c.Site.BaseURL = v
	}
}

const defaultConfig = `# docsmith configuration
site:
  title: "My Documentation"
  description: ""
  base_url: ""

docs:
  dir: ./docs
  extension: .md
  # Top-level directories listed here become their own navigation groups,
  # in this order, ahead of everything else.
  categories:
    - inputs
    - processors
    - outputs
  # Root-level pages handled by a hand-written nav entry; the general sweep
  # skips them.
  standalone:
    - index.md
    - getting_started.md
    - configuration.md
    - development.md

output:
  directory: ./site
  clean: true

nav:
  - Home: index.md
  - Getting Started: getting_started.md
  - Configuration: configuration.md
  - Development: development.md
`

// Init writes a commented default configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	return os.WriteFile(configPath, []byte(defaultConfig), 0o644)
}
