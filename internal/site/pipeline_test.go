package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/nav"
)

func buildFixture(t *testing.T) (*config.Config, string) {
	t.Helper()
	docsDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "site")

	files := map[string]string{
		"index.md":                 "# Welcome\n",
		"getting_started.md":       "# Getting Started\n",
		"inputs/01_kafka.md":       "---\ntitle: Kafka Input\n---\nreads kafka\n",
		"inputs/02_sqs.md":         "# SQS\n",
		"processors/01_json.md":    "# JSON\n",
		"10_advanced/01_tuning.md": "# Tuning\n",
		"_draft.md":                "# Draft\n",
		"img/logo.png":             "not really a png",
	}
	for rel, content := range files {
		full := filepath.Join(docsDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}

	cfg := &config.Config{
		Site: config.SiteConfig{Title: "Fiddler Docs"},
		Docs: config.DocsConfig{
			Dir:        docsDir,
			Extension:  ".md",
			Categories: []string{"inputs", "processors"},
			Standalone: []string{"index.md", "getting_started.md"},
		},
		Output: config.OutputConfig{Directory: outDir, Clean: true},
		Nav:    []nav.Node{{Title: "Home", Page: "index.md"}},
	}
	return cfg, outDir
}

func TestBuild_EndToEnd(t *testing.T) {
	cfg, outDir := buildFixture(t)
	bs := NewBuildState(cfg, outDir, nil)

	require.NoError(t, Build(context.Background(), bs))
	require.Equal(t, "success", bs.Report.Outcome)

	// Renamed destinations: ordering prefixes never reach the output tree.
	for _, rel := range []string{
		"index.html",
		"getting_started.html",
		"inputs/kafka.html",
		"inputs/sqs.html",
		"processors/json.html",
		"advanced/tuning.html",
		"_draft.html",
		"img/logo.png",
		"site.yaml",
		"manifest.json",
	} {
		_, err := os.Stat(filepath.Join(outDir, rel))
		require.NoError(t, err, "expected output file %s", rel)
	}
	_, err := os.Stat(filepath.Join(outDir, "inputs/01_kafka.html"))
	require.True(t, os.IsNotExist(err))

	// Frontmatter title wins over filename-derived title.
	page, err := os.ReadFile(filepath.Join(outDir, "inputs/kafka.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<title>Kafka Input - Fiddler Docs</title>")

	// Assets are copied verbatim.
	logo, err := os.ReadFile(filepath.Join(outDir, "img/logo.png"))
	require.NoError(t, err)
	require.Equal(t, "not really a png", string(logo))
}

func TestBuild_SiteYAMLNavigation(t *testing.T) {
	cfg, outDir := buildFixture(t)
	bs := NewBuildState(cfg, outDir, nil)
	require.NoError(t, Build(context.Background(), bs))

	data, err := os.ReadFile(filepath.Join(outDir, "site.yaml"))
	require.NoError(t, err)

	var resolved struct {
		Site config.SiteConfig `yaml:"site"`
		Nav  []nav.Node        `yaml:"nav"`
	}
	require.NoError(t, yaml.Unmarshal(data, &resolved))
	require.Equal(t, "Fiddler Docs", resolved.Site.Title)

	// Pre-existing entries first, then categories in configured order, then
	// the general sweep.
	require.Len(t, resolved.Nav, 4)
	require.Equal(t, "Home", resolved.Nav[0].Title)
	require.Equal(t, "Inputs", resolved.Nav[1].Title)
	require.Equal(t, "Processors", resolved.Nav[2].Title)
	require.Equal(t, "Advanced", resolved.Nav[3].Title)

	inputs := resolved.Nav[1].Children
	require.Len(t, inputs, 2)
	require.Equal(t, "Kafka", inputs[0].Title)
	require.Equal(t, "inputs/01_kafka.md", inputs[0].Page)
	require.Equal(t, "Sqs", inputs[1].Title)

	// Hidden and standalone pages never surface in the derived nav.
	for _, n := range resolved.Nav {
		require.NotEqual(t, "Draft", n.Title)
		require.NotEqual(t, "Getting Started", n.Title)
	}
}

func TestBuild_ManifestCounts(t *testing.T) {
	cfg, outDir := buildFixture(t)
	bs := NewBuildState(cfg, outDir, nil)
	require.NoError(t, Build(context.Background(), bs))

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, bs.BuildID, m.BuildID)
	require.Equal(t, 7, m.Pages)
	require.Equal(t, 1, m.Assets)
	// The write stage's own duration is not yet known when it emits the
	// manifest, so every stage before it is present.
	require.Len(t, m.StagesMS, len(DefaultStages())-1)
}

func TestDeriveNav_MissingDocsDirFails(t *testing.T) {
	cfg := &config.Config{
		Site:   config.SiteConfig{Title: "X"},
		Docs:   config.DocsConfig{Dir: filepath.Join(t.TempDir(), "absent"), Extension: ".md"},
		Output: config.OutputConfig{Directory: t.TempDir()},
	}
	_, err := DeriveNav(cfg)
	require.Error(t, err)
}
