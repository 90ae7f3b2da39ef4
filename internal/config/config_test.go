package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfigWithDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  title: Fiddler Docs
docs:
  dir: ./docs
  categories: [inputs, processors, outputs]
  standalone: [index.md]
output:
  directory: ./site
nav:
  - Home: index.md
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Fiddler Docs", cfg.Site.Title)
	require.Equal(t, ".md", cfg.Docs.Extension)
	require.Equal(t, []string{"inputs", "processors", "outputs"}, cfg.Docs.Categories)
	require.Len(t, cfg.Nav, 1)
	require.Equal(t, "Home", cfg.Nav[0].Title)
	require.Equal(t, "index.md", cfg.Nav[0].Page)
}

func TestLoad_MissingTitleFails(t *testing.T) {
	path := writeConfig(t, `
docs:
  dir: ./docs
output:
  directory: ./site
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "site")
}

func TestLoad_BadExtensionFails(t *testing.T) {
	path := writeConfig(t, `
site:
  title: X
docs:
  dir: ./docs
  extension: md
output:
  directory: ./site
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dot")
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestInit_CreatesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsmith.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Site.Title)
	require.NotEmpty(t, cfg.Docs.Categories)

	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
