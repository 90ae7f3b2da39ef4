package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/logfields"
	"git.home.luguber.info/inful/docsmith/internal/nav"
)

// Manifest records what a build produced. Written as manifest.json next to
// the generated pages.
type Manifest struct {
	BuildID     string             `json:"build_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Pages       int                `json:"pages"`
	Assets      int                `json:"assets"`
	StagesMS    map[string]float64 `json:"stages_ms"`
}

// stageWrite persists every artifact under its (renamed) destination path and
// emits site.yaml (resolved site metadata plus navigation) and manifest.json.
func stageWrite(_ context.Context, bs *BuildState) error {
	pages, assets := 0, 0
	for _, a := range bs.Artifacts {
		dest := filepath.Join(bs.OutputDir, a.DestPath)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, a.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		if a.IsAsset {
			assets++
		} else {
			pages++
		}
	}

	resolved := struct {
		Site config.SiteConfig `yaml:"site"`
		Nav  []nav.Node        `yaml:"nav"`
	}{bs.Cfg.Site, bs.Nav}
	data, err := yaml.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("marshal site config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(bs.OutputDir, "site.yaml"), data, 0o644); err != nil {
		return err
	}

	m := Manifest{
		BuildID:     bs.BuildID,
		GeneratedAt: time.Now().UTC(),
		Pages:       pages,
		Assets:      assets,
		StagesMS:    map[string]float64{},
	}
	for name, d := range bs.Report.StageDurations {
		m.StagesMS[string(name)] = float64(d.Microseconds()) / 1000
	}
	mdata, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(bs.OutputDir, "manifest.json"), mdata, 0o644); err != nil {
		return err
	}

	bs.Recorder.AddArtifacts(len(bs.Artifacts))
	slog.Info("Site written",
		logfields.BuildID(bs.BuildID),
		logfields.Count(pages+assets),
		logfields.Path(bs.OutputDir))
	return nil
}
