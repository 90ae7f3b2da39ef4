package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsmith/internal/docmodel"
	"git.home.luguber.info/inful/docsmith/internal/logfields"
)

// stageCollect walks the docs tree and creates one artifact record per source
// file. Markup files become pages with their extension swapped to .html;
// everything else is an asset copied verbatim. Underscore-prefixed files are
// collected too: they are hidden from the navigation, not from the site.
func stageCollect(_ context.Context, bs *BuildState) error {
	docsDir, err := filepath.Abs(bs.Cfg.Docs.Dir)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(bs.OutputDir)
	if err != nil {
		return err
	}
	ext := bs.Cfg.Docs.Extension

	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}

		a := &docmodel.Artifact{
			SrcPath: path,
			RelPath: filepath.ToSlash(rel),
		}
		if filepath.Ext(rel) == ext {
			a.DestPath = strings.TrimSuffix(rel, ext) + ".html"
		} else {
			a.DestPath = rel
			a.IsAsset = true
		}
		a.DestURI = filepath.ToSlash(a.DestPath)
		a.URL = a.DestURI
		a.AbsDestPath = filepath.Join(outDir, a.DestPath)

		bs.Artifacts = append(bs.Artifacts, a)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk docs dir: %w", err)
	}

	slog.Info("Collected artifacts", logfields.Count(len(bs.Artifacts)), logfields.Path(docsDir))
	return nil
}
