package site

import (
	"context"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/logfields"
	"git.home.luguber.info/inful/docsmith/internal/nav"
	"git.home.luguber.info/inful/docsmith/internal/util/sets"
)

// DeriveNav builds the navigation for a configuration: one scan per configured
// category (each becoming a top-level group, in configured order), then one
// sweep over the whole docs root with the category directories, standalone
// pages and configured exclusions kept out. The derived entries are appended
// after any nav list already present in the configuration. Exclusion sets are
// built fresh on every call; nothing is shared between builds.
func DeriveNav(cfg *config.Config) ([]nav.Node, error) {
	docsDir, err := filepath.Abs(cfg.Docs.Dir)
	if err != nil {
		return nil, err
	}
	builder := nav.New(nav.OS(), docsDir, cfg.Docs.Extension)

	var derived []nav.Node
	for _, category := range cfg.Docs.Categories {
		nodes, err := builder.Scan(category, sets.New[string]())
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			slog.Warn("Category has no eligible pages", logfields.Path(category))
			continue
		}
		title := nav.FormatTitle(nav.StripOrderPrefix(category))
		derived = append(derived, nav.Node{Title: title, Children: nodes})
	}

	excluded := sets.New[string]()
	for _, category := range cfg.Docs.Categories {
		excluded.Add(filepath.Join(docsDir, category))
	}
	for _, page := range cfg.Docs.Standalone {
		excluded.Add(filepath.Join(docsDir, page))
	}
	for _, extra := range cfg.Docs.Exclude {
		excluded.Add(filepath.Join(docsDir, extra))
	}

	rest, err := builder.Scan(".", excluded)
	if err != nil {
		return nil, err
	}
	derived = append(derived, rest...)

	return append(append([]nav.Node{}, cfg.Nav...), derived...), nil
}

// stageNav is the navigation-contribution step of the build pipeline.
func stageNav(_ context.Context, bs *BuildState) error {
	nodes, err := DeriveNav(bs.Cfg)
	if err != nil {
		return err
	}
	bs.Nav = nodes
	slog.Info("Navigation derived", logfields.Count(len(bs.Nav)))
	return nil
}
