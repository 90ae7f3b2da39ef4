package site

import (
	"context"

	"git.home.luguber.info/inful/docsmith/internal/rename"
)

// stageRename is the artifact-renaming step. It rewrites the four path fields
// of every collected artifact so ordering prefixes never reach the published
// site. Idempotent: running it on already-renamed records changes nothing.
func stageRename(_ context.Context, bs *BuildState) error {
	bs.Artifacts = rename.Artifacts(bs.Artifacts)
	return nil
}
