// Package rename strips filename ordering prefixes from the path fields of
// generated site artifacts, so that a "01_" sort hint in a source filename
// never leaks into the published site structure.
package rename

import (
	"path/filepath"

	"git.home.luguber.info/inful/docsmith/internal/docmodel"
	"git.home.luguber.info/inful/docsmith/internal/nav"
)

// Item strips the ordering prefix from every segment of p, preserving its
// absolute or relative form. Pure string manipulation; segments without a
// prefix pass through unchanged, so Item is idempotent. Recursion drops one
// segment per call and terminates at the path root.
func Item(p string) string {
	parent := filepath.Dir(p)
	base := nav.StripOrderPrefix(filepath.Base(p))
	if parent != p {
		parent = Item(parent)
	} else if !filepath.IsAbs(p) {
		parent = ""
	}
	return filepath.Join(parent, base)
}

// Artifacts rewrites the four path-bearing fields of every artifact in place
// and returns the same slice. The destination path and absolute destination
// path are renamed from their own prior values; the destination URI and public
// URL are re-derived from the renamed destination path in forward-slash form,
// which keeps all four fields pointing at the same logical location even if a
// URL had previously diverged. Safe to invoke twice.
func Artifacts(artifacts []*docmodel.Artifact) []*docmodel.Artifact {
	for _, a := range artifacts {
		a.DestPath = Item(a.DestPath)
		a.DestURI = filepath.ToSlash(a.DestPath)
		a.URL = a.DestURI
		a.AbsDestPath = Item(a.AbsDestPath)
	}
	return artifacts
}
