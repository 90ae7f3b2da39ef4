// Package docmodel holds the data records shared between the build stages.
package docmodel

// Artifact is one generated output page or copied asset. It is identified by
// four related path fields that must all refer to the same logical location
// once the build's rename pass has run.
type Artifact struct {
	SrcPath     string // absolute path of the source file
	RelPath     string // source path relative to the docs root, slash form
	DestPath    string // destination path relative to the output dir, platform separators
	DestURI     string // destination path in forward-slash form
	URL         string // public URL path of the page
	AbsDestPath string // absolute destination path
	Title       string // display title of the page
	Content     []byte // rendered HTML (pages) or raw bytes (assets)
	IsAsset     bool   // true for non-markup files copied verbatim
}
