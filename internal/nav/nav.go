// Package nav derives a documentation site's navigation tree from the on-disk
// layout of its source files. Filenames may carry a two-digit ordering prefix
// ("01_") that controls sort order but never appears in displayed titles.
package nav

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsmith/internal/util/sets"
)

// Node is one entry in the navigation tree: either a leaf mapping a title to a
// page path relative to the docs root, or a group mapping a title to ordered
// children. A group always has at least one child; empty directories are never
// represented.
type Node struct {
	Title    string
	Page     string // relative page path, empty for groups
	Children []Node // nil for leaves
}

// IsGroup reports whether the node has nested children.
func (n Node) IsGroup() bool { return len(n.Children) > 0 }

// MarshalYAML renders the node in the single-key mapping form used by the site
// configuration: {Title: page.md} for leaves, {Title: [children]} for groups.
func (n Node) MarshalYAML() (any, error) {
	if n.IsGroup() {
		return map[string][]Node{n.Title: n.Children}, nil
	}
	return map[string]string{n.Title: n.Page}, nil
}

// UnmarshalYAML accepts the same single-key mapping form.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("nav entry must be a single-key mapping, got %s", value.Tag)
	}
	key, val := value.Content[0], value.Content[1]
	n.Title = key.Value
	switch val.Kind {
	case yaml.ScalarNode:
		n.Page = val.Value
		return nil
	case yaml.SequenceNode:
		return val.Decode(&n.Children)
	default:
		return fmt.Errorf("nav entry %q must map to a page path or a list", n.Title)
	}
}

// Builder scans a documentation tree and produces navigation nodes. It only
// reads through the FS capability, so tests can run against an in-memory tree.
type Builder struct {
	fs   FS
	root string
	ext  string
}

// New returns a Builder over root. ext is the documentation markup extension
// including the dot (".md"); files with any other extension are ignored.
func New(fsys FS, root, ext string) *Builder {
	return &Builder{fs: fsys, root: root, ext: ext}
}

// Scan lists root/rel and returns one node per eligible entry, in the
// lexicographic order of the raw filenames. Ordering prefixes therefore act as
// a sort key even though they are stripped from titles. Entries are skipped
// when their absolute path (or that of the containing directory) is in
// excluded, when a file's extension is not the markup extension, or when the
// filename stem starts with an underscore. Directories recurse with the same
// exclusion set; a directory yielding no children contributes nothing.
func (b *Builder) Scan(rel string, excluded sets.Set[string]) ([]Node, error) {
	dir := filepath.Join(b.root, filepath.FromSlash(rel))
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var nodes []Node
	for _, entry := range entries {
		name := entry.Name()
		if excluded.Has(dir) || excluded.Has(filepath.Join(dir, name)) {
			continue
		}
		if !entry.IsDir() && filepath.Ext(name) != b.ext {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.HasPrefix(stem, "_") {
			continue
		}
		title := FormatTitle(StripOrderPrefix(stem))

		if entry.IsDir() {
			children, err := b.Scan(path.Join(rel, name), excluded)
			if err != nil {
				return nil, err
			}
			if len(children) > 0 {
				nodes = append(nodes, Node{Title: title, Children: children})
			}
			continue
		}
		nodes = append(nodes, Node{Title: title, Page: path.Join(rel, name)})
	}
	return nodes, nil
}
