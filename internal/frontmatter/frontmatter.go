// Package frontmatter separates `---` delimited YAML frontmatter from a
// Markdown body.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a frontmatter
// block but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

var delim = []byte("---\n")

// Split separates YAML frontmatter from the Markdown body. If the document
// does not start with a frontmatter delimiter, had is false and body is the
// full input.
func Split(content []byte) (fm, body []byte, had bool, err error) {
	if !bytes.HasPrefix(content, delim) {
		return nil, content, false, nil
	}
	rest := content[len(delim):]
	if bytes.HasPrefix(rest, delim) {
		return []byte{}, rest[len(delim):], true, nil
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+5:], true, nil
}

// Fields unmarshals a frontmatter block into a generic map. A nil or empty
// block yields an empty map.
func Fields(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(fm) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Title returns the title field of a frontmatter map, or "" when absent or not
// a string.
func Title(fields map[string]any) string {
	if t, ok := fields["title"].(string); ok {
		return t
	}
	return ""
}
