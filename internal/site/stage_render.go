package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsmith/internal/frontmatter"
	"git.home.luguber.info/inful/docsmith/internal/markdown"
	"git.home.luguber.info/inful/docsmith/internal/nav"
)

// pageShell is deliberately minimal: the visual theme is outside this tool's
// scope.
var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.Site}}</title>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// stageRender loads every artifact's content; pages get their frontmatter
// split off and the Markdown body rendered to HTML inside the page shell.
// Title precedence: frontmatter title, then first heading, then the formatted
// filename stem.
func stageRender(_ context.Context, bs *BuildState) error {
	for _, a := range bs.Artifacts {
		raw, err := os.ReadFile(a.SrcPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", a.SrcPath, err)
		}
		if a.IsAsset {
			a.Content = raw
			continue
		}

		fm, body, _, err := frontmatter.Split(raw)
		if err != nil {
			return fmt.Errorf("frontmatter in %s: %w", a.RelPath, err)
		}
		fields, err := frontmatter.Fields(fm)
		if err != nil {
			return fmt.Errorf("frontmatter in %s: %w", a.RelPath, err)
		}

		a.Title = frontmatter.Title(fields)
		if a.Title == "" {
			a.Title = markdown.FirstHeading(body)
		}
		if a.Title == "" {
			stem := strings.TrimSuffix(filepath.Base(a.RelPath), filepath.Ext(a.RelPath))
			a.Title = nav.FormatTitle(nav.StripOrderPrefix(stem))
		}

		html, err := markdown.Render(body)
		if err != nil {
			return fmt.Errorf("render %s: %w", a.RelPath, err)
		}

		var buf bytes.Buffer
		err = pageShell.Execute(&buf, struct {
			Title string
			Site  string
			Body  template.HTML
		}{a.Title, bs.Cfg.Site.Title, template.HTML(html)})
		if err != nil {
			return fmt.Errorf("page shell for %s: %w", a.RelPath, err)
		}
		a.Content = buf.Bytes()
	}
	return nil
}
