package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	tailwindCDN     = "https://cdn.tailwindcss.com"
	splineViewerJS  = "https://unpkg.com/@splinetool/viewer/build/spline-viewer.js"
	defaultDocTitle = "AI Sales Training"
)

type PageConfig struct {
	Title       string
	Description string
}

// Layout wraps the sections into a full HTML document.
func Layout(cfg PageConfig, children ...cmp.Node) cmp.Node {
	if cfg.Title == "" {
		cfg.Title = defaultDocTitle
	}
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				cmp.If(cfg.Description != "", g.Meta(g.Name("description"), g.Content(cfg.Description))),
				g.TitleEl(cmp.Text(cfg.Title)),
				g.Script(g.Src(tailwindCDN)),
				g.Script(g.Type("module"), g.Src(splineViewerJS)),
			),
			g.Body(
				g.Div(
					g.Class("min-h-screen bg-white text-gray-900"),
					cmp.Group(children),
				),
			),
		),
	)
}
