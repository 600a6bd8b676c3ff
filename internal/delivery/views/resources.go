package views

import (
	"github.com/Vovarama1992/salesacademy/internal/models"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func Resources(resources []models.Resource) cmp.Node {
	return g.Section(
		g.ID("resources"),
		g.Class("py-16 bg-gray-50"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-4"),
			g.H2(g.Class("text-2xl font-semibold"), cmp.Text("Resources")),
			g.P(g.Class("text-gray-600"), cmp.Text("Prompt library and helpful tools.")),
			g.Div(
				g.Class("mt-6 grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				cmp.Map(resources, resourceCard),
			),
		),
	)
}

func resourceCard(r models.Resource) cmp.Node {
	return g.A(
		g.Href(safeHref(r.URL)),
		g.Target("_blank"),
		g.Rel("noopener"),
		g.Class("bg-white rounded-lg shadow p-4 border hover:shadow-md transition"),
		g.Div(g.Class("text-xs uppercase tracking-wide text-gray-500"), cmp.Text(string(r.Type))),
		g.Div(g.Class("mt-1 font-medium"), cmp.Text(r.Title)),
		cmp.If(r.Description != "", g.Div(g.Class("text-sm text-gray-600 mt-1"), cmp.Text(r.Description))),
		cmp.If(len(r.Tags) > 0, g.Div(
			g.Class("mt-2 flex flex-wrap gap-1"),
			cmp.Map(r.Tags, func(tag string) cmp.Node {
				return g.Span(g.Class("text-xs bg-gray-100 rounded px-2 py-0.5"), cmp.Text(tag))
			}),
		)),
	)
}
