package views

import (
	"github.com/Vovarama1992/salesacademy/internal/models"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func Videos(videos []models.Video) cmp.Node {
	return g.Section(
		g.ID("videos"),
		g.Class("py-16 bg-gray-50"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-4"),
			g.H2(g.Class("text-2xl font-semibold"), cmp.Text("Video Library")),
			g.P(g.Class("text-gray-600"), cmp.Text("Watch training videos hosted on Vimeo.")),
			g.Div(
				g.Class("mt-6 grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				cmp.Map(videos, videoCard),
			),
		),
	)
}

func videoCard(v models.Video) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-lg shadow p-4"),
		g.Div(
			g.Class("aspect-video w-full rounded overflow-hidden bg-black"),
			g.IFrame(
				g.Src(v.EmbedURL()),
				g.Class("w-full h-full"),
				cmp.Attr("frameborder", "0"),
				cmp.Attr("allow", "autoplay; fullscreen; picture-in-picture"),
				cmp.Attr("allowfullscreen"),
			),
		),
		g.H3(g.Class("mt-3 font-medium"), cmp.Text(v.Title)),
		cmp.If(v.Description != "", g.P(g.Class("text-sm text-gray-600"), cmp.Text(v.Description))),
	)
}
