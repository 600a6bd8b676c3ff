package views

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const heroScene = "https://prod.spline.design/IKzHtP5ThSO83edK/scene.splinecode"

func Nav() cmp.Node {
	link := func(href, label string) cmp.Node {
		return g.A(g.Href(href), g.Class("hover:text-black"), cmp.Text(label))
	}
	return g.Div(
		g.Class("fixed top-0 left-0 right-0 z-50 bg-white/60 backdrop-blur border-b border-white/30"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-4 py-3 flex items-center justify-between"),
			g.Div(
				g.Class("flex items-center gap-2"),
				g.Div(g.Class("w-8 h-8 rounded bg-gradient-to-br from-blue-500 to-indigo-600")),
				g.Span(g.Class("font-semibold"), cmp.Text("AI Sales Training")),
			),
			g.Div(
				g.Class("hidden md:flex items-center gap-6 text-sm text-gray-700"),
				link("#videos", "Videos"),
				link("#community", "Community"),
				link("#resources", "Resources"),
				link("#admin", "Admin"),
			),
			g.A(g.Href("#subscribe"), g.Class("px-4 py-2 rounded-md bg-black text-white text-sm"), cmp.Text("Subscribe $49/mo")),
		),
	)
}

func Hero() cmp.Node {
	return g.Section(
		g.Class("relative h-[70vh] w-full overflow-hidden"),
		cmp.El("spline-viewer", cmp.Attr("url", heroScene), g.Class("block w-full h-full")),
		g.Div(g.Class("absolute inset-0 bg-gradient-to-t from-white via-white/40 to-transparent pointer-events-none")),
		g.Div(
			g.Class("absolute bottom-10 left-1/2 -translate-x-1/2 text-center max-w-3xl px-6"),
			g.H1(g.Class("text-3xl md:text-5xl font-semibold text-gray-900"), cmp.Text("Level up your sales game with AI")),
			g.P(g.Class("mt-3 text-gray-700"), cmp.Text("Bite-sized video lessons, community playbooks, and a living prompt library. Subscribe monthly, cancel anytime.")),
			g.A(g.Href("#subscribe"), g.Class("inline-block mt-6 px-6 py-3 rounded-lg bg-blue-600 text-white"), cmp.Text("Get Started — $49/mo")),
		),
	)
}

func Footer(year int) cmp.Node {
	return g.Footer(
		g.Class("py-10 border-t text-center text-sm text-gray-600"),
		cmp.Text("© "+strconv.Itoa(year)+" AI Sales Training"),
	)
}
