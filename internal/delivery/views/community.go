package views

import (
	"time"

	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// the channel picker submits the post form's fields too, so email and
// draft survive a channel switch
const communityForm = "community"

func Community(board *domain.CommunityBoard, now time.Time) cmp.Node {
	return g.Section(
		g.ID("community"),
		g.Class("py-16 bg-white"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-4"),
			g.Div(
				g.Class("flex items-end justify-between"),
				g.Div(
					g.H2(g.Class("text-2xl font-semibold"), cmp.Text("Community")),
					g.P(g.Class("text-gray-600"), cmp.Text("Share insights, wins, and questions.")),
				),
				g.Select(
					g.Name("channel"),
					cmp.Attr("form", communityForm),
					cmp.Attr("onchange", "this.form.action='/community/channel#community';this.form.submit()"),
					g.Class(inputClass("")),
					cmp.Map(models.Channels, func(ch models.Channel) cmp.Node {
						return g.Option(g.Value(string(ch)), cmp.If(ch == board.Channel(), g.Selected()), cmp.Text("#"+string(ch)))
					}),
				),
			),
			g.Div(
				g.Class("mt-6 grid md:grid-cols-3 gap-6"),
				g.Div(
					g.Class("md:col-span-2 bg-gray-50 rounded-lg p-4 border"),
					g.Div(
						g.Class("space-y-3 max-h-96 overflow-auto"),
						cmp.Map(board.Messages(), func(m models.Message) cmp.Node {
							return messageCard(m, now)
						}),
					),
				),
				g.Form(
					g.ID(communityForm),
					g.Method("post"),
					g.Action("/community/messages#community"),
					g.Class("bg-white border rounded-lg p-4"),
					g.Input(g.Name("email"), g.Value(board.Email()), g.Placeholder("Your member email"), g.Class(inputClass("w-full"))),
					g.Textarea(g.Name("content"), g.Placeholder("Write a message"), g.Class(inputClass("w-full mt-2 h-24")), cmp.Text(board.Draft())),
					g.Button(g.Type("submit"), g.Class("mt-2 w-full bg-black text-white rounded px-4 py-2"), cmp.Text("Post")),
				),
			),
		),
	)
}

func messageCard(m models.Message, now time.Time) cmp.Node {
	return g.Div(
		g.Class("bg-white border rounded p-3"),
		g.Div(g.Class("text-xs text-gray-500"), cmp.Textf("%s • %s", m.MemberEmail, formatCreatedAt(m.CreatedAt, now))),
		g.Div(g.Class("mt-1"), cmp.Text(m.Content)),
	)
}
