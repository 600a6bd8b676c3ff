package views

import (
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var resourceTypeLabels = map[models.ResourceType]string{
	models.ResourcePrompt: "Prompt",
	models.ResourceTool:   "Tool",
}

func Admin(panel *domain.AdminPanel) cmp.Node {
	return g.Section(
		g.ID("admin"),
		g.Class("py-16 bg-white"),
		g.Div(
			g.Class("max-w-6xl mx-auto px-4"),
			g.H2(g.Class("text-2xl font-semibold"), cmp.Text("Admin")),
			cmp.If(!panel.IsAdmin(), adminCheck(panel.Email())),
			cmp.If(panel.IsAdmin(), adminTools(panel)),
		),
	)
}

func adminCheck(email string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/admin/check#admin"),
		g.Class("mt-4 flex gap-2"),
		g.Input(g.Name("email"), g.Value(email), g.Placeholder("Admin email"), g.Class(inputClass(""))),
		g.Button(g.Type("submit"), g.Class("px-4 py-2 bg-black text-white rounded"), cmp.Text("Check")),
	)
}

func adminTools(panel *domain.AdminPanel) cmp.Node {
	return g.Div(
		g.Class("mt-6 grid md:grid-cols-2 gap-6"),
		g.Div(
			g.Class("border rounded-lg p-4"),
			g.Form(
				g.Method("post"),
				g.Action("/admin/members#admin"),
				g.Class("flex items-center justify-between"),
				g.Div(g.Class("font-medium"), cmp.Text("Members")),
				g.Button(g.Type("submit"), g.Class("text-sm px-3 py-1 border rounded"), cmp.Text("Refresh")),
			),
			g.Div(
				g.Class("mt-3 max-h-64 overflow-auto space-y-2"),
				cmp.Map(panel.Members(), memberRow),
			),
		),
		g.Div(
			g.Class("space-y-6"),
			videoForm(panel.VideoForm()),
			resourceForm(panel.ResourceForm()),
		),
	)
}

func memberRow(m models.Member) cmp.Node {
	return g.Div(
		g.Class("text-sm border rounded p-2 flex justify-between"),
		g.Div(
			g.Div(g.Class("font-medium"), cmp.Text(m.Name)),
			g.Div(g.Class("text-gray-600"), cmp.Textf("%s • %s • %s", m.Email, m.Role, m.SubscriptionStatus)),
		),
	)
}

func videoForm(f domain.VideoForm) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/admin/videos#admin"),
		g.Class("border rounded-lg p-4"),
		g.Div(g.Class("font-medium"), cmp.Text("Add Video")),
		g.Div(
			g.Class("grid grid-cols-2 gap-2 mt-2"),
			g.Input(g.Name("title"), g.Value(f.Title), g.Placeholder("Title"), g.Class(inputClass("col-span-2"))),
			g.Input(g.Name("vimeo_id"), g.Value(f.VimeoID), g.Placeholder("Vimeo ID"), g.Class(inputClass("col-span-1"))),
			g.Input(g.Name("description"), g.Value(f.Description), g.Placeholder("Description"), g.Class(inputClass("col-span-1"))),
		),
		g.Button(g.Type("submit"), g.Class("mt-2 px-4 py-2 bg-black text-white rounded"), cmp.Text("Add")),
	)
}

func resourceForm(f domain.ResourceForm) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/admin/resources#admin"),
		g.Class("border rounded-lg p-4"),
		g.Div(g.Class("font-medium"), cmp.Text("Add Resource")),
		g.Div(
			g.Class("grid grid-cols-2 gap-2 mt-2"),
			g.Input(g.Name("title"), g.Value(f.Title), g.Placeholder("Title"), g.Class(inputClass("col-span-2"))),
			g.Select(
				g.Name("type"),
				g.Class(inputClass("col-span-1")),
				cmp.Map(models.ResourceTypes, func(t models.ResourceType) cmp.Node {
					return g.Option(g.Value(string(t)), cmp.If(t == f.Type, g.Selected()), cmp.Text(resourceTypeLabels[t]))
				}),
			),
			g.Input(g.Name("url"), g.Value(f.URL), g.Placeholder("URL"), g.Class(inputClass("col-span-1"))),
			g.Input(g.Name("description"), g.Value(f.Description), g.Placeholder("Description"), g.Class(inputClass("col-span-2"))),
			g.Input(g.Name("tags"), g.Value(f.Tags), g.Placeholder("tags, comma,separated"), g.Class(inputClass("col-span-2"))),
		),
		g.Button(g.Type("submit"), g.Class("mt-2 px-4 py-2 bg-black text-white rounded"), cmp.Text("Add")),
	)
}
