package views

import (
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var providerLabels = map[models.Provider]string{
	models.ProviderStripe:  "Stripe",
	models.ProviderPayPal:  "PayPal",
	models.ProviderInvoice: "Invoice",
}

func Subscribe(flow *domain.SubscribeFlow) cmp.Node {
	return g.Section(
		g.ID("subscribe"),
		g.Class("py-16 bg-white"),
		g.Div(
			g.Class("max-w-4xl mx-auto px-4"),
			g.H2(g.Class("text-2xl font-semibold"), cmp.Text("Subscribe")),
			g.P(g.Class("text-gray-600"), cmp.Text("Choose Stripe, PayPal, or request an invoice. $49/month, cancel anytime.")),
			g.Form(
				g.Method("post"),
				g.Action("/subscribe#subscribe"),
				g.Div(
					g.Class("mt-6 grid md:grid-cols-4 gap-3"),
					g.Input(g.Name("name"), g.Value(flow.Name()), g.Placeholder("Full name"), g.Class(inputClass(""))),
					g.Input(g.Name("email"), g.Type("email"), g.Value(flow.Email()), g.Placeholder("Email"), g.Class(inputClass("md:col-span-2"))),
					g.Select(
						g.Name("provider"),
						g.Class(inputClass("")),
						cmp.Map(models.Providers, func(p models.Provider) cmp.Node {
							return g.Option(g.Value(string(p)), cmp.If(p == flow.Provider(), g.Selected()), cmp.Text(providerLabels[p]))
						}),
					),
				),
				g.Div(
					g.Class("mt-4 flex gap-3"),
					g.Button(g.Type("submit"), g.Class("px-4 py-2 bg-black text-white rounded"), cmp.Text("Start")),
					cmp.If(flow.CheckoutURL() != "",
						g.A(g.Class("px-4 py-2 border rounded"), g.Href(safeHref(flow.CheckoutURL())), g.Target("_blank"), cmp.Text("Open Checkout")),
					),
				),
			),
			cmp.If(flow.Status() != "", g.P(g.Class("mt-3 text-sm text-gray-700"), cmp.Text(flow.Status()))),
		),
	)
}
