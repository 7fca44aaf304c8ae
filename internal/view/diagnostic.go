package view

import (
	"github.com/nfrund/userdesk/internal/console"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// DiagnosticPanel shows the last raw payload or probe error.
func DiagnosticPanel(d console.Diagnostic, oob bool) g.Node {
	return Div(
		ID(IDDiagnosticPanel),
		Class("diagnostic"),
		g.If(oob, hx.SwapOOB("true")),
		g.If(!d.Visible, g.Attr("hidden")),
		g.If(d.ScrollIntoView, Data("scroll-into-view", "true")),
		H2(g.Text("Response")),
		Pre(Code(g.Text(d.Text))),
	)
}

// ReadOneForm is the read-one lookup.
func ReadOneForm() g.Node {
	return Form(
		Class("read-one"),
		hx.Post("/actions/get"),
		hx.Swap("none"),
		Label(For("read-id"), g.Text("User ID")),
		Input(Type("text"), ID("read-id"), Name("id")),
		Button(Type("submit"), Class("btn"), g.Text("Get user")),
	)
}

// ProbeButtons issue GET requests against fixed endpoint paths.
func ProbeButtons(paths ...string) g.Node {
	return Div(
		Class("probes"),
		g.Map(paths, func(p string) g.Node {
			return Button(
				Type("button"),
				Class("btn btn-probe"),
				hx.Post("/actions/probe"),
				hx.Vals(vals(map[string]string{"path": p})),
				hx.Swap("none"),
				g.Text("GET "+p),
			)
		}),
	)
}
