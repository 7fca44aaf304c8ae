package view

import (
	"github.com/nfrund/userdesk/internal/console"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// CreateOverlay renders the create form. A closed overlay keeps its fields
// so reopening shows what the operator typed.
func CreateOverlay(open bool, form console.FormValues, oob bool) g.Node {
	return overlay(IDCreateOverlay, "Create user", open, oob, "/overlays/create/close",
		Form(
			hx.Post("/actions/create"),
			hx.Swap("none"),
			userFields("create", form),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Create")),
		),
	)
}

// EditOverlay renders the edit form for the targeted record.
func EditOverlay(open bool, id string, form console.FormValues, oob bool) g.Node {
	return overlay(IDEditOverlay, "Edit user", open, oob, "/overlays/edit/close",
		Form(
			hx.Post("/actions/update"),
			hx.Swap("none"),
			Input(Type("hidden"), Name("id"), Value(id)),
			userFields("edit", form),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Save")),
		),
	)
}

func overlay(id, title string, open, oob bool, closePath string, body g.Node) g.Node {
	return Div(
		ID(id),
		Class("overlay"),
		g.If(oob, hx.SwapOOB("true")),
		g.If(!open, g.Attr("hidden")),
		Aria("hidden", boolText(!open)),
		Role("dialog"),
		Div(
			Class("overlay-content"),
			H2(g.Text(title)),
			body,
			Button(
				Type("button"),
				Class("btn btn-secondary"),
				hx.Post(closePath),
				hx.Swap("none"),
				g.Text("Cancel"),
			),
		),
	)
}

func userFields(prefix string, form console.FormValues) g.Node {
	return g.Group{
		Label(For(prefix+"-username"), g.Text("Username")),
		Input(Type("text"), ID(prefix+"-username"), Name("username"), Value(form.Username)),
		Label(For(prefix+"-email"), g.Text("Email")),
		Input(Type("email"), ID(prefix+"-email"), Name("email"), Value(form.Email)),
	}
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
