package view

import (
	"encoding/json"

	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Empty-state copy.
const (
	MsgNoUsers     = "No users found"
	MsgCreateFirst = "Create your first user to get started!"
)

// UsersRegion renders the collection: a table, the empty state or the load
// error. Nothing is rendered for a view that has never loaded.
func UsersRegion(st console.ViewState) g.Node {
	return usersRegion(st)
}

// UsersRegionOOB is UsersRegion as an out-of-band swap.
func UsersRegionOOB(st console.ViewState) g.Node {
	return usersRegion(st, hx.SwapOOB("true"))
}

func usersRegion(st console.ViewState, attrs ...g.Node) g.Node {
	var body g.Node
	switch st.Kind {
	case console.ViewTable:
		body = usersTable(st.Users)
	case console.ViewEmpty:
		body = Div(
			Class("empty-state text-center py-8 text-gray-500"),
			P(Class("font-semibold"), g.Text(MsgNoUsers)),
			P(g.Text(MsgCreateFirst)),
		)
	case console.ViewError:
		body = Div(
			Class("load-error p-4 rounded bg-red-50 text-red-700"),
			Role("alert"),
			g.Text("Error loading users: "+st.Error),
		)
	default:
		body = Div(
			hx.Get("/users/table"),
			hx.Trigger("load"),
			hx.Target("#"+IDUsersRegion),
			hx.Swap("outerHTML"),
		)
	}
	return Div(ID(IDUsersRegion), Data("generation", uintText(st.Generation)), g.Group(attrs), body)
}

func usersTable(users []domain.User) g.Node {
	return Table(
		Class("min-w-full divide-y divide-gray-200"),
		THead(Tr(
			Th(g.Text("ID")),
			Th(g.Text("Username")),
			Th(g.Text("Email")),
			Th(g.Text("Actions")),
		)),
		TBody(g.Map(users, userRow)),
	)
}

func userRow(u domain.User) g.Node {
	id := u.ID.String()
	return Tr(
		Data("user-id", id),
		Td(g.Text(id)),
		Td(g.Text(u.Username)),
		Td(g.Text(u.Email)),
		Td(
			Button(
				Type("button"),
				Class("btn btn-edit"),
				hx.Post("/actions/edit"),
				hx.Vals(vals(map[string]string{"id": id, "username": u.Username, "email": u.Email})),
				hx.Swap("none"),
				g.Text("Edit"),
			),
			Button(
				Type("button"),
				Class("btn btn-delete"),
				hx.Post("/actions/delete"),
				hx.Confirm(console.MsgConfirmDelete),
				hx.Vals(vals(map[string]string{"id": id, "confirmed": "true"})),
				hx.Swap("none"),
				g.Text("Delete"),
			),
		),
	)
}

// vals encodes row values for hx-vals. The attribute value is escaped by
// the renderer, so user text never becomes markup.
func vals(m map[string]string) string {
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}
