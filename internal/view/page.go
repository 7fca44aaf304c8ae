package view

import (
	"time"

	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/notify"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// PageData is everything the users page shows.
type PageData struct {
	View          console.ViewState
	Form          console.FormState
	CreateOpen    bool
	EditOpen      bool
	Diagnostic    console.Diagnostic
	Notifications []notify.Notification
	TTL           time.Duration
	Flash         FlashData
	Probes        []string
	// Renderer overrides the notification region look.
	Renderer NotificationRenderer
}

// UsersPage is the body of the users page.
func UsersPage(d PageData) g.Node {
	renderer := d.Renderer
	if renderer == nil {
		renderer = DefaultNotificationRenderer
	}
	return Main(
		Class("container mx-auto p-6"),
		g.Attr("ws-connect", "/notifications/ws"),
		H1(Class("text-2xl font-bold mb-4"), g.Text("Users")),
		flashBanner(d.Flash),
		AdaptTemplToGomponent(renderer(d.Notifications, d.TTL)),
		Div(
			Class("toolbar"),
			Button(
				Type("button"),
				Class("btn btn-primary"),
				hx.Post("/overlays/create/open"),
				hx.Swap("none"),
				g.Text("New user"),
			),
			ReadOneForm(),
			ProbeButtons(d.Probes...),
		),
		UsersRegion(d.View),
		CreateOverlay(d.CreateOpen, d.Form.Create, false),
		EditOverlay(d.EditOpen, d.Form.EditID, d.Form.Edit, false),
		DiagnosticPanel(d.Diagnostic, false),
		BlockingRegion(nil, false),
		RedirectRegion("", 0, false),
	)
}

func flashBanner(f FlashData) g.Node {
	return g.Group{
		g.Map(f.Success, func(m string) g.Node {
			return Div(Class("flash alert alert-success"), Role("status"), g.Text(m))
		}),
		g.Map(f.Error, func(m string) g.Node {
			return Div(Class("flash alert alert-danger"), Role("alert"), g.Text(m))
		}),
	}
}
