package view

import (
	"time"

	"github.com/a-h/templ"
	"github.com/nfrund/userdesk/internal/notify"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NotificationRenderer renders the notification region. It can be swapped
// for a custom look.
type NotificationRenderer func(items []notify.Notification, ttl time.Duration) templ.Component

// DefaultNotificationRenderer renders the region with NotificationRegion.
func DefaultNotificationRenderer(items []notify.Notification, ttl time.Duration) templ.Component {
	return AdaptGomponentToTempl(NotificationRegion(items, ttl))
}

// NotificationRegion renders every active notification, newest first.
func NotificationRegion(items []notify.Notification, ttl time.Duration) g.Node {
	return Div(
		ID(IDNotificationRegion),
		Class("notifications"),
		Aria("live", "polite"),
		g.Map(items, func(n notify.Notification) g.Node { return NotificationItem(n, ttl) }),
	)
}

// NotificationsPrepend adds items to the top of the region out of band.
func NotificationsPrepend(items []notify.Notification, ttl time.Duration) g.Node {
	return Div(
		ID(IDNotificationRegion),
		hx.SwapOOB("afterbegin"),
		g.Map(items, func(n notify.Notification) g.Node { return NotificationItem(n, ttl) }),
	)
}

// NotificationRemoved deletes one item out of band.
func NotificationRemoved(id string) g.Node {
	return Div(ID(notificationID(id)), hx.SwapOOB("delete"))
}

// NotificationItem is one notification. It asks the server to dismiss it
// once its own TTL has passed and removes only itself.
func NotificationItem(n notify.Notification, ttl time.Duration) g.Node {
	id := n.ID.String()
	return Div(
		ID(notificationID(id)),
		Class("notification alert alert-"+string(n.Severity)),
		Role("status"),
		hx.Delete("/notifications/"+id),
		hx.Trigger("load delay:"+millis(ttl.Milliseconds())),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Strong(g.Text(n.Title())),
		Span(g.Text(" "+n.Message)),
		Button(
			Type("button"),
			Class("btn-close"),
			Aria("label", "Close"),
			hx.Delete("/notifications/"+id),
			hx.Target("closest .notification"),
			hx.Swap("outerHTML"),
			g.Text("×"),
		),
	)
}

func notificationID(id string) string {
	return "notification-" + id
}
