package view

import (
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// BlockingRegion renders the notices the operator must acknowledge.
func BlockingRegion(messages []string, oob bool) g.Node {
	return Div(
		ID(IDBlockingRegion),
		g.If(oob, hx.SwapOOB("true")),
		g.Map(messages, func(m string) g.Node {
			return Div(
				Role("alertdialog"),
				Class("blocking-notice"),
				P(g.Text(m)),
				Button(Type("button"), Class("btn"), g.Attr("onclick", "this.parentElement.remove()"), g.Text("OK")),
			)
		}),
	)
}

// RedirectRegion loads path into the page after delay. An empty path
// renders an idle region.
func RedirectRegion(path string, delay time.Duration, oob bool) g.Node {
	return Div(
		ID(IDRedirectRegion),
		g.If(oob, hx.SwapOOB("true")),
		g.If(path != "", Div(
			hx.Get(path),
			hx.Trigger("load delay:"+millis(delay.Milliseconds())),
			hx.Target("body"),
			hx.Swap("innerHTML"),
			Data("redirect", path),
		)),
	)
}
