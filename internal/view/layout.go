package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageTitle builds the document title.
func PageTitle(title string) string {
	if title != "" {
		return title + " - userdesk"
	}
	return "userdesk"
}

// scrollScript brings the diagnostic panel into view after it is swapped in.
const scrollScript = `document.body.addEventListener("htmx:oobAfterSwap", function (e) {
  var el = document.getElementById("diagnostic-panel");
  if (el && el.dataset.scrollIntoView === "true") {
    el.scrollIntoView({behavior: "smooth"});
    delete el.dataset.scrollIntoView;
  }
});`

// Layout wraps body in the HTML document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(PageTitle(title))+`</title>`+
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
			`<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js"></script>`+
			`</head><body hx-ext="ws">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<script>`+scrollScript+`</script></body></html>`)
		return err
	})
}
