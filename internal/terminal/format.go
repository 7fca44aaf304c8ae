package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/notify"
)

// Empty-state copy, shared with the web page.
const (
	msgNoUsers     = "No users found"
	msgCreateFirst = "Create your first user to get started!"
)

// PrintView writes the collection as a table, the empty state or the load
// error.
func PrintView(w io.Writer, st console.ViewState) {
	switch st.Kind {
	case console.ViewError:
		fmt.Fprintf(w, "Error loading users: %s\n", st.Error)
	case console.ViewEmpty, console.ViewPending:
		fmt.Fprintln(w, msgNoUsers)
		fmt.Fprintln(w, msgCreateFirst)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		defer tw.Flush()
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL")
		fmt.Fprintln(tw, "--\t--------\t-----")
		for _, u := range st.Users {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.Email)
		}
	}
}

// PrintViewJSON writes the collection in the endpoint's envelope shape.
func PrintViewJSON(w io.Writer, st console.ViewState) error {
	if st.Kind == console.ViewError {
		return fmt.Errorf("error loading users: %s", st.Error)
	}
	out := struct {
		Users any `json:"users"`
		Count int `json:"count"`
	}{Users: st.Users, Count: len(st.Users)}
	if len(st.Users) == 0 {
		out.Users = []struct{}{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// PrintNotifications writes notifications oldest first, one per line.
func PrintNotifications(w io.Writer, items []notify.Notification) {
	for i := len(items) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "[%s] %s\n", items[i].Title(), items[i].Message)
	}
}
