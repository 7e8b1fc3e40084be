package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/userconsole/internal/client/store"
)

// renderUsers prints the banner, the (filtered) table and the page footer.
func renderUsers(w io.Writer, st store.UsersState, term string) {
	if st.Banner != "" {
		fmt.Fprintf(w, "! %s (type 'dismiss' to hide)\n", st.Banner)
	}

	users := store.Filter(st.Users, term)
	if term != "" {
		fmt.Fprintf(w, "Search %q: %d of %d users on this page\n", term, len(users), len(st.Users))
	}

	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAVATAR")
		for _, u := range users {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Avatar)
		}
		_ = tw.Flush()
	}

	if p := st.Pagination; p != nil {
		fmt.Fprintf(w, "Page %d of %d (%d users total)\n", p.Page, p.TotalPages, p.Total)
	}
	if s := st.Support; s != nil && s.Text != "" {
		fmt.Fprintf(w, "%s %s\n", s.Text, s.URL)
	}
}
