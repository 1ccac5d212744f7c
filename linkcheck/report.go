package linkcheck

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render prints the broken links, or only the summary if there are none.
func Render(w io.Writer, r Report) {
	broken := r.Broken()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%d pages crawled, %d links checked, %d broken", r.PagesCrawled, len(r.Links), len(broken))
	if len(broken) > 0 {
		t.AppendHeader(table.Row{"Link", "Status", "Attempts", "Found on"})
		for _, l := range broken {
			status := fmt.Sprintf("%d %s", l.Status, http.StatusText(l.Status))
			if l.Err != nil {
				status = l.Err.Error()
			}
			t.AppendRow(table.Row{l.URL, status, l.Attempts, strings.Join(l.FoundOn, "\n")})
		}
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
