package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// StreamSummary is one row of the stream catalogue
type StreamSummary struct {
	Family  string
	Name    string
	Table   string
	Columns []string
	Rows    int
}

// HomeMetrics holds the catalogue and store totals shown on the home page
type HomeMetrics struct {
	Streams   []StreamSummary
	TotalRows int
	Runs      int
	HasData   bool
}

func Home(m HomeMetrics) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if m.HasData {
			if err := write(w, "<p>%s rows stored across %s loads.</p>\n", m.TotalRows, m.Runs); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p class="empty">No documents loaded yet. Run <code>lobbying load</code> to populate the database.</p>`+"\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "<table>\n<thead><tr><th>Family</th><th>Stream</th><th>Table</th><th>Rows</th><th>Columns</th></tr></thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, s := range m.Streams {
			if err := write(w, "<tr><td>%s</td><td>%s</td><td><code>%s</code></td><td>%s</td><td><code>%s</code></td></tr>\n",
				s.Family, s.Name, s.Table, s.Rows, strings.Join(s.Columns, ", ")); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Record streams", body)
}
