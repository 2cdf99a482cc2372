package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/jjenkins/lobbying/internal/model"
)

func Runs(runs []model.LoadRun) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(runs) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No loads recorded.</p>`+"\n")
			return err
		}

		if _, err := io.WriteString(w, "<table>\n<thead><tr><th>Started</th><th>Family</th><th>Status</th><th>Sources</th><th>Processed</th><th>Failed</th><th>Rows</th><th>Duration</th></tr></thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, r := range runs {
			duration := "-"
			if r.FinishedAt.Valid {
				duration = r.Duration().Round(time.Millisecond).String()
			}
			if err := write(w, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				r.StartedAt.Format("2006-01-02 15:04:05"), r.Family, r.Status,
				r.Total, r.Processed, r.Failed, r.Rows, duration); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return Layout("Load history", body)
}
