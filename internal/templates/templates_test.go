package templates

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/lobbying/internal/model"
)

func TestHomeEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := Home(HomeMetrics{
		Streams: []StreamSummary{{Family: "house-report", Name: "reports", Table: "house_reports", Columns: []string{"id", "<b>"}, Rows: 3}},
		TotalRows: 3, Runs: 1, HasData: true,
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Record streams | Lobbying Disclosures</title>")
	assert.Contains(t, out, "<p>3 rows stored across 1 loads.</p>")
	assert.Contains(t, out, "<code>id, &lt;b&gt;</code>")
	assert.NotContains(t, out, "<b>")
}

func TestRuns(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	runs := []model.LoadRun{
		{Family: "senate", StartedAt: started, Status: model.RunRunning},
		{Family: "house-report", StartedAt: started, FinishedAt: sql.NullTime{Time: started.Add(1500 * time.Millisecond), Valid: true},
			Status: model.RunCompleted, Total: 3, Processed: 2, Failed: 1, Rows: 40},
	}

	var buf bytes.Buffer
	require.NoError(t, Runs(runs).Render(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "<td>senate</td><td>running</td>")
	assert.Contains(t, out, "<td>3</td><td>2</td><td>1</td><td>40</td><td>1.5s</td>")

	buf.Reset()
	require.NoError(t, Runs(nil).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No loads recorded")
}
