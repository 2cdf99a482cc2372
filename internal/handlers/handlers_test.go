package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/store"
)

const report = `<LOBBYINGDISCLOSURE2>
  <organizationName>Acme &amp; Co</organizationName>
  <alis>
    <ali_info><issueAreaCode>TRD</issueAreaCode></ali_info>
    <ali_info><issueAreaCode>MAN</issueAreaCode></ali_info>
  </alis>
</LOBBYINGDISCLOSURE2>`

func newTestApp(t *testing.T) (*fiber.App, *store.DB) {
	t.Helper()
	db, err := store.NewDB("sqlite://" + filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	app := fiber.New()
	Register(app, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return app, db
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestFlattenHandler(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("issues as csv", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/flatten/house-report/report_issues?id=300001", strings.NewReader(report))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

		body, _ := io.ReadAll(resp.Body)
		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "report_id,issue_index,ali_code"), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "300001,0,TRD"), lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "300001,1,MAN"), lines[2])
	})

	t.Run("unknown family", func(t *testing.T) {
		status, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/flatten/house-memo/reports", strings.NewReader(report)))
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("unknown stream", func(t *testing.T) {
		status, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/flatten/house-report/filings", strings.NewReader(report)))
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("wrong family", func(t *testing.T) {
		status, body := do(t, app, httptest.NewRequest(http.MethodPost, "/flatten/senate/filings", strings.NewReader(report)))
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body, "LOBBYINGDISCLOSURE2")
	})

	t.Run("not xml", func(t *testing.T) {
		status, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/flatten/senate/filings", strings.NewReader("not xml at all")))
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("empty body", func(t *testing.T) {
		status, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/flatten/senate/filings", nil))
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestStreamsHandler(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/streams?chamber=senate", nil))
	require.Equal(t, fiber.StatusOK, status)

	var streams []streamInfo
	require.NoError(t, json.Unmarshal([]byte(body), &streams))
	require.Len(t, streams, 6)
	assert.Equal(t, "senate_filings", streams[0].Table)
	for _, s := range streams {
		assert.Equal(t, "senate", s.Chamber)
		assert.NotEmpty(t, s.Columns)
	}

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/streams", nil))
	require.NoError(t, json.Unmarshal([]byte(body), &streams))
	assert.Len(t, streams, 20)
}

func TestHomeHandler(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "No documents loaded yet")
	assert.Contains(t, body, "house_report_issues")
	assert.Contains(t, body, "senate_government_entities")
}

func TestRunsHandlers(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()
	runs := store.NewRunStore(db)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/runs", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "No loads recorded")

	started := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	run := &model.LoadRun{Family: "senate", StartedAt: started, Total: 2}
	require.NoError(t, runs.StartRun(ctx, run))
	run.FinishedAt = sql.NullTime{Time: started.Add(time.Second), Valid: true}
	run.Processed, run.Rows, run.Status = 2, 17, model.RunCompleted
	require.NoError(t, runs.FinishRun(ctx, run))

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/runs", nil))
	assert.Contains(t, body, "2024-05-01 09:30:00")
	assert.Contains(t, body, "completed")

	status, body = do(t, app, httptest.NewRequest(http.MethodGet, "/runs/"+run.ID.String(), nil))
	require.Equal(t, fiber.StatusOK, status)
	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.Equal(t, "senate", detail["family"])
	assert.Equal(t, float64(17), detail["rows"])

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/runs/"+uuid.NewString(), nil))
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/runs/not-a-uuid", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
}
