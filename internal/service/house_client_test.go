package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalPage = `<html><body><form method="post">
<input type="hidden" name="__VIEWSTATE" id="__VIEWSTATE" value="vs" />
<input type="hidden" name="__VIEWSTATEGENERATOR" id="__VIEWSTATEGENERATOR" value="gen" />
<input type="hidden" name="__EVENTVALIDATION" id="__EVENTVALIDATION" value="ev" />
<select name="selFilesXML">
<option value="2019 1stQuarter (XML)">2019 1stQuarter (XML)</option>
<option value="2019 Registrations (XML)">2019 Registrations (XML)</option>
<option value="2018 MidYear (XML)">2018 MidYear (XML)</option>
<option value="2018 MidYearAmended (XML)">2018 MidYearAmended (XML)</option>
</select>
</form></body></html>`

func newPortal(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, portalPage)
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.PostForm.Get("__VIEWSTATE") != "vs" || r.PostForm.Get("__EVENTVALIDATION") != "ev" ||
				r.PostForm.Get("btnDownloadXML") != "Download" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			fmt.Fprintf(w, "zip:%s", r.PostForm.Get("selFilesXML"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testClient(url string) *HouseClient {
	c := NewHouseClient(url, 5*time.Second, 3)
	c.backoff = time.Millisecond
	return c
}

func TestHouseClientList(t *testing.T) {
	srv, _ := newPortal(t, 0)

	files, err := testClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 4)
	assert.Equal(t, "2019 1stQuarter (XML)", files[0].Name)
	assert.Equal(t, "2019", files[0].Year)
	assert.Equal(t, "1stQuarter", files[0].Document)
	assert.Equal(t, "Registrations", files[1].Document)
}

func TestHouseClientDownload(t *testing.T) {
	srv, _ := newPortal(t, 0)

	var buf bytes.Buffer
	n, err := testClient(srv.URL).Download(context.Background(), FileName(2019, "Registrations"), &buf)
	require.NoError(t, err)
	assert.Equal(t, "zip:2019 Registrations (XML)", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestHouseClientDownloadMatching(t *testing.T) {
	srv, _ := newPortal(t, 0)
	c := testClient(srv.URL)

	_, err := c.Download(context.Background(), "2020 YearEnd", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = c.Download(context.Background(), "2018 MidYear", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrAmbiguousFile)
}

func TestHouseClientRetries(t *testing.T) {
	srv, calls := newPortal(t, 2)

	files, err := testClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, files, 4)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHouseClientGivesUp(t *testing.T) {
	srv, calls := newPortal(t, 10)

	_, err := testClient(srv.URL).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestParseDownloadFormRequiresState(t *testing.T) {
	_, err := parseDownloadForm(bytes.NewBufferString(`<html><select><option value="x">x</option></select></html>`))
	assert.ErrorContains(t, err, "__VIEWSTATEGENERATOR")
}
