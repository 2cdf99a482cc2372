package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/jjenkins/lobbying/internal/model"
)

const (
	HouseDownloadURL = "http://disclosures.house.gov/ld/LDDownload.aspx"
	defaultTimeout   = 120 * time.Second
	maxRetries       = 3
	initialBackoff   = 2 * time.Second
)

var (
	ErrFileNotFound  = errors.New("no matching download")
	ErrAmbiguousFile = errors.New("more than one matching download")
)

// formFields are the hidden ASP.NET fields echoed back on download
var formFields = []string{"__VIEWSTATEGENERATOR", "__VIEWSTATE", "__EVENTVALIDATION"}

// HouseClient handles communication with the House disclosure download portal
type HouseClient struct {
	client  *http.Client
	url     string
	retries int
	backoff time.Duration
}

// NewHouseClient creates a new portal client. Zero values select the defaults.
func NewHouseClient(pageURL string, timeout time.Duration, retries int) *HouseClient {
	if pageURL == "" {
		pageURL = HouseDownloadURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if retries <= 0 {
		retries = maxRetries
	}
	return &HouseClient{
		client:  &http.Client{Timeout: timeout},
		url:     pageURL,
		retries: retries,
		backoff: initialBackoff,
	}
}

// FileName is the portal's name for a year and document window
func FileName(year int, document string) string {
	return fmt.Sprintf("%d %s", year, document)
}

// downloadForm is what the portal page carries for a download post
type downloadForm struct {
	hidden  map[string]string
	options []string
}

// List retrieves the downloads the portal currently offers
func (c *HouseClient) List(ctx context.Context) ([]model.HouseFile, error) {
	form, err := c.fetchForm(ctx)
	if err != nil {
		return nil, err
	}

	var files []model.HouseFile
	for _, opt := range form.options {
		parts := strings.SplitN(opt, " ", 3)
		if len(parts) < 2 {
			continue
		}
		files = append(files, model.HouseFile{Name: opt, Year: parts[0], Document: parts[1]})
	}
	return files, nil
}

// Download streams the single download whose name contains name into w
func (c *HouseClient) Download(ctx context.Context, name string, w io.Writer) (int64, error) {
	form, err := c.fetchForm(ctx)
	if err != nil {
		return 0, err
	}

	var matches []string
	for _, opt := range form.options {
		if strings.Contains(opt, name) {
			matches = append(matches, opt)
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	case 1:
	default:
		return 0, fmt.Errorf("%w: %s", ErrAmbiguousFile, name)
	}

	values := url.Values{}
	for _, f := range formFields {
		values.Set(f, form.hidden[f])
	}
	values.Set("selFilesXML", matches[0])
	values.Set("btnDownloadXML", "Download")

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(values.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", matches[0], err)
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read %s: %w", matches[0], err)
	}
	return n, nil
}

func (c *HouseClient) fetchForm(ctx context.Context) (*downloadForm, error) {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch download page: %w", err)
	}
	defer resp.Body.Close()

	form, err := parseDownloadForm(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse download page: %w", err)
	}
	return form, nil
}

// parseDownloadForm collects the hidden form fields by id and every option
// value on the page.
func parseDownloadForm(r io.Reader) (*downloadForm, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	form := &downloadForm{hidden: make(map[string]string)}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "input":
				if id := attr(n, "id"); id != "" {
					form.hidden[id] = attr(n, "value")
				}
			case "option":
				if v := attr(n, "value"); v != "" {
					form.options = append(form.options, v)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	for _, f := range formFields {
		if _, ok := form.hidden[f]; !ok {
			return nil, fmt.Errorf("page has no %s field", f)
		}
	}
	return form, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// doWithRetry sends the request built by newReq with exponential backoff and
// returns the first 200 response with its body unread.
func (c *HouseClient) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	backoff := c.backoff

	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}

		req, err := newReq()
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("rate limited (HTTP 429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", c.retries, lastErr)
}
