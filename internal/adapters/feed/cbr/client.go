package cbr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// feedDateFormat is the dd/mm/yyyy layout the CBR endpoint expects in its
// date_req query parameter.
const feedDateFormat = "02/01/2006"

// Client fetches the daily XML feed from the CBR endpoint and decodes its
// windows-1251 body into UTF-8 text. It implements feed.Fetcher.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given base URL, e.g.
// "https://www.cbr.ru/scripts/XML_daily.asp".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch issues a single GET for the given date and returns the decoded body.
// Transport failures and non-success statuses are reported as
// apperrors.ErrNetwork; retrying is left to the caller.
func (c *Client) Fetch(ctx context.Context, date time.Time) (string, error) {
	reqURL := fmt.Sprintf("%s?date_req=%s", c.baseURL, url.QueryEscape(date.Format(feedDateFormat)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build feed request: %v", apperrors.ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: feed request failed: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: feed responded with status %d", apperrors.ErrNetwork, resp.StatusCode)
	}

	// The feed body arrives in windows-1251; decode before handing it to the parser.
	decoded, err := io.ReadAll(transform.NewReader(resp.Body, charmap.Windows1251.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read feed body: %v", apperrors.ErrNetwork, err)
	}

	return string(decoded), nil
}
