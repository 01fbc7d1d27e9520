package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// ErrServiceUnreachable wraps any transport or HTTP-status failure after the
// retry budget is exhausted.
var ErrServiceUnreachable = errors.New("schedule service unreachable")

const (
	fetchAttempts = 3
	fetchDelay    = time.Second

	// userLabel identifies this client to the service in listing requests.
	userLabel = "recname"
)

// Client issues requests against a single schedule-service base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL. The trailing slash, if
// any, is dropped so endpoint paths join cleanly.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// fetch retrieves one URL with a fixed retry schedule. All three endpoints
// funnel through here so backoff behavior stays uniform.
func (c *Client) fetch(ctx context.Context, rawURL string) (string, error) {
	var body string
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpc.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return fmt.Errorf("unexpected status %s", resp.Status)
			}
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			body = string(b)
			return nil
		},
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	return body, nil
}

// Listing fetches the program feed covering days calendar days starting at
// the date of start. The titlefmt parameter shapes each feed title into the
// pipe-delimited record ParseListing expects.
func (c *Client) Listing(ctx context.Context, start time.Time, days int) (string, error) {
	const titleFmt = "$(Title)|$(ChName)|$(EdTime)|$(SubTitleB)"
	u := fmt.Sprintf("%s/rss2.php?start=%s0000&days=%d&usr=%s&titlefmt=%s",
		c.baseURL, start.Format("20060102"), days, userLabel, url.QueryEscape(titleFmt))
	return c.fetch(ctx, u)
}

// FindTitle runs a keyword search for a program title. The response is an
// HTML page scanned for program-id anchors.
func (c *Client) FindTitle(ctx context.Context, keyword string) (string, error) {
	u := fmt.Sprintf("%s/find?kw=%s", c.baseURL, url.QueryEscape(keyword))
	return c.fetch(ctx, u)
}

// EpisodeLookup fetches a single episode record by program id and episode
// number. channelID narrows the lookup to one broadcaster when non-empty.
func (c *Client) EpisodeLookup(ctx context.Context, programID int, channelID string, episode int) (string, error) {
	var ch string
	if channelID != "" {
		ch = "&ChID=" + url.QueryEscape(channelID)
	}
	u := fmt.Sprintf("%s/db.php?Command=ProgLookup&TID=%d%s&Count=%d&Fields=StTime,EdTime,ChID,STSubTitle&JOIN=SubTitles",
		c.baseURL, programID, ch, episode)
	return c.fetch(ctx, u)
}
