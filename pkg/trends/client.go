package trends

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"zeroclick-go/pkg/logger"
)

// Fixed query window and locale for every lookup. The demo always asks for
// the trailing three months of US interest.
const (
	DefaultTimeframe = "today 3-m"
	DefaultGeo       = "US"
	DefaultLocale    = "en-US"
	DefaultTimezone  = "360"
)

const defaultRequestTimeout = 10 * time.Second

// Client queries the external trends service for relative-interest points.
// One term per request, no retries: the resolver treats a failure as a signal
// to fall through to the next provider.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *fasthttp.Client
	log        *logger.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &fasthttp.Client{},
		log:        logger.GetLogger().WithField("component", "trends_client"),
	}
}

// SetHTTPClient allows injection of a custom fasthttp client, used by tests
// to dial an in-memory listener.
func (c *Client) SetHTTPClient(client *fasthttp.Client) {
	c.httpClient = client
}

// InterestOverTime fetches the relative-interest points for one term over the
// fixed trailing window. An empty slice with a nil error means the service
// recognized the term but has no data for it.
func (c *Client) InterestOverTime(ctx context.Context, term string) ([]InterestPoint, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("trends API URL not configured")
	}
	if term == "" {
		return nil, fmt.Errorf("no term provided")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.buildRequestURL(term))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", "zeroclick-go/1.0")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("trends request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("trends API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	points, err := ParseInterestResponse(resp.Body(), term)
	if err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"term":        term,
		"points":      len(points),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Trends query completed")
	return points, nil
}

// buildRequestURL appends the keyword and fixed window parameters. A base URL
// already carrying "?keyword=" is treated as a template and only the value is
// appended, matching how operators configure proxy endpoints.
func (c *Client) buildRequestURL(term string) string {
	params := url.Values{}
	params.Set("timeframe", DefaultTimeframe)
	params.Set("geo", DefaultGeo)
	params.Set("hl", DefaultLocale)
	params.Set("tz", DefaultTimezone)

	if strings.Contains(c.baseURL, "?keyword=") {
		return c.baseURL + url.QueryEscape(term) + "&" + params.Encode()
	}
	params.Set("keyword", term)
	return c.baseURL + "?" + params.Encode()
}
