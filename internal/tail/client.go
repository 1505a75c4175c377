package tail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sse "github.com/tmaxmax/go-sse"
)

// Streamer opens a log tail stream and hands each payload to fn in arrival
// order. It is implemented by *Client and can be replaced in tests.
type Streamer interface {
	Stream(ctx context.Context, fn func(payload string)) error
}

// Ensure Client implements Streamer at compile time.
var _ Streamer = (*Client)(nil)

// Client subscribes to the haminer log tail endpoint.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// PathLogTail is the fixed server-sent event endpoint.
	PathLogTail = "/api/log/tail"

	defaultAPIBind   = "127.0.0.1:21932"
	defaultUserAgent = "tailview/0.1"
	headerTimeout    = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		// No overall Timeout: the response body stays open for the life
		// of the stream.
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: headerTimeout,
			},
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the absolute URL of the log tail stream.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.baseURL.ResolveReference(&url.URL{Path: PathLogTail}).String()
}

// Stream opens one connection to the log tail endpoint and calls fn for every
// unnamed event. It blocks until the server closes the stream, the transport
// fails or ctx is cancelled. The connection is never retried.
func (c *Client) Stream(ctx context.Context, fn func(payload string)) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if fn == nil {
		return fmt.Errorf("handler is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)

	client := &sse.Client{
		HTTPClient: c.http,
		Backoff:    sse.Backoff{MaxRetries: -1},
	}
	conn := client.NewConnection(req)
	conn.SubscribeMessages(func(ev sse.Event) {
		fn(ev.Data)
	})

	err = conn.Connect()
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("stream %s: %w", PathLogTail, err)
	}
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_bind %q: missing host", apiBind)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
