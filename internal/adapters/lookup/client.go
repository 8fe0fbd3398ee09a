// Package lookup is the outbound HTTP client for known key backends
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
	str "knownkey/internal/platform/strings"
	"knownkey/internal/services/api/translator/domain"
)

const defaultMaxBody = 1 << 20

// Doer sends one HTTP request
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configures the Client
type Options struct {
	// MaxBody caps how much of a response body is read
	MaxBody int64
	// Log receives the per call debug line, nil means the "lookup" named logger
	Log *logger.Logger
}

// Client performs single GET lookups; it never retries and sets no timeout of its own
type Client struct {
	http Doer
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client over d; a nil d uses DefaultDoer
func NewClient(d Doer, o Options) *Client {
	if d == nil {
		d = DefaultDoer()
	}
	if o.MaxBody <= 0 {
		o.MaxBody = defaultMaxBody
	}
	log := o.Log
	if log == nil {
		log = logger.Named("lookup")
	}
	return &Client{
		http: d,
		opts: o,
		log:  *log,
		now:  time.Now,
	}
}

// DefaultDoer is an http.Client without timeout whose transport does not add Accept-Encoding
func DefaultDoer() *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DisableCompression = true
	return &http.Client{Transport: tr}
}

// Get calls url with exactly the two lookup headers and returns the compacted JSON body of a 2xx reply
// errors carry a code: NotFound for 404, Upstream with a StatusError for other statuses,
// Unavailable for transport failures, JSON for unreadable 2xx bodies
func (c *Client) Get(ctx context.Context, url string, h domain.Headers) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "lookup new request failed")
	}
	req.Header = http.Header{
		domain.HashHeader: []string{h.HashKeyHeaderValue},
		domain.AuthHeader: []string{h.AuthorizationValue},
	}
	// present but empty suppresses the default user agent
	req.Header.Set("User-Agent", "")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "lookup do failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("url", url).
		Str("hash", str.Redact(h.HashKeyHeaderValue, 4)).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("lookup http response")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return c.readJSON(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, perr.NotFoundf("lookup no match")
	default:
		return nil, &StatusError{
			Status: resp.StatusCode,
			Err:    perr.Upstreamf("lookup unexpected status %d", resp.StatusCode),
		}
	}
}

// readJSON reads at most MaxBody bytes and requires valid JSON
func (c *Client) readJSON(body io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(body, c.opts.MaxBody+1))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "lookup body read failed")
	}
	if int64(len(raw)) > c.opts.MaxBody {
		return nil, perr.JSONErrf("lookup body exceeds %d bytes", c.opts.MaxBody)
	}
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "lookup body is not json")
	}
	return out.Bytes(), nil
}
