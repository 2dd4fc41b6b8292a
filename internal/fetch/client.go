// Package fetch performs the single-attempt JSON requests made to media
// providers and the search backend.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimeout   = 20 * time.Second
	defaultUserAgent = "reelscout/1.0"
	maxBodyBytes     = 16 << 20
)

// cacheNamespace scopes cache keys derived from request URLs.
var cacheNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("reelscout:fetch"))

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d: %s", e.URL, e.Code, e.Body)
}

// Client issues JSON requests with a fixed timeout and no retries.
type Client struct {
	http      *http.Client
	userAgent string
	cache     Cache
	cacheTTL  time.Duration
}

type Option func(*Client)

// WithCache stores successful GET bodies in cache for ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying transport client. Its timeout is
// overwritten by the one given to NewClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.http
	hc.Timeout = timeout
	c.http = &hc
	return c
}

// GetJSON requests rawURL with params appended and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, headers http.Header, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	key := ""
	if c.cache != nil {
		key = cacheKey(u.String(), headers)
		if body, ok := c.cache.Get(ctx, key); ok {
			return decode(body, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := decode(body, out); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Set(ctx, key, body, c.cacheTTL)
	}
	return nil
}

// PostJSON sends in as a JSON body to rawURL and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, rawURL string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	body, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, RedactError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return nil, &StatusError{URL: redact(req.URL), Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func decode(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// cacheKey hashes the request so credentials in the URL or headers never
// appear in the cache.
func cacheKey(u string, headers http.Header) string {
	var b strings.Builder
	b.WriteString(u)
	for _, k := range []string{"Authorization", "Accept-Language"} {
		b.WriteString("\n")
		b.WriteString(headers.Get(k))
	}
	return "reelscout:fetch:" + uuid.NewSHA1(cacheNamespace, []byte(b.String())).String()
}

// Redact strips credential query values from a raw URL. Unparseable input
// is returned unchanged.
func Redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return redact(u)
}

// RedactError scrubs credentials from the URL carried by a transport error.
// Errors without one are returned unchanged.
func RedactError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = Redact(ue.URL)
	}
	return err
}

// redact strips query values named like credentials from u for logging.
func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	for k := range q {
		switch strings.ToLower(k) {
		case "key", "api_key", "apikey", "token":
			q.Set(k, "REDACTED")
		}
	}
	c.RawQuery = q.Encode()
	return c.String()
}

// HTTPClient returns the underlying client for SDKs that issue their own
// requests.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}
