package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/blogclient/internal/client/credentials"
	"github.com/dmitrijs2005/blogclient/internal/common"
	"github.com/dmitrijs2005/blogclient/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// Invalidator ends the session when the server rejects the credential.
// It must clear the credential store before returning.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headerName string
	store      credentials.Store
	logger     logging.Logger

	mu          sync.RWMutex
	invalidator Invalidator
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout on a copy of the current
// *http.Client, so a shared client passed to WithHTTPClient is left as is.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithHeaderName overrides the credential header (default common.AuthHeaderName).
func WithHeaderName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.headerName = name
		}
	}
}

func NewClient(baseURL string, store credentials.Store, logger logging.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		headerName: common.AuthHeaderName,
		store:      store,
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// SetInvalidator routes 401 eviction through inv. The session binds itself
// here once both sides are constructed.
func (c *Client) SetInvalidator(inv Invalidator) {
	c.mu.Lock()
	c.invalidator = inv
	c.mu.Unlock()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs one request. body, if not nil, is sent as JSON; out, if not
// nil, receives the decoded 2xx payload.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	logger := c.logger.With("method", method, "path", path, "request_id", req.Header.Get(common.RequestIDHeaderName))
	logger.Debug(ctx, "sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(ctx, "request failed", "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(ctx, logger, req, resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	c.attachCredential(ctx, req)
	return req, nil
}

func (c *Client) attachCredential(ctx context.Context, req *http.Request) {
	token, ok := c.store.Read(ctx)
	if !ok {
		return
	}
	if strings.TrimSpace(token) == "" || !httpguts.ValidHeaderFieldValue(token) {
		c.logger.Warn(ctx, "stored token is not a valid header value, sending request anonymously")
		return
	}
	req.Header.Set(c.headerName, token)
}

func (c *Client) handleResponse(ctx context.Context, logger logging.Logger, req *http.Request, resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error(ctx, "failed to read response body", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serr := &StatusError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(data)), maxErrorBody),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			logger.Warn(ctx, "credential rejected by server, evicting")
			c.evict(ctx)
		} else {
			logger.Error(ctx, "request returned error status", "status", resp.StatusCode)
		}
		return serr
	}

	if err := decode(data, out); err != nil {
		logger.Error(ctx, "failed to decode response", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%s %s: decode: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) evict(ctx context.Context) {
	c.mu.RLock()
	inv := c.invalidator
	c.mu.RUnlock()

	if inv != nil {
		inv.Invalidate(ctx)
		return
	}
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear credential", "error", err)
	}
}

// decode unwraps the payload. A string target also accepts a bare, unquoted
// body: the login endpoint returns the token as plain text.
func decode(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if out == nil || len(trimmed) == 0 {
		return nil
	}

	if s, ok := out.(*string); ok {
		switch trimmed[0] {
		case '"', '{', '[':
		default:
			*s = string(trimmed)
			return nil
		}
	}
	return json.Unmarshal(trimmed, out)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
