package traefik

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/applink/pkg/domain/interfaces"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// Introspection endpoints of the Traefik API
const (
	PathRouters  = "/api/http/routers"
	PathServices = "/api/http/services"
)

const (
	// DefaultTimeout bounds every blocking request to the API
	DefaultTimeout = 5 * time.Second

	maxBodySize = 8 << 20
)

var _ interfaces.Directory = (*Client)(nil)

// Client reads Traefik's HTTP routing tables. Calls block until the API
// answers, fails, or the client timeout expires.
type Client struct {
	baseURL    string
	httpClient *http.Client
	username   string
	password   string
}

// Option configures Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = max(d, 0)
		c.httpClient = &hc
	}
}

// WithBasicAuth sets credentials for an API protected by basicAuth middleware
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// New creates a client for the API served at baseURL, e.g. "http://traefik:8080"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchJSON GETs path and parses the body. It returns ok=false when the
// request fails, the status is not 2xx, or the body is not valid JSON.
func (c *Client) FetchJSON(ctx context.Context, path string) (gjson.Result, bool) {
	logger := ctxlog.From(ctx).With(slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		logger.Debug("Failed to build proxy API request", "error", err)
		return gjson.Result{}, false
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Proxy API request failed", "error", err)
		return gjson.Result{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("Proxy API returned non-success status", "status", resp.StatusCode)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return gjson.Result{}, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		logger.Debug("Failed to read proxy API response", "error", err)
		return gjson.Result{}, false
	}
	if !gjson.ValidBytes(body) {
		logger.Debug("Proxy API returned invalid JSON", "bytes", len(body))
		return gjson.Result{}, false
	}

	return gjson.ParseBytes(body), true
}

// Routers fetches the router directory
func (c *Client) Routers(ctx context.Context) ([]model.Router, bool) {
	doc, ok := c.FetchJSON(ctx, PathRouters)
	if !ok {
		return nil, false
	}
	return parseRouters(doc), true
}

// Service fetches a single service by name. Anything but a JSON object
// counts as not found.
func (c *Client) Service(ctx context.Context, name string) (model.Service, bool) {
	doc, ok := c.FetchJSON(ctx, PathServices+"/"+url.PathEscape(name))
	if !ok || !doc.IsObject() {
		return model.Service{}, false
	}
	return parseService(doc), true
}

// Services fetches the full service listing
func (c *Client) Services(ctx context.Context) (model.ServiceDirectory, bool) {
	doc, ok := c.FetchJSON(ctx, PathServices)
	if !ok {
		return nil, false
	}
	return parseServiceDirectory(doc), true
}
