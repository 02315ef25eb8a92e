// ABOUTME: Centralized HTTP client for the CRUD API.
// ABOUTME: Base-URL resolution, query building, one network retry, typed errors.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Error is the normalized failure of an API call. Status is the HTTP status
// code, or 0 when the request never reached the server.
type Error struct {
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: network error: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Query carries the optional list parameters. Unset values are omitted from
// the request entirely.
type Query struct {
	Page      *int
	PageSize  *int
	SortBy    string
	SortOrder string // "asc" or "desc"
	Search    string
	Filters   map[string]string
}

// Values renders the query as URL parameters, skipping everything unset.
func (q Query) Values() url.Values {
	params := url.Values{}
	if q.Page != nil {
		params.Set("page", strconv.Itoa(*q.Page))
	}
	if q.PageSize != nil {
		params.Set("pageSize", strconv.Itoa(*q.PageSize))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", q.SortOrder)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	for key, value := range q.Filters {
		if value != "" {
			params.Set(key, value)
		}
	}
	return params
}

// Int is a helper for the optional numeric query fields.
func Int(v int) *int { return &v }

// Client is the HTTP client shared by all entity services.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	production bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithProduction suppresses payload logging, keeping only method and URL.
func WithProduction(production bool) ClientOption {
	return func(c *Client) { c.production = production }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient builds a client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL resolves an endpoint against the base URL. Absolute endpoints pass
// through untouched.
func (c *Client) URL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Do performs one JSON API call. body, when non-nil, is marshalled as the
// request payload; out, when non-nil, receives the decoded response. A
// request that never reached the server is retried once before a status-0
// Error is returned.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	target := c.URL(endpoint)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &Error{Status: 0, Message: "encode request", Cause: err}
		}
	}

	c.logRequest(method, target, payload)

	resp, err := c.send(ctx, method, target, payload, "application/json")
	if err != nil {
		// One retry for connection-level failures only; HTTP errors of any
		// status never re-issue the request, and neither does a cancelled
		// or expired context.
		if ctx.Err() != nil {
			return &Error{Status: 0, Message: err.Error(), Cause: err}
		}
		c.logger.Printf("[%s] %s network error, retrying once: %v", method, target, err)
		resp, err = c.send(ctx, method, target, payload, "application/json")
		if err != nil {
			return &Error{Status: 0, Message: err.Error(), Cause: err}
		}
	}
	return c.finish(method, target, resp, out)
}

func (c *Client) send(ctx context.Context, method, target string, payload []byte, contentType string) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return c.httpClient.Do(req)
}

func (c *Client) finish(method, target string, resp *http.Response, out any) error {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "read response", Cause: err}
	}

	if resp.StatusCode >= 400 {
		message := errorMessage(raw, resp.StatusCode)
		c.logger.Printf("[%s] %s failed: %d %s", method, target, resp.StatusCode, message)
		return &Error{Status: resp.StatusCode, Message: message}
	}

	c.logResponse(method, target, raw)

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: "decode response", Cause: err}
	}
	return nil
}

// errorMessage extracts the server's error envelope, falling back to the
// status text.
func errorMessage(raw []byte, status int) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return http.StatusText(status)
}

func (c *Client) logRequest(method, target string, payload []byte) {
	if c.production || len(payload) == 0 {
		c.logger.Printf("[%s] %s", method, target)
		return
	}
	c.logger.Printf("[%s] %s payload=%s", method, target, payload)
}

func (c *Client) logResponse(method, target string, raw []byte) {
	if c.production {
		return
	}
	body := raw
	if len(body) > 2048 {
		body = body[:2048]
	}
	c.logger.Printf("[%s] %s ok: %s", method, target, body)
}
