package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SamP9999/intercom-cli/internal/constants"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging interface accepted by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully-read API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client performs authenticated calls against one Intercom workspace. The
// session (token, base URL, fixed headers) is immutable after
// construction; the rate limiter is the only mutable state.
type Client struct {
	baseURL            string
	token              string
	apiVersion         string
	userAgent          string
	httpClient         *nethttp.Client
	limiter            *RateLimiter
	logger             Logger
	debug              bool
	retryMax           int
	retryWaitMin       time.Duration
	retryWaitMax       time.Duration
	onRateLimitWarning func(count, budget int)
	onRetryWait        func(delay time.Duration)
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion overrides the Intercom-Version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithRetryConfig enables retries of connection-level failures. HTTP
// status handling, including 429, is owned by the classifier and is not
// affected by this setting.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithRateLimitWarning sets the advisory callback invoked when the rolling
// request count crosses the warning threshold.
func WithRateLimitWarning(fn func(count, budget int)) Option {
	return func(c *Client) {
		c.onRateLimitWarning = fn
	}
}

// WithRetryWait sets the callback invoked before the client sleeps out a
// 429 delay.
func WithRetryWait(fn func(delay time.Duration)) Option {
	return func(c *Client) {
		c.onRetryWait = fn
	}
}

// NewClient creates a client bound to one base URL and access token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		token:        token,
		apiVersion:   constants.DefaultAPIVersion,
		userAgent:    constants.DefaultUserAgent,
		limiter:      NewRateLimiter(constants.RateLimitBudget, constants.RateLimitWarnAt),
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Only connection-level failures are retried here. Any received
	// response, whatever its status, goes to the classifier in Do.
	retryClient.CheckRetry = func(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return resp == nil && err != nil, nil
	}

	client.httpClient = retryClient.StandardClient()

	return client
}

// RateLimiter exposes the request accounting state.
func (c *Client) RateLimiter() *RateLimiter {
	return c.limiter
}

// Do performs a single API request and returns the fully-read response.
// Failed responses are classified; rate-limited calls are resolved here by
// waiting out the server-declared delay and resending the identical
// request, so callers only ever see terminal errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	count := c.limiter.Record()
	if c.limiter.ShouldWarn() && c.onRateLimitWarning != nil {
		c.onRateLimitWarning(count, c.limiter.Budget())
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Intercom-Version", c.apiVersion)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &intercom.APIError{
			Kind:    intercom.ErrorKindUnreachable,
			Message: err.Error(),
		}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &intercom.APIError{
			Kind:    intercom.ErrorKindUnreachable,
			Message: err.Error(),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode >= nethttp.StatusBadRequest {
		apiErr := intercom.ClassifyResponse(httpResp.StatusCode, httpResp.Header, body)
		if apiErr.Kind == intercom.ErrorKindRateLimited {
			return c.retryAfter(ctx, req, apiErr)
		}

		return resp, apiErr
	}

	return resp, nil
}

// retryAfter waits out a 429 and resends the original request. The resent
// call may itself be throttled; each occurrence waits and resends once
// more, so sustained throttling is handled by repeated retries rather than
// a fixed budget.
func (c *Client) retryAfter(ctx context.Context, req *Request, apiErr *intercom.APIError) (*Response, error) {
	if c.onRetryWait != nil {
		c.onRetryWait(apiErr.RetryAfter)
	}

	timer := time.NewTimer(apiErr.RetryAfter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting out rate limit: %w", ctx.Err())
	case <-timer.C:
	}

	return c.Do(ctx, req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// FetchPage implements intercom.PageFetcher.
func (c *Client) FetchPage(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// FetchSearchPage implements intercom.PageFetcher.
func (c *Client) FetchSearchPage(ctx context.Context, path string, body map[string]interface{}) ([]byte, error) {
	resp, err := c.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
