package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iamochuko/contract-source-metadata/pkg/httputil"
	"github.com/iamochuko/contract-source-metadata/pkg/observability"
)

// Client provides shared HTTP functionality for registry API clients.
// It handles retry logic, status mapping, and common request headers.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	headers map[string]string
	policy  httputil.Policy
}

// NewClient creates a Client with the given HTTP client and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for httpClient to use [NewHTTPClient] with [DefaultTimeout].
func NewClient(httpClient *http.Client, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	return &Client{
		http:    httpClient,
		headers: headers,
		policy:  httputil.DefaultPolicy,
	}
}

// WithRetryPolicy returns a copy of c that retries with p.
func (c *Client) WithRetryPolicy(p httputil.Policy) *Client {
	cp := *c
	cp.policy = p
	return &cp
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Transient failures are retried according to the client's policy.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return httputil.Retry(ctx, c.policy, func() error {
		body, err := c.doRequest(ctx, rawURL)
		if err != nil {
			return err
		}
		defer body.Close()
		return json.NewDecoder(body).Decode(v)
	})
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
