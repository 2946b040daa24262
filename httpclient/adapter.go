package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Adapter is a configurable HTTP transport. Each Do is exactly one round
// trip: there is no retry, and 4xx/5xx statuses are returned as responses.
// An Adapter is read-only after New and safe for concurrent use.
type Adapter struct {
	httpClient *http.Client
	config     Config
	target     *url.URL
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient uses a copy of hc as the underlying *http.Client. The
// configured timeout is applied to the copy when hc has none; hc itself is
// never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Adapter) {
		if hc == nil {
			return
		}
		c := *hc
		if c.Timeout == 0 {
			c.Timeout = a.config.Timeout
		}
		a.httpClient = &c
	}
}

// WithRoundTripper replaces the underlying transport on a copy of the
// current client.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(a *Adapter) {
		if rt != nil {
			c := *a.httpClient
			c.Transport = rt
			a.httpClient = &c
		}
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	target, err := cfg.target()
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Apply TLS configuration
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		target: target,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Do executes an HTTP request and returns the complete response.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyDoError(ctx, a.target.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(a.target.Host, fmt.Errorf("read response body: %w", err))
	}

	headers := flattenHeaders(resp.Header)
	if a.config.Compression {
		if enc := resp.Header.Get("Content-Encoding"); enc != "" {
			body, err = decodeContent(enc, body)
			if err != nil {
				return nil, NewConnectionError(a.target.Host, fmt.Errorf("decode %s response body: %w", enc, err))
			}
			delete(headers, "Content-Encoding")
			delete(headers, "Content-Length")
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       body,
	}, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	if req.Method == "" {
		return nil, NewInvalidRequestError("missing method", nil)
	}

	u, err := a.resolveURL(req.Path)
	if err != nil {
		return nil, NewInvalidRequestError(fmt.Sprintf("resolve url: %v", err), err)
	}

	// Apply query parameters
	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	// Build body: multipart and raw bytes are exclusive.
	var body io.Reader
	var contentType string
	switch {
	case req.Form != nil:
		body, contentType, err = req.Form.encode()
		if err != nil {
			return nil, NewInvalidRequestError(fmt.Sprintf("encode multipart body: %v", err), err)
		}
	case req.Body != nil:
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, NewInvalidRequestError(fmt.Sprintf("create request: %v", err), err)
	}

	// Apply shared headers
	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}

	// Apply request-specific headers (override shared ones)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	// The multipart boundary must match the body.
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if a.config.Compression && httpReq.Header.Get("Accept-Encoding") == "" {
		httpReq.Header.Set("Accept-Encoding", acceptEncoding)
	}

	return httpReq, nil
}

// resolveURL joins path onto the configured target.
func (a *Adapter) resolveURL(path string) (*url.URL, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	if rel.IsAbs() || rel.Host != "" {
		return nil, fmt.Errorf("path %q must be relative to %s", path, a.target.Host)
	}

	u := *a.target
	u.Path = strings.TrimRight(a.target.Path, "/") + "/" + strings.TrimLeft(rel.Path, "/")
	u.RawPath = strings.TrimRight(a.target.EscapedPath(), "/") + "/" + strings.TrimLeft(rel.EscapedPath(), "/")
	u.RawQuery = rel.RawQuery
	u.Fragment = ""
	return &u, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// Name returns the configured client name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// Host returns the host requests are sent to.
func (a *Adapter) Host() string {
	return a.target.Host
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// GetConfig returns the adapter's configuration.
func (a *Adapter) GetConfig() Config {
	return a.config
}
