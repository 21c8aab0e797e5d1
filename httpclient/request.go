// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rings-s/store-api-client/credentials"
	"github.com/rings-s/store-api-client/headers"
	"github.com/rings-s/store-api-client/response"
	"github.com/rings-s/store-api-client/status"
	"github.com/rings-s/store-api-client/version"
	"go.uber.org/zap"
)

// RequestOptions is the caller-facing shape of a single request: query
// parameters, extra headers, and an optional body with its serialization.
type RequestOptions struct {
	// Query parameters; nil values are omitted from the URL.
	Query map[string]any

	// Headers override the client defaults for this request only.
	Headers map[string]string

	// Body is serialized according to ContentKind. For multipart requests the
	// Fields and Files maps are used instead.
	Body        any
	ContentKind ContentKind
	Fields      map[string]string
	Files       map[string]string

	// Timeout overrides the client's default per-request deadline when positive.
	Timeout time.Duration
}

// RequestConfig is the fully assembled request as seen by the request
// interceptors: final URL, serialized body, composed headers.
type RequestConfig struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte

	// Timeout is the effective deadline for this dispatch.
	Timeout time.Duration

	// Retryable marks the request as safe to replay after a credential
	// renewal. Verb helpers set it; DoMultiPart leaves it false because the
	// body may stream from files that cannot be re-read reliably.
	Retryable bool
}

// Do executes a request against the storefront API and classifies the result.
// It is the generic entry point under the verb helpers.
func (c *Client) Do(ctx context.Context, method, endpoint string, opts *RequestOptions) (*response.Response, error) {
	return c.do(ctx, method, endpoint, opts, true)
}

// do runs the full request pipeline. allowRefresh guards the credential
// renewal path so a replayed request can never trigger a second renewal.
func (c *Client) do(ctx context.Context, method, endpoint string, opts *RequestOptions, allowRefresh bool) (*response.Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	cfg, err := c.assemble(ctx, method, endpoint, opts)
	if err != nil {
		return nil, err
	}

	cfg, err = c.applyRequestInterceptors(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res, err := c.dispatch(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if status.IsUnauthorizedStatusCode(res.StatusCode) {
		if allowRefresh {
			return c.handleUnauthorized(ctx, method, endpoint, opts, cfg, res)
		}
		// A 401 that survives a completed renewal is a real authentication
		// failure, not a stale token.
		return nil, c.authErrorFromResponse(cfg, res)
	}

	return c.finish(ctx, cfg, res)
}

// assemble builds the RequestConfig for a call: URL with query parameters,
// serialized body, and headers composed as defaults, then the body's
// Content-Type, then caller overrides, with the bearer token applied last.
// The token is attached only when the stored access token is present and
// unexpired; an expired token is worth nothing to the server, and omitting it
// keeps the 401 attribution unambiguous.
func (c *Client) assemble(ctx context.Context, method, endpoint string, opts *RequestOptions) (*RequestConfig, error) {
	url, err := buildRequestURL(c.config.BaseURL, endpoint, opts.Query)
	if err != nil {
		return nil, err
	}

	body, contentType, err := serializeBody(opts)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	headers.Compose(header, c.config.DefaultHeaders, nil, "")
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", version.UserAgent())
	}
	headers.Compose(header, nil, opts.Headers, c.bearerToken(ctx))

	timeout := c.config.CustomTimeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	return &RequestConfig{
		Method:    method,
		URL:       url,
		Header:    header,
		Body:      body,
		Timeout:   timeout,
		Retryable: opts.ContentKind != ContentMultipartForm,
	}, nil
}

// bearerToken returns the stored access token when it is present and not yet
// expired, and the empty string otherwise.
func (c *Client) bearerToken(ctx context.Context) string {
	pair, err := c.config.Credentials.Get(ctx)
	if err != nil || pair.Access == "" {
		return ""
	}
	if credentials.IsExpired(pair.Access) {
		return ""
	}
	return pair.Access
}

// dispatch sends the assembled request: acquire a concurrency permit, apply
// the per-request deadline, perform the round trip, and capture the response.
func (c *Client) dispatch(ctx context.Context, cfg *RequestConfig) (*response.Response, error) {
	permitCtx, requestID, err := c.Concurrency.AcquirePermit(ctx)
	if err != nil {
		return nil, classifyDispatchError(err, cfg)
	}
	defer c.Concurrency.ReleasePermit(requestID)

	reqCtx, cancel := context.WithTimeout(permitCtx, cfg.Timeout)
	defer cancel()

	var bodyReader *bytes.Reader
	if cfg.Body != nil {
		bodyReader = bytes.NewReader(cfg.Body)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(reqCtx, cfg.Method, cfg.URL, bodyReader)
	if err != nil {
		return nil, classifyDispatchError(err, cfg)
	}
	for name, values := range cfg.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	for name, value := range c.config.CustomCookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	headers.LogHeaders(req, c.config.HideSensitiveData, c.Sugar)
	c.Sugar.Debugw("Dispatching request",
		zap.String("request_id", requestID.String()),
		zap.String("method", cfg.Method),
		zap.String("url", cfg.URL),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyDispatchError(err, cfg)
	}

	captured, err := response.Capture(resp)
	if err != nil {
		return nil, classifyDispatchError(err, cfg)
	}
	return captured, nil
}

// finish runs the response interceptors and classifies the captured response
// into a typed result or error.
func (c *Client) finish(ctx context.Context, cfg *RequestConfig, res *response.Response) (*response.Response, error) {
	res, err := c.applyResponseInterceptors(ctx, res)
	if err != nil {
		return nil, err
	}
	return response.Classify(res, cfg.Method, cfg.URL, c.Sugar)
}

// classifyDispatchError wraps a pre-response failure into a typed APIError.
// Deadline expiry (including net timeouts) maps to the timeout kind; every
// other connection-level failure is a transport error. Caller cancellation is
// deliberate, so it stays a transport error rather than a timeout.
func classifyDispatchError(err error, cfg *RequestConfig) error {
	kind := response.KindTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = response.KindTimeout
	}
	return &response.APIError{
		Kind:    kind,
		Method:  cfg.Method,
		URL:     cfg.URL,
		Message: err.Error(),
		Err:     err,
	}
}
