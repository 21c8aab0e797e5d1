// httpclient/refresh.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rings-s/store-api-client/credentials"
	"github.com/rings-s/store-api-client/response"
	"github.com/rings-s/store-api-client/status"
	"go.uber.org/zap"
)

// waiter is a request parked behind an in-flight credential renewal. It holds
// everything needed to replay the request once the renewal settles, and a
// buffered result channel so the coordinator never blocks on delivery.
type waiter struct {
	ctx      context.Context
	method   string
	endpoint string
	opts     *RequestOptions
	result   chan waiterResult
}

type waiterResult struct {
	res *response.Response
	err error
}

// handleUnauthorized decides what a 401 means. Only a 401 on a retryable
// request whose stored access token is missing or expired enters the renewal
// path; a 401 with a still-valid token is a genuine authorization failure for
// that endpoint and classifies as a plain HTTP error.
func (c *Client) handleUnauthorized(ctx context.Context, method, endpoint string, opts *RequestOptions, cfg *RequestConfig, res *response.Response) (*response.Response, error) {
	if !cfg.Retryable {
		return nil, c.authErrorFromResponse(cfg, res)
	}

	pair, err := c.config.Credentials.Get(ctx)
	attributable := errors.Is(err, credentials.ErrNotFound) ||
		(err == nil && credentials.IsExpired(pair.Access))
	if !attributable {
		return c.finish(ctx, cfg, res)
	}

	c.Sugar.Debugw("401 attributed to stale credential, entering renewal",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
	)
	return c.resolveExpiredCredential(ctx, method, endpoint, opts)
}

// resolveExpiredCredential is the single-flight renewal coordinator. The
// first request to arrive owns the renewal; every later request parks as a
// waiter. After the renewal settles, waiters are replayed in arrival order
// through the normal pipeline, so each replay re-derives its Authorization
// header from the freshly stored token.
func (c *Client) resolveExpiredCredential(ctx context.Context, method, endpoint string, opts *RequestOptions) (*response.Response, error) {
	c.refreshMu.Lock()
	if c.refreshing {
		w := &waiter{
			ctx:      ctx,
			method:   method,
			endpoint: endpoint,
			opts:     opts,
			result:   make(chan waiterResult, 1),
		}
		c.waiters = append(c.waiters, w)
		c.refreshMu.Unlock()

		select {
		case r := <-w.result:
			return r.res, r.err
		case <-ctx.Done():
			return nil, classifyDispatchError(ctx.Err(), &RequestConfig{Method: method, URL: endpoint})
		}
	}
	// A renewal may have completed between this request's 401 and now. When
	// the stored token is already fresh again, replaying is enough.
	if pair, err := c.config.Credentials.Get(ctx); err == nil &&
		pair.Access != "" && !credentials.IsExpired(pair.Access) {
		c.refreshMu.Unlock()
		return c.do(ctx, method, endpoint, opts, false)
	}
	c.refreshing = true
	c.refreshMu.Unlock()

	renewErr := c.renewCredential(ctx)

	c.refreshMu.Lock()
	c.refreshing = false
	queued := c.waiters
	c.waiters = nil
	c.refreshMu.Unlock()

	if renewErr != nil {
		c.Sugar.Warnw("Credential renewal failed, clearing session",
			zap.Error(renewErr),
			zap.Int("queued_requests", len(queued)),
		)
		if err := c.config.Credentials.Clear(context.WithoutCancel(ctx)); err != nil {
			c.Sugar.Errorw("Failed to clear credential store", zap.Error(err))
		}
		for _, w := range queued {
			w.result <- waiterResult{err: c.sessionExpiredError(w.method, w.endpoint, renewErr)}
		}
		if c.config.OnSessionExpired != nil {
			c.config.OnSessionExpired()
		}
		return nil, c.sessionExpiredError(method, endpoint, renewErr)
	}

	c.Sugar.Debugw("Credential renewal succeeded, replaying queued requests",
		zap.Int("queued_requests", len(queued)),
	)
	for _, w := range queued {
		go func(w *waiter) {
			res, err := c.do(w.ctx, w.method, w.endpoint, w.opts, false)
			w.result <- waiterResult{res: res, err: err}
		}(w)
	}

	return c.do(ctx, method, endpoint, opts, false)
}

// renewalRequest and renewalResponse mirror the token refresh contract:
// POST {"refresh": <token>} yields a new access token and, when the server
// rotates refresh tokens, a replacement refresh token.
type renewalRequest struct {
	Refresh string `json:"refresh"`
}

type renewalResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// renewCredential performs the single renewal call and stores the resulting
// pair. It runs detached from the owning caller's cancellation: the renewal
// serves every queued request, so one impatient caller must not abort it.
// The client timeout still bounds it.
func (c *Client) renewCredential(ctx context.Context) error {
	renewCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.config.CustomTimeout)
	defer cancel()

	pair, err := c.config.Credentials.Get(renewCtx)
	if err != nil {
		return fmt.Errorf("loading credential pair: %w", err)
	}
	if pair.Refresh == "" {
		return errors.New("no refresh token available")
	}

	url, err := buildRequestURL(c.config.BaseURL, c.config.RefreshEndpoint, nil)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(renewalRequest{Refresh: pair.Refresh})
	if err != nil {
		return fmt.Errorf("marshaling renewal request: %w", err)
	}

	req, err := http.NewRequestWithContext(renewCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building renewal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("renewal call: %w", err)
	}
	captured, err := response.Capture(resp)
	if err != nil {
		return err
	}
	if !status.IsSuccessStatusCode(captured.StatusCode) {
		return fmt.Errorf("renewal rejected with status %d", captured.StatusCode)
	}

	var renewed renewalResponse
	if err := captured.Decode(&renewed); err != nil {
		return fmt.Errorf("decoding renewal response: %w", err)
	}
	if renewed.Access == "" {
		return errors.New("renewal response carried no access token")
	}

	// The backend rotates refresh tokens; keep the old one only when the
	// response omits a replacement.
	next := credentials.Pair{Access: renewed.Access, Refresh: renewed.Refresh}
	if next.Refresh == "" {
		next.Refresh = pair.Refresh
	}
	if err := c.config.Credentials.Set(renewCtx, next); err != nil {
		return fmt.Errorf("storing renewed credential pair: %w", err)
	}
	return nil
}

// sessionExpiredError is the terminal error every request queued behind a
// failed renewal receives.
func (c *Client) sessionExpiredError(method, endpoint string, cause error) error {
	return &response.APIError{
		Kind:       response.KindAuth,
		StatusCode: http.StatusUnauthorized,
		Method:     method,
		URL:        endpoint,
		Message:    "session expired: credential renewal failed",
		Err:        cause,
	}
}

// authErrorFromResponse classifies a captured 401 and re-tags it as an
// authentication failure, preserving the server's message and body.
func (c *Client) authErrorFromResponse(cfg *RequestConfig, res *response.Response) error {
	_, err := response.Classify(res, cfg.Method, cfg.URL, c.Sugar)
	if apiErr, ok := response.AsAPIError(err); ok {
		apiErr.Kind = response.KindAuth
		return apiErr
	}
	return err
}
