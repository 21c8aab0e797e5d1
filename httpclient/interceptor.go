// httpclient/interceptor.go
package httpclient

import (
	"context"

	"github.com/google/uuid"
	"github.com/rings-s/store-api-client/concurrency"
	"github.com/rings-s/store-api-client/response"
)

// RequestInterceptor runs after assembly and before dispatch. It may mutate
// the returned RequestConfig or replace it. A non-nil error aborts the
// request without dispatching.
type RequestInterceptor func(ctx context.Context, cfg *RequestConfig) (*RequestConfig, error)

// ResponseInterceptor runs after capture and before classification, in
// registration order. A non-nil error aborts the pipeline.
type ResponseInterceptor func(ctx context.Context, res *response.Response) (*response.Response, error)

// applyRequestInterceptors runs the registered request interceptors in order,
// stopping at the first error.
func (c *Client) applyRequestInterceptors(ctx context.Context, cfg *RequestConfig) (*RequestConfig, error) {
	for _, intercept := range c.config.RequestInterceptors {
		next, err := intercept(ctx, cfg)
		if err != nil {
			return nil, err
		}
		cfg = next
	}
	return cfg, nil
}

// applyResponseInterceptors runs the registered response interceptors in
// order, stopping at the first error.
func (c *Client) applyResponseInterceptors(ctx context.Context, res *response.Response) (*response.Response, error) {
	for _, intercept := range c.config.ResponseInterceptors {
		next, err := intercept(ctx, res)
		if err != nil {
			return nil, err
		}
		res = next
	}
	return res, nil
}

// RequestIDInterceptor stamps each outgoing request with an X-Request-ID
// header, reusing the concurrency permit's ID when one is present.
func RequestIDInterceptor() RequestInterceptor {
	return func(ctx context.Context, cfg *RequestConfig) (*RequestConfig, error) {
		if cfg.Header.Get("X-Request-Id") != "" {
			return cfg, nil
		}
		if id, ok := ctx.Value(concurrency.RequestIDKey{}).(uuid.UUID); ok {
			cfg.Header.Set("X-Request-Id", id.String())
		} else {
			cfg.Header.Set("X-Request-Id", uuid.NewString())
		}
		return cfg, nil
	}
}
