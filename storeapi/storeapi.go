// storeapi/storeapi.go
/* The storeapi package wraps the storefront backend's endpoints in typed Go
methods. It is glue over httpclient: each method builds the endpoint path and
payload, lets the client handle credentials, renewal and classification, and
decodes the JSON result into the types in this package. */
package storeapi

import (
	"github.com/rings-s/store-api-client/httpclient"
	"github.com/rings-s/store-api-client/response"
)

// Client groups the endpoint wrappers around a shared HTTP client.
type Client struct {
	http *httpclient.Client
}

// New wraps an already-built HTTP client.
func New(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// HTTP exposes the underlying client for callers that need raw access.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// decode funnels a (response, error) pair into a typed result.
func decode[T any](res *response.Response, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	var out T
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
