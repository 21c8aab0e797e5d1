// httpclient/methods.go
package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rings-s/store-api-client/response"
)

// Get sends a GET request to the endpoint with optional query parameters.
func (c *Client) Get(ctx context.Context, endpoint string, query map[string]any) (*response.Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, &RequestOptions{Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (*response.Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, &RequestOptions{Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (*response.Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, &RequestOptions{Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body any) (*response.Response, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, &RequestOptions{Body: body})
}

// Delete sends a DELETE request. A nil body is the common case; some
// endpoints (logout) take a JSON payload.
func (c *Client) Delete(ctx context.Context, endpoint string, body any) (*response.Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, &RequestOptions{Body: body})
}

// DoMultiPart uploads form fields and files as multipart/form-data. Only POST
// and PUT are accepted. Multipart requests are never replayed after a
// credential renewal.
func (c *Client) DoMultiPart(ctx context.Context, method, endpoint string, fields, files map[string]string) (*response.Response, error) {
	if method != http.MethodPost && method != http.MethodPut {
		return nil, fmt.Errorf("multipart requests require POST or PUT, got %s", method)
	}
	return c.Do(ctx, method, endpoint, &RequestOptions{
		ContentKind: ContentMultipartForm,
		Fields:      fields,
		Files:       files,
	})
}
