// response/response.go
/* Responsible for capturing and classifying API responses. A Response carries
the raw status, headers and body; Classify parses the body by content type for
success statuses and raises a typed APIError for everything else. */
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rings-s/store-api-client/status"
	"go.uber.org/zap"
)

// Response is the caller-visible result of a dispatched request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Parsed holds the structurally decoded body: maps/slices for JSON,
	// a string for textual content, nil for binary payloads.
	Parsed any
}

// Capture drains and closes the body of an http.Response into a Response.
// No classification happens here; the refresh coordinator needs to inspect
// the raw status before the response pipeline runs.
func Capture(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Classify finishes a captured response: on a success status the body is
// parsed by content type into r.Parsed; on any other status a typed APIError
// is returned and the Response is nil.
func Classify(r *Response, method, url string, sugar *zap.SugaredLogger) (*Response, error) {
	if !status.IsSuccessStatusCode(r.StatusCode) {
		apiErr := newHTTPError(r, method, url)
		if status.IsValidationStatusCode(r.StatusCode) && len(apiErr.Fields) > 0 {
			apiErr.Kind = KindValidation
		}
		sugar.Debugw("Classified error response",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", r.StatusCode),
			zap.String("kind", string(apiErr.Kind)),
		)
		return nil, apiErr
	}

	if len(r.Body) == 0 {
		return r, nil
	}

	mimeType, _ := parseHeader(r.Header.Get("Content-Type"))
	switch {
	case mimeType == "application/json":
		var parsed any
		if err := json.Unmarshal(r.Body, &parsed); err != nil {
			sugar.Errorw("JSON unmarshal error", zap.Error(err), zap.String("url", url))
			return nil, fmt.Errorf("decoding JSON response: %w", err)
		}
		r.Parsed = parsed
	case isBinaryContent(mimeType, r.Header.Get("Content-Disposition")):
		// Raw bytes stay in Body; nothing to parse.
	default:
		r.Parsed = string(r.Body)
	}

	return r, nil
}

// Decode unmarshals the raw JSON body into out. It is the typed counterpart
// of the Parsed field, used by the endpoint wrappers.
func (r *Response) Decode(out any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, out)
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// isBinaryContent checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryContent(mimeType, contentDisposition string) bool {
	return strings.Contains(mimeType, "application/octet-stream") ||
		strings.HasPrefix(contentDisposition, "attachment")
}
