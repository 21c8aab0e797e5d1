// response/error.go
// This package provides utility functions and structures for handling and categorizing HTTP responses.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// ErrorKind partitions client failures into the categories callers branch on.
// Only KindAuth terminates the session; everything else propagates unchanged.
type ErrorKind string

const (
	// KindTransport covers DNS, connection and TLS level failures.
	KindTransport ErrorKind = "transport"
	// KindTimeout covers requests that exceeded their deadline.
	KindTimeout ErrorKind = "timeout"
	// KindAuth covers a 401 left unresolved after credential renewal, or a
	// renewal that itself failed.
	KindAuth ErrorKind = "auth"
	// KindHTTP covers every other non-2xx status.
	KindHTTP ErrorKind = "http"
	// KindValidation is a KindHTTP subtype carrying field-level detail.
	KindValidation ErrorKind = "validation"
)

// APIError represents a typed client failure. StatusCode is zero for
// transport and timeout failures that never produced an HTTP status.
type APIError struct {
	Kind       ErrorKind           `json:"kind"`
	StatusCode int                 `json:"status_code,omitempty"`
	Method     string              `json:"method,omitempty"`
	URL        string              `json:"url,omitempty"`
	Message    string              `json:"message"`
	Raw        string              `json:"raw,omitempty"`
	Fields     map[string][]string `json:"fields,omitempty"`

	// Err holds the underlying cause for transport and timeout kinds.
	Err error `json:"-"`
}

// Error returns a string representation of the APIError, making it compatible
// with the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (%s): status=%d message=%s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%s): %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError unwraps err into an *APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an APIError of the given kind. KindHTTP
// matches KindValidation as well, since validation errors are an HTTP
// error subtype.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	if apiErr.Kind == kind {
		return true
	}
	return kind == KindHTTP && apiErr.Kind == KindValidation
}

// newHTTPError builds an APIError for a non-success response, deriving the
// message and any field-level details from the body by content type.
func newHTTPError(r *Response, method, url string) *APIError {
	apiErr := &APIError{
		Kind:       KindHTTP,
		StatusCode: r.StatusCode,
		Method:     method,
		URL:        url,
		Message:    http.StatusText(r.StatusCode),
		Raw:        string(r.Body),
	}

	mimeType, _ := parseHeader(r.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		mineJSONError(r.Body, apiErr)
	case "application/xml", "text/xml":
		mineXMLError(r.Body, apiErr)
	case "text/html":
		mineHTMLError(r.Body, apiErr)
	default:
		if text := strings.TrimSpace(string(r.Body)); text != "" {
			apiErr.Message = text
		}
	}

	return apiErr
}

// mineJSONError extracts a human-readable message from the common storefront
// error shapes ({"message": ...}, {"detail": ...}, {"error": ...}) and DRF
// style field maps ({"email": ["required"]}).
func mineJSONError(body []byte, apiErr *APIError) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return
	}

	for _, key := range []string{"message", "detail", "error"} {
		var msg string
		if raw, ok := payload[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
			apiErr.Message = msg
			break
		}
	}

	fields := make(map[string][]string)
	for key, raw := range payload {
		var values []string
		if err := json.Unmarshal(raw, &values); err == nil && len(values) > 0 {
			fields[key] = values
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
}

// mineXMLError collects non-empty text nodes from an XML error body.
func mineXMLError(body []byte, apiErr *APIError) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiErr.Message = strings.Join(messages, "; ")
	}
}

// mineHTMLError concatenates the text of <p> and <title> elements from an
// HTML error page, which is what Django emits for unhandled failures.
func mineHTMLError(body []byte, apiErr *APIError) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return
	}

	var messages []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "title") {
			var text strings.Builder
			var walk func(*html.Node)
			walk = func(c *html.Node) {
				if c.Type == html.TextNode {
					text.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					walk(child)
				}
			}
			walk(n)
			if t := strings.TrimSpace(text.String()); t != "" {
				messages = append(messages, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)

	if len(messages) > 0 {
		apiErr.Message = strings.Join(messages, "; ")
	}
}
