// httpclient/body.go
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
)

// ContentKind declares how a request body is serialized.
type ContentKind int

const (
	// ContentJSON marshals the body to JSON. The zero value, since the
	// storefront backend is JSON-over-HTTP throughout.
	ContentJSON ContentKind = iota
	// ContentFormURLEncoded encodes the body as application/x-www-form-urlencoded.
	ContentFormURLEncoded
	// ContentMultipartForm builds a multipart/form-data payload from the
	// options' Fields and Files maps.
	ContentMultipartForm
)

// serializeBody turns the request options into a payload and its Content-Type.
// No body yields no payload and an empty content type.
func serializeBody(opts *RequestOptions) ([]byte, string, error) {
	switch opts.ContentKind {
	case ContentJSON:
		if opts.Body == nil {
			return nil, "", nil
		}
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
		}
		return data, "application/json", nil

	case ContentFormURLEncoded:
		values, err := formValues(opts.Body)
		if err != nil {
			return nil, "", err
		}
		return []byte(values.Encode()), "application/x-www-form-urlencoded", nil

	case ContentMultipartForm:
		return serializeMultipart(opts.Fields, opts.Files)

	default:
		return nil, "", fmt.Errorf("unsupported content kind: %d", opts.ContentKind)
	}
}

// formValues accepts either url.Values or map[string]string as a form body.
func formValues(body any) (url.Values, error) {
	switch v := body.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return v, nil
	case map[string]string:
		values := url.Values{}
		for key, value := range v {
			values.Set(key, value)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("form body must be url.Values or map[string]string, got %T", body)
	}
}

// serializeMultipart builds a multipart/form-data body from form fields and
// file attachments keyed by field name.
func serializeMultipart(fields map[string]string, files map[string]string) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for fieldName, filePath := range files {
		if err := writeFilePart(writer, fieldName, filePath); err != nil {
			return nil, "", err
		}
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, fieldName, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filePath, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(fieldName, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("creating form file %q: %w", fieldName, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying %q into form: %w", filePath, err)
	}
	return nil
}
