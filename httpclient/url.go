// httpclient/url.go
package httpclient

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// buildRequestURL joins the base URL and endpoint into an absolute URL and
// appends query parameters. Parameters with nil values are omitted; the rest
// are appended in sorted key order so identical inputs always produce the
// same URL.
func buildRequestURL(baseURL, endpoint string, query map[string]any) (string, error) {
	full := strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")

	u, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("building request URL for %q: %w", endpoint, err)
	}

	if len(query) > 0 {
		values := u.Query()
		keys := make([]string, 0, len(query))
		for key, value := range query {
			if value == nil {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			values.Set(key, formatQueryValue(query[key]))
		}
		u.RawQuery = values.Encode()
	}

	return u.String(), nil
}

// formatQueryValue renders a query parameter value as a string.
func formatQueryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
