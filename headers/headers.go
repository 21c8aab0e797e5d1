// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Compose sets values on h with fixed precedence: client defaults first, then
// caller-supplied overrides, then - last and highest precedence - the
// Authorization header when a bearer token is provided. An empty token leaves
// any caller-supplied Authorization value in place.
func Compose(h http.Header, defaults, overrides map[string]string, bearerToken string) {
	for name, value := range defaults {
		if value != "" {
			h.Set(name, value)
		}
	}
	for name, value := range overrides {
		if value != "" {
			h.Set(name, value)
		}
	}
	if bearerToken != "" {
		SetAuthorization(h, bearerToken)
	}
}

// SetAuthorization sets the Authorization header.
func SetAuthorization(h http.Header, token string) {
	// Ensure the token is prefixed with "Bearer " only once
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	h.Set("Authorization", token)
}

// LogHeaders logs the request headers at debug level, redacting sensitive
// values when hideSensitiveData is set.
func LogHeaders(req *http.Request, hideSensitiveData bool, sugar *zap.SugaredLogger) {
	redacted := http.Header{}
	for name, values := range req.Header {
		if len(values) > 0 {
			redacted.Set(name, RedactSensitiveHeaderData(hideSensitiveData, name, values[0]))
		}
	}
	sugar.Debugw("HTTP request headers", zap.String("headers", HeadersToString(redacted)))
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line for readability.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	return strings.Join(headerStrings, "\n")
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData {
		sensitiveKeys := map[string]bool{
			"Authorization": true,
			"Cookie":        true,
			"Set-Cookie":    true,
		}
		if sensitiveKeys[http.CanonicalHeaderKey(key)] {
			return "REDACTED"
		}
	}
	return value
}
