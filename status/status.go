// status/status.go
// This package provides utility functions for categorizing HTTP response status codes.
package status

import "net/http"

// IsSuccessStatusCode reports whether the status code is in the 2xx range.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsUnauthorizedStatusCode reports whether the status code is 401, the only
// status that can enter the credential refresh path.
func IsUnauthorizedStatusCode(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}

// IsValidationStatusCode reports whether the status code is one the storefront
// backend uses for request-validation failures with field-level details.
func IsValidationStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return true
	default:
		return false
	}
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
// Redirect status codes instruct the client to make a new request to a different URI, as
// defined in the response's Location header.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}
