// httpclient/config_validation.go
package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultTimeout               = 10 * time.Second
	DefaultMaxConcurrentRequests = 10
	DefaultMaxRedirects          = 5
	DefaultRefreshEndpoint       = "accounts/token/refresh/"
	DefaultLogLevel              = "info"
)

var (
	errNoBaseURL         = errors.New("a base URL is required")
	errNoCredentialStore = errors.New("a credential store is required")
	errBadTimeout        = errors.New("custom timeout must be positive")
	errBadConcurrency    = errors.New("max concurrent requests must be positive")
)

// validateClientConfig checks the configuration for a new client, optionally
// populating defaults for anything left at its zero value.
func validateClientConfig(config *ClientConfig, populateDefaultValues bool) error {
	if populateDefaultValues {
		if config.CustomTimeout == 0 {
			config.CustomTimeout = DefaultTimeout
		}
		if config.MaxConcurrentRequests == 0 {
			config.MaxConcurrentRequests = DefaultMaxConcurrentRequests
		}
		if config.MaxRedirects == 0 {
			config.MaxRedirects = DefaultMaxRedirects
		}
		if config.RefreshEndpoint == "" {
			config.RefreshEndpoint = DefaultRefreshEndpoint
		}
		if config.LogLevel == "" {
			config.LogLevel = DefaultLogLevel
		}
	}

	if config.BaseURL == "" {
		return errNoBaseURL
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base URL %q is not an absolute URL", config.BaseURL)
	}
	if config.Credentials == nil {
		return errNoCredentialStore
	}
	if config.CustomTimeout <= 0 {
		return errBadTimeout
	}
	if config.MaxConcurrentRequests <= 0 {
		return errBadConcurrency
	}
	return nil
}
