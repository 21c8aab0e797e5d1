// httpclient/config.go
package httpclient

import (
	"time"

	"github.com/rings-s/store-api-client/credentials"
	"go.uber.org/zap"
)

// Options/Variables for Client
type ClientConfig struct {
	// BaseURL is the storefront API root, e.g. "https://shop.example.com/api".
	BaseURL string

	// Credentials is the injected key-value backend holding the token pair.
	Credentials credentials.Store

	// Log
	LogLevel          string
	LogOutputFormat   string // "JSON" for JSON format, "console" for human-readable format
	HideSensitiveData bool
	// Logger, when set, is used instead of building one from the log settings.
	Logger *zap.SugaredLogger

	// Cookies
	CookieJarEnabled bool
	CustomCookies    map[string]string // Key-value pairs for setting specific cookies on every request

	// ProxyURL, when set, routes all traffic through the given proxy.
	// Credentials may be embedded in the URL.
	ProxyURL string

	// Misc
	DefaultHeaders        map[string]string
	CustomTimeout         time.Duration // default per-request deadline
	MaxConcurrentRequests int
	FollowRedirects       bool
	MaxRedirects          int

	// RefreshEndpoint is where the renewal call posts {"refresh": <token>},
	// relative to BaseURL.
	RefreshEndpoint string

	// OnSessionExpired is invoked at most once per failed renewal, regardless
	// of how many requests were queued behind it. Typically a navigation-to-
	// login hook in the surrounding application.
	OnSessionExpired func()

	// Interceptors are fixed at construction and applied in registration order.
	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
}
