// httpclient/client.go
/* The httpclient package provides a shared HTTP client for the storefront API
that transparently manages an expiring credential pair. Every verb call runs
through the same pipeline: request assembly, the request-phase interceptors,
a deadline-bounded dispatch, the refresh coordinator when a 401 is
attributable to a stale access token, the response-phase interceptors, and
finally content-type driven classification into a typed result or a typed
error. Credential renewal is strictly single-flight per client instance:
however many concurrent requests discover the stale token, exactly one
renewal call is made and every queued request is replayed after it settles. */
package httpclient

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"github.com/rings-s/store-api-client/concurrency"
	"github.com/rings-s/store-api-client/credentials"
	"github.com/rings-s/store-api-client/logger"
	"github.com/rings-s/store-api-client/proxy"
	"go.uber.org/zap"
)

// Master struct/object
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client

	// refreshing and waiters are the refresh coordinator's state. They are
	// only ever touched while holding refreshMu.
	refreshMu  sync.Mutex
	refreshing bool
	waiters    []*waiter

	// Exported
	Sugar       *zap.SugaredLogger
	Concurrency *concurrency.Handler
}

// BuildClient creates a new HTTP client with the provided configuration.
// Clients are explicitly constructed and passed around; there is no package
// level instance, so single-flight state stays testable and resettable.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	if err := validateClientConfig(&config, populateDefaultValues); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sugar := config.Logger
	if sugar == nil {
		parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
		sugar = logger.BuildLogger(parsedLogLevel, config.LogOutputFormat)
	}

	httpClient := &http.Client{}

	if config.CookieJarEnabled {
		jar, err := cookiejar.New(nil)
		if err != nil {
			sugar.Errorw("Failed to create cookie jar", zap.Error(err))
			return nil, fmt.Errorf("setting up cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	if err := proxy.Configure(httpClient, config.ProxyURL, sugar); err != nil {
		return nil, err
	}

	setupRedirectPolicy(httpClient, config.FollowRedirects, config.MaxRedirects, sugar)

	client := &Client{
		config:      config,
		http:        httpClient,
		Sugar:       sugar,
		Concurrency: concurrency.NewHandler(config.MaxConcurrentRequests, sugar, &concurrency.Metrics{}),
	}

	sugar.Debugw("New API client initialized",
		zap.String("base_url", config.BaseURL),
		zap.String("refresh_endpoint", config.RefreshEndpoint),
		zap.Duration("custom_timeout", config.CustomTimeout),
		zap.Int("max_concurrent_requests", config.MaxConcurrentRequests),
		zap.Bool("follow_redirects", config.FollowRedirects),
		zap.Int("max_redirects", config.MaxRedirects),
		zap.Bool("cookie_jar_enabled", config.CookieJarEnabled),
		zap.Bool("hide_sensitive_data", config.HideSensitiveData),
	)

	return client, nil
}

// Credentials exposes the injected credential store, so endpoint wrappers
// (login, logout) can seed and drop the pair through the same backend the
// refresh coordinator uses.
func (c *Client) Credentials() credentials.Store {
	return c.config.Credentials
}

// setupRedirectPolicy installs the client's redirect behaviour: either stop
// at the first redirect, or follow up to maxRedirects.
func setupRedirectPolicy(httpClient *http.Client, follow bool, maxRedirects int, sugar *zap.SugaredLogger) {
	if !follow {
		httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return
	}
	httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			sugar.Warnw("Stopping redirect chain", zap.Int("redirects", len(via)), zap.String("url", req.URL.String()))
			return fmt.Errorf("stopped after %d redirects", len(via))
		}
		return nil
	}
}
