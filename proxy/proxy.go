// proxy/proxy.go
package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Configure routes the client's traffic through the given proxy. Credentials
// embedded in the URL become a Proxy-Authorization header on CONNECT. An
// empty URL leaves the client untouched.
func Configure(httpClient *http.Client, proxyURL string, sugar *zap.SugaredLogger) error {
	if proxyURL == "" {
		return nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("parsing proxy URL: %w", err)
	}

	transport := &http.Transport{Proxy: http.ProxyURL(parsed)}
	if parsed.User != nil {
		transport.ProxyConnectHeader = http.Header{
			"Proxy-Authorization": []string{parsed.User.String()},
		}
	}
	httpClient.Transport = transport

	sugar.Infow("Proxy configured", zap.String("proxy_url", parsed.Redacted()))
	return nil
}
