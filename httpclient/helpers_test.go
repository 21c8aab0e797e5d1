// httpclient/helpers_test.go
package httpclient

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rings-s/store-api-client/credentials"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mintToken signs a JWT carrying only an exp claim. The client never verifies
// signatures, so the signing key is irrelevant.
func mintToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func expiredToken(t *testing.T) string {
	t.Helper()
	return mintToken(t, time.Now().Add(-time.Hour))
}

func freshToken(t *testing.T) string {
	t.Helper()
	return mintToken(t, time.Now().Add(time.Hour))
}

// newTestClient builds a client against a test server URL with a silent
// logger and defaults populated.
func newTestClient(t *testing.T, baseURL string, store credentials.Store, mutate ...func(*ClientConfig)) *Client {
	t.Helper()
	config := ClientConfig{
		BaseURL:     baseURL,
		Credentials: store,
		Logger:      zap.NewNop().Sugar(),
	}
	for _, m := range mutate {
		m(&config)
	}
	client, err := BuildClient(config, true)
	require.NoError(t, err)
	return client
}

// seedPair stores an access/refresh pair before the test runs.
func seedPair(t *testing.T, store credentials.Store, access, refresh string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), credentials.Pair{
		Access:  access,
		Refresh: refresh,
	}))
}
