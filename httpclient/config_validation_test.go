// httpclient/config_validation_test.go
package httpclient

import (
	"testing"
	"time"

	"github.com/rings-s/store-api-client/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClientConfigPopulatesDefaults(t *testing.T) {
	config := &ClientConfig{
		BaseURL:     "https://shop.example.com/api",
		Credentials: credentials.NewMemoryStore(),
	}
	require.NoError(t, validateClientConfig(config, true))

	assert.Equal(t, DefaultTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
	assert.Equal(t, DefaultRefreshEndpoint, config.RefreshEndpoint)
	assert.Equal(t, DefaultLogLevel, config.LogLevel)
}

func TestValidateClientConfigRejections(t *testing.T) {
	store := credentials.NewMemoryStore()
	tests := []struct {
		name   string
		config ClientConfig
	}{
		{
			name:   "missing base URL",
			config: ClientConfig{Credentials: store},
		},
		{
			name:   "relative base URL",
			config: ClientConfig{BaseURL: "/api", Credentials: store},
		},
		{
			name:   "missing credential store",
			config: ClientConfig{BaseURL: "https://shop.example.com/api"},
		},
		{
			name: "negative timeout",
			config: ClientConfig{
				BaseURL:       "https://shop.example.com/api",
				Credentials:   store,
				CustomTimeout: -time.Second,
			},
		},
		{
			name: "negative concurrency",
			config: ClientConfig{
				BaseURL:               "https://shop.example.com/api",
				Credentials:           store,
				MaxConcurrentRequests: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClientConfig(&tt.config, false)
			assert.Error(t, err)
		})
	}
}

func TestBuildClientRejectsInvalidConfig(t *testing.T) {
	_, err := BuildClient(ClientConfig{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
