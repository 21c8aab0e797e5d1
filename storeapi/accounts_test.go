// storeapi/accounts_test.go
package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rings-s/store-api-client/credentials"
	"github.com/rings-s/store-api-client/httpclient"
	"github.com/rings-s/store-api-client/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAPI(t *testing.T, handler http.Handler) (*Client, credentials.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := credentials.NewMemoryStore()
	client, err := httpclient.BuildClient(httpclient.ClientConfig{
		BaseURL:     server.URL,
		Credentials: store,
		Logger:      zap.NewNop().Sugar(),
	}, true)
	require.NoError(t, err)
	return New(client), store
}

func TestLoginStoresTokenPair(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "jo@example.com", creds["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": {"id": "u1", "email": "jo@example.com", "is_verified": true},
			"tokens": {"access": "access-token", "refresh": "refresh-token"}
		}`))
	})

	api, store := newTestAPI(t, mux)

	session, err := api.Login(context.Background(), "jo@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", session.User.Email)

	pair, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.Access)
	assert.Equal(t, "refresh-token", pair.Refresh)
}

func TestLoginRejectionLeavesStoreEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	api, store := newTestAPI(t, mux)

	_, err := api.Login(context.Background(), "jo@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, response.IsKind(err, response.KindHTTP))

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, credentials.ErrNotFound)
}

func TestLogoutClearsStoreEvenWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	})

	api, store := newTestAPI(t, mux)
	require.NoError(t, store.Set(context.Background(), credentials.Pair{
		Access:  "access-token",
		Refresh: "refresh-token",
	}))

	err := api.Logout(context.Background())
	require.Error(t, err, "server failure still surfaces")

	_, getErr := store.Get(context.Background())
	assert.ErrorIs(t, getErr, credentials.ErrNotFound, "local pair must be gone")
}

func TestLogoutSendsRefreshToken(t *testing.T) {
	sentRefresh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/logout/", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		sentRefresh <- payload["refresh_token"]
		w.WriteHeader(http.StatusNoContent)
	})

	api, store := newTestAPI(t, mux)
	require.NoError(t, store.Set(context.Background(), credentials.Pair{
		Access:  "access-token",
		Refresh: "refresh-token",
	}))

	require.NoError(t, api.Logout(context.Background()))
	assert.Equal(t, "refresh-token", <-sentRefresh)
}

func TestRegisterValidationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email":["user with this email already exists."]}`))
	})

	api, _ := newTestAPI(t, mux)

	_, err := api.Register(context.Background(), RegisterRequest{
		Email:           "jo@example.com",
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
	})
	require.Error(t, err)

	apiErr, ok := response.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, response.KindValidation, apiErr.Kind)
	assert.Contains(t, apiErr.Fields, "email")
}

func TestProfileDecodesUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "u1",
			"email": "jo@example.com",
			"first_name": "Jo",
			"is_verified": true,
			"date_joined": "2026-01-15T09:30:00Z"
		}`))
	})

	api, _ := newTestAPI(t, mux)

	user, err := api.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Jo", user.FirstName)
	assert.True(t, user.IsVerified)
	assert.Equal(t, 2026, user.DateJoined.Year())
}
