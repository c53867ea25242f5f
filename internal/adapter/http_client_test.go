package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) RemoteBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPRemoteBackend(HTTPClientConfig{BaseURL: srv.URL, Timeout: time.Second})
}

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "acc-1",
		"exp": expiry.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestHTTPRemoteBackend_CheckStatus_Success(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/session/status", r.URL.Path)
		assert.Equal(t, "Bearer the-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(AccountStatus{AccountID: "acc-1", Entitled: true})
	})

	status, err := backend.CheckStatus(context.Background(), "the-token")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", status.AccountID)
	assert.True(t, status.Entitled)
}

func TestHTTPRemoteBackend_CheckStatus_Unauthorized(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := backend.CheckStatus(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPRemoteBackend_CheckStatus_Forbidden(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plan lapsed", http.StatusForbidden)
	})

	_, err := backend.CheckStatus(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPRemoteBackend_CheckStatus_TransportFailure(t *testing.T) {
	// Nothing listens here.
	backend := NewHTTPRemoteBackend(HTTPClientConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	})

	_, err := backend.CheckStatus(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestHTTPRemoteBackend_Refresh_Success(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	access := signedToken(t, expiry)

	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/refresh", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  access,
			"refresh_token": "new-refresh",
		})
	})

	pair, err := backend.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, access, pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
	assert.True(t, pair.Expiry.Equal(expiry), "expiry must come from the token's exp claim")
}

func TestHTTPRemoteBackend_Refresh_Rejected(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "refresh token revoked", http.StatusUnauthorized)
	})

	_, err := backend.Refresh(context.Background(), "revoked")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPRemoteBackend_PerformSync_Success(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/run", r.URL.Path)

		var req SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "acc-1", req.AccountID)
		assert.Equal(t, "run-1", req.RunID)

		w.WriteHeader(http.StatusOK)
	})

	err := backend.PerformSync(context.Background(), "tok", SyncRequest{
		AccountID: "acc-1",
		RunID:     "run-1",
		StartedAt: time.Now(),
	})
	assert.NoError(t, err)
}

func TestHTTPRemoteBackend_PerformSync_Conflict(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record modified remotely", http.StatusConflict)
	})

	err := backend.PerformSync(context.Background(), "tok", SyncRequest{RunID: "run-1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPRemoteBackend_PerformSync_ServerError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := backend.PerformSync(context.Background(), "tok", SyncRequest{RunID: "run-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "http 500")
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	got, err := TokenExpiry(signedToken(t, expiry))
	require.NoError(t, err)
	assert.True(t, got.Equal(expiry))
}

func TestTokenExpiry_NotAToken(t *testing.T) {
	_, err := TokenExpiry("opaque-session-id")
	assert.Error(t, err)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "acc-1"})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = TokenExpiry(s)
	assert.Error(t, err)
}
