// Package adapter implements the outbound HTTP transport to the remote
// account backend. The rest of the application only sees the
// [RemoteBackend] interface; protocol details stay in this package.
package adapter

import (
	"context"
	"time"
)

// AccountStatus is the remote backend's view of the session, returned by a
// status check.
type AccountStatus struct {
	// AccountID is the remote account identifier.
	AccountID string `json:"account_id"`

	// Entitled reports whether the account plan includes sync.
	Entitled bool `json:"entitled"`
}

// TokenPair is a fresh credential pair issued by the refresh endpoint.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`

	// Expiry is extracted client-side from the access token's exp claim;
	// zero when the token carries no expiry.
	Expiry time.Time `json:"-"`
}

// SyncRequest identifies one reconciliation run to the backend.
type SyncRequest struct {
	AccountID string    `json:"account_id"`
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
}

// RemoteBackend is the contract for all remote calls the sync core makes.
// Implementations surface [ErrUnauthorized] for rejected credentials,
// [ErrConflict] for record-level conflicts, and wrap transport-level
// failures in [ErrTransport] so callers can classify outcomes with
// errors.Is.
type RemoteBackend interface {
	// CheckStatus validates accessToken against the backend and returns
	// the current account status.
	CheckStatus(ctx context.Context, accessToken string) (AccountStatus, error)

	// Refresh exchanges refreshToken for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// PerformSync executes one reconciliation run for the session
	// identified by accessToken.
	PerformSync(ctx context.Context, accessToken string, req SyncRequest) error
}
