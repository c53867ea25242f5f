package models

import "time"

// SyncSession describes the connectivity and authentication state of the
// local installation against the remote account backend.
//
// A session is restored at process start from the credential vault (tokens)
// and the state store (pending flag), mutated exclusively by the sync
// orchestrator, and torn down on explicit sign-out.
type SyncSession struct {
	// Connected reports whether the last status check against the remote
	// backend succeeded.
	Connected bool `json:"connected"`

	// AccountID is the remote account identifier, empty while signed out.
	AccountID string `json:"account_id,omitempty"`

	// AccessToken is the short-lived bearer token for remote calls.
	// Never serialized.
	AccessToken string `json:"-"`

	// RefreshToken is the long-lived token used to obtain a new access
	// token. Never serialized.
	RefreshToken string `json:"-"`

	// TokenExpiry is the expiry instant of AccessToken, zero when unknown.
	TokenExpiry time.Time `json:"token_expiry,omitempty"`

	// PendingSync indicates local changes exist that have not yet been
	// reconciled with the remote backend. The flag is durable: it survives
	// restarts via the state store and is cleared only after a successful
	// sync run.
	PendingSync bool `json:"pending_sync"`

	// Entitled reports whether the account has sync privileges. Sessions
	// without the entitlement still track PendingSync but never trigger
	// network sync operations.
	Entitled bool `json:"entitled"`
}

// HasToken reports whether the session carries an access token.
func (s SyncSession) HasToken() bool {
	return s.AccessToken != ""
}

// TokenExpiresWithin reports whether the access token expires before
// now+window. An unknown (zero) expiry counts as expiring, forcing a
// refresh attempt rather than a request that will bounce with 401.
func (s SyncSession) TokenExpiresWithin(now time.Time, window time.Duration) bool {
	if s.TokenExpiry.IsZero() {
		return true
	}
	return s.TokenExpiry.Before(now.Add(window))
}
