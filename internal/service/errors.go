package service

import "errors"

var (
	// ErrNotEntitled is returned when a sync run is requested for a
	// session whose account plan does not include sync. Pending work is
	// still tracked for such sessions; only the network operation is
	// refused.
	ErrNotEntitled = errors.New("session is not entitled to sync")

	// ErrReauthRequired is returned when the session has no usable
	// credentials and the user must sign in again.
	ErrReauthRequired = errors.New("re-authentication required")
)
