package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the session
	// credentials (expired or invalid token).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrConflict is returned when the backend reports a record-level
	// conflict for the sync run.
	ErrConflict = errors.New("sync conflict")

	// ErrTransport wraps request-level failures (DNS, dial, timeout) where
	// no HTTP response was obtained.
	ErrTransport = errors.New("transport failure")
)
