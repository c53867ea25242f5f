package models

import "time"

// PendingDeletion is a scheduled, cancellable removal of a locally-stored
// asset. At most one pending deletion exists per resource key; scheduling a
// new one for the same key restarts the full grace window.
type PendingDeletion struct {
	// ResourceKey is the asset's logical path.
	ResourceKey string `json:"resource_key"`

	// ScheduledAt is when the (latest) grace window started.
	ScheduledAt time.Time `json:"scheduled_at"`

	// Grace is the undo window; the asset is removed once it elapses.
	Grace time.Duration `json:"grace"`
}

// ExpiresAt returns the instant at which the grace window elapses.
func (p PendingDeletion) ExpiresAt() time.Time {
	return p.ScheduledAt.Add(p.Grace)
}
