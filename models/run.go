package models

import "time"

// SyncTrigger identifies the event that caused a sync run to start.
type SyncTrigger string

const (
	TriggerStartup         SyncTrigger = "startup"
	TriggerNetworkRecovery SyncTrigger = "networkRecovery"
	TriggerPeriodic        SyncTrigger = "periodic"
	TriggerManual          SyncTrigger = "manual"
)

// SyncOutcome is the terminal result of a sync run.
type SyncOutcome string

const (
	// OutcomeSuccess means the run completed and local work was reconciled.
	OutcomeSuccess SyncOutcome = "success"

	// OutcomeAuthFailure means the backend rejected the session credentials.
	// The session is demoted to disconnected and re-authentication is needed.
	OutcomeAuthFailure SyncOutcome = "authFailure"

	// OutcomeNetworkFailure means the transport failed before a response
	// was obtained. The pending flag is preserved for a later retry.
	OutcomeNetworkFailure SyncOutcome = "networkFailure"

	// OutcomeConflict means the backend reported a record-level conflict.
	OutcomeConflict SyncOutcome = "conflict"

	// OutcomeCoalesced means the trigger arrived while another run was in
	// flight and was absorbed by it. Not an error.
	OutcomeCoalesced SyncOutcome = "coalesced"
)

// SyncRun records a single reconciliation attempt. At most one run is in
// flight process-wide at any instant, across all trigger sources.
type SyncRun struct {
	ID         string      `json:"id"`
	Trigger    SyncTrigger `json:"trigger"`
	Outcome    SyncOutcome `json:"outcome"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
}
