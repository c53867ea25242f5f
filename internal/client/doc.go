// Package client implements the sync-core application runtime.
//
// It wires the storage layer, the credential vault, the trash scheduler,
// the sync orchestrator and the background workers into a single process
// lifecycle: migrate, bootstrap, sweep, initial sync, then serve until
// shutdown.
package client
