// Package logging provides a minimal logging interface and adapters for
// stockmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and agents use for operational observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Operational logging is distinct from the simulation's activity log: the
// activity log is domain data (the narration rendered by display
// collaborators), while Logger carries debug traces of triggers, dispatches
// and dropped no-ops.
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
