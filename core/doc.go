// Package core provides the foundational domain types and interfaces used by
// stockmesh. It defines the core abstractions for:
//
//   - Products (the shared mutable inventory records)
//   - Activity log entries (immutable agent action narration)
//   - Stock history samples (append-only stock level time series)
//   - Actions (plain-data tokens describing a scheduled follow-up step)
//   - Pluggable stores for the ledger, activity log and stock history
//   - The delayed action scheduler, clock and random source contracts
//
// The package intentionally keeps implementation concerns (in-memory stores,
// engine orchestration, concrete agents) out of scope, exposing small
// interfaces to enable custom backends and deterministic testing.
package core
