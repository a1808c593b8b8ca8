// Package engine provides the orchestration layer of the inventory
// simulation. The Engine owns the shared stores (ledger, activity log, stock
// history), wires the six agent behaviors to them, runs the delayed action
// scheduler whose firings re-enter the agents, and exposes the externally
// triggerable action surface together with the read-only snapshots display
// collaborators poll.
package engine
