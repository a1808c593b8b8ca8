// Package schedule contains the delayed action scheduler: a min-heap of
// pending actions drained by a dedicated dispatcher goroutine. Agents enqueue
// plain-data actions (kind + product id) to fire once after a fixed delay;
// the handler re-enters the engine and reads whatever ledger state exists at
// fire time. Scheduled actions are not cancellable.
package schedule
