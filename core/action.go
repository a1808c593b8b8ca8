package core

import "time"

// ActionKind tags a scheduled follow-up step. Scheduled actions are plain
// data, never closures: the handler reads fresh ledger state at fire time, so
// a product may well have changed between scheduling and firing. That lag is
// intentional; it models the gap between decision and execution.
type ActionKind string

const (
	// KindRestock asks the store agent to refill the shelf from the warehouse.
	KindRestock ActionKind = "restock"
	// KindReorder asks the warehouse agent to order a supplier lot.
	KindReorder ActionKind = "reorder"
	// KindDeliver asks the supplier agent to deliver the ordered lot.
	KindDeliver ActionKind = "deliver"
)

// Action is the transient scheduling token carried through the delayed action
// scheduler. It fires once and is then discarded; there is no cancellation.
type Action struct {
	Kind      ActionKind
	ProductID int
}

// Scheduler enqueues a one-shot dispatch of an action to occur no earlier
// than delay after the call. Two actions scheduled with the same delay fire
// in schedule order; beyond that there is no ordering guarantee relative to
// unrelated actions. Schedule must not block the caller.
type Scheduler interface {
	Schedule(delay time.Duration, action Action)
}

// Handler receives actions from a scheduler when they come due.
type Handler func(action Action)

// Clock abstracts wall time so schedulers can run against a manual clock in
// tests. After follows the time.After contract.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Rand is the injectable random source behind the pricing agent's randomized
// regimes. Float64 must return a value in [0.0, 1.0), matching math/rand.
type Rand interface {
	Float64() float64
}
