package agent

import (
	"time"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/logging"
)

// Deps bundles the collaborators shared by all agent behaviors. The zero
// value is not usable; construct it with the stores the engine owns. Logger
// may be nil and is normalized to a NoOpLogger.
type Deps struct {
	// Ledger is the shared product table all mutations route through.
	Ledger core.Ledger

	// Log receives the narration of every visible action outcome.
	Log core.ActivityLog

	// History receives one sample per mutation that changed a stock field.
	History core.StockHistory

	// Scheduler enqueues delayed follow-up actions.
	Scheduler core.Scheduler

	// Logger carries operational traces (dropped no-ops, scheduling).
	Logger logging.Logger

	// RestockDelay is the short delay before a triggered restock or reorder
	// fires (one time unit).
	RestockDelay time.Duration

	// SupplierDelay is the longer delay modeling supplier lead time before a
	// delivery fires (three time units).
	SupplierDelay time.Duration
}

// normalize substitutes safe defaults for optional collaborators.
func (d Deps) normalize() Deps {
	if d.Logger == nil {
		d.Logger = logging.NoOpLogger{}
	}
	return d
}
