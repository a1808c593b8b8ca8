package agent

import (
	"time"

	"github.com/hupe1980/stockmesh/activity"
	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/history"
	"github.com/hupe1980/stockmesh/internal/testutil"
	"github.com/hupe1980/stockmesh/ledger"
)

// fixture bundles the concrete stores behind a Deps so tests can assert on
// them directly.
type fixture struct {
	deps    Deps
	ledger  *ledger.InMemoryLedger
	log     *activity.InMemoryLog
	history *history.InMemorySeries
	sched   *testutil.RecordingScheduler
}

func newFixture(products ...core.Product) *fixture {
	led := ledger.NewInMemoryLedger(products)
	log := activity.NewInMemoryLog(activity.DefaultCapacity)
	series := history.NewInMemorySeries()
	sched := testutil.NewRecordingScheduler()

	return &fixture{
		deps: Deps{
			Ledger:        led,
			Log:           log,
			History:       series,
			Scheduler:     sched,
			RestockDelay:  time.Second,
			SupplierDelay: 3 * time.Second,
		},
		ledger:  led,
		log:     log,
		history: series,
		sched:   sched,
	}
}

// product reads the current state of a product. Every test seeds the ids it
// reads, so the lookup error is ignored.
func (f *fixture) product(id int) core.Product {
	p, _ := f.ledger.Read(id)
	return p
}
