// Package stockmesh provides a high-level façade over the core Engine and its
// store abstractions (product ledger, activity log, stock history & logging)
// for running multi-agent inventory simulations. Most applications interact
// with this package by:
//  1. Creating a StockMesh via New() (optionally overriding the default in-memory stores)
//  2. Starting it, which launches the delayed action dispatcher
//  3. Firing triggers (purchase, restock, reorder, forecast, price adjustment)
//     and reading back product, log and history snapshots
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; long-lived deployments typically supply a tuned configuration and a
// structured logger.
package stockmesh

import (
	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/engine"
	"github.com/hupe1980/stockmesh/logging"
)

// Options configures the StockMesh instance.
type Options struct {
	// Engine configuration (time unit, follow-up delays, log capacity)
	EngineConfig engine.Config

	// Catalog seeds the default in-memory ledger. Ignored when Ledger is set.
	Catalog []core.Product

	// Stores (default to in-memory implementations if not provided)
	Ledger  core.Ledger
	Log     core.ActivityLog
	History core.StockHistory

	// Clock drives the scheduler (defaults to the wall clock)
	Clock core.Clock

	// Rand feeds the pricing agent (defaults to math/rand)
	Rand core.Rand

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// StockMesh is the high-level façade aggregating the underlying engine and stores.
type StockMesh struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new StockMesh instance with optional overrides. Any unset
// store is initialized with an in-memory implementation seeded from Catalog.
func New(optFns ...func(o *Options)) *StockMesh {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := engine.New(func(o *engine.Options) {
		o.Config = opts.EngineConfig
		if opts.Catalog != nil {
			o.Catalog = opts.Catalog
		}
		if opts.Ledger != nil {
			o.Ledger = opts.Ledger
		}
		if opts.Log != nil {
			o.Log = opts.Log
		}
		if opts.History != nil {
			o.History = opts.History
		}
		if opts.Clock != nil {
			o.Clock = opts.Clock
		}
		if opts.Rand != nil {
			o.Rand = opts.Rand
		}
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
	})

	return &StockMesh{opts: opts, engine: e}
}

// Start launches the delayed action dispatcher. Triggers fired before Start
// still take effect immediately; only their scheduled follow-ups wait.
func (m *StockMesh) Start() { m.engine.Start() }

// Stop shuts the dispatcher down, dropping any pending follow-up actions.
func (m *StockMesh) Stop() { m.engine.Stop() }

// TriggerPurchase has the customer agent buy one unit of a product.
func (m *StockMesh) TriggerPurchase(productID int) { m.engine.TriggerPurchase(productID) }

// Purchase has the customer agent buy quantity units of a product.
func (m *StockMesh) Purchase(productID, quantity int) { m.engine.Purchase(productID, quantity) }

// TriggerStoreRestock has the store agent refill the shelf from the warehouse.
func (m *StockMesh) TriggerStoreRestock(productID int) { m.engine.TriggerStoreRestock(productID) }

// TriggerWarehouseReorder has the warehouse agent place a supplier order.
func (m *StockMesh) TriggerWarehouseReorder(productID int) {
	m.engine.TriggerWarehouseReorder(productID)
}

// TriggerForecast has the forecasting agent log a demand prediction.
func (m *StockMesh) TriggerForecast(productID int) { m.engine.TriggerForecast(productID) }

// TriggerPriceAdjustment has the pricing agent apply one pricing regime.
func (m *StockMesh) TriggerPriceAdjustment(productID int) {
	m.engine.TriggerPriceAdjustment(productID)
}

// Products returns a snapshot of the current product list, ordered by id.
func (m *StockMesh) Products() []core.Product { return m.engine.Products() }

// Logs returns the newest-first activity log snapshot.
func (m *StockMesh) Logs() []core.Entry { return m.engine.Logs() }

// History returns the chronological stock history snapshot.
func (m *StockMesh) History() []core.Sample { return m.engine.History() }

// HistoryFor returns the chronological stock history of one product.
func (m *StockMesh) HistoryFor(productID int) []core.Sample {
	return m.engine.HistoryFor(productID)
}

// PendingActions returns the number of scheduled follow-ups not yet fired.
func (m *StockMesh) PendingActions() int { return m.engine.PendingActions() }
