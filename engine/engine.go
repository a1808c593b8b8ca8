package engine

import (
	"time"

	"github.com/hupe1980/stockmesh/activity"
	"github.com/hupe1980/stockmesh/agent"
	"github.com/hupe1980/stockmesh/config"
	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/history"
	"github.com/hupe1980/stockmesh/ledger"
	"github.com/hupe1980/stockmesh/logging"
	"github.com/hupe1980/stockmesh/schedule"
)

// Config defines tuning parameters for the simulation's timing and capacity
// behavior. Delays are expressed in time units so tests and demo drivers can
// compress the clock without touching policy.
type Config struct {
	// TimeUnit is the duration of one simulation time unit.
	TimeUnit time.Duration

	// RestockDelayUnits is the delay, in time units, before a triggered
	// restock or reorder fires.
	RestockDelayUnits int

	// SupplierDelayUnits is the supplier lead time, in time units, before a
	// delivery fires.
	SupplierDelayUnits int

	// LogCapacity caps the activity log; the oldest entries are evicted once
	// it is exceeded.
	LogCapacity int
}

// DefaultConfig mirrors the timings of the original simulation: one second
// per unit, restock after one unit, delivery after three, and a 100 entry
// activity log.
var DefaultConfig = Config{
	TimeUnit:           time.Second,
	RestockDelayUnits:  1,
	SupplierDelayUnits: 3,
	LogCapacity:        activity.DefaultCapacity,
}

// Options configures an Engine instance using the functional options pattern.
// All stores default to in-memory implementations seeded with the default
// catalog, so New() with no options yields a fully working simulation.
type Options struct {
	// Config contains timing and capacity parameters. Defaults to
	// DefaultConfig if not specified.
	Config Config

	// Catalog seeds the default in-memory ledger. Ignored when a Ledger is
	// supplied. Defaults to config.DefaultCatalog().
	Catalog []core.Product

	// Ledger is the shared product table. Defaults to an in-memory ledger
	// seeded with Catalog.
	Ledger core.Ledger

	// Log is the activity log. Defaults to an in-memory log with
	// Config.LogCapacity entries.
	Log core.ActivityLog

	// History is the stock history series. Defaults to an in-memory series.
	History core.StockHistory

	// Clock drives the delayed action scheduler. Defaults to the wall clock;
	// tests inject a manual clock.
	Clock core.Clock

	// Rand feeds the pricing agent's randomized regimes. Defaults to
	// math/rand; tests inject a fixed sequence.
	Rand core.Rand

	// Logger provides structured operational logging. Defaults to NoOp
	// logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// Engine coordinates the six agent behaviors around the shared stores and
// the delayed action scheduler.
//
// Control flow: an external trigger invokes one of the Trigger* entry points;
// the targeted agent performs its read-modify-write on the ledger, narrates
// the outcome into the activity log and, per policy, schedules at most one
// follow-up action. The scheduler's dispatcher goroutine later re-enters the
// engine with that action, extending the causal chain
// Purchase → Restock → Reorder → Delivery.
//
// Triggers return nothing: business failures are absorbed into the activity
// log and unknown products are dropped silently, so the simulation keeps
// running and narrating its own degraded states instead of halting.
//
// The Engine is safe for concurrent use. Mutations are serialized per
// product by the ledger; actions on different products never block each
// other.
type Engine struct {
	config    Config
	ledger    core.Ledger
	log       core.ActivityLog
	history   core.StockHistory
	scheduler *schedule.TimerScheduler
	logger    logging.Logger

	customer   *agent.Customer
	store      *agent.Store
	warehouse  *agent.Warehouse
	supplier   *agent.Supplier
	forecaster *agent.Forecaster
	pricer     *agent.Pricer
}

// New creates an Engine with sensible defaults and optional configuration.
//
// Example:
//
//	e := engine.New(func(o *engine.Options) {
//	    o.Config.TimeUnit = 10 * time.Millisecond
//	    o.Logger = myLogger
//	})
//	e.Start()
//	defer e.Stop()
//	e.TriggerPurchase(1)
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:  DefaultConfig,
		Catalog: config.DefaultCatalog(),
		Clock:   schedule.RealClock{},
		Rand:    mathRand{},
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Ledger == nil {
		opts.Ledger = ledger.NewInMemoryLedger(opts.Catalog)
	}
	if opts.Log == nil {
		opts.Log = activity.NewInMemoryLog(opts.Config.LogCapacity)
	}
	if opts.History == nil {
		opts.History = history.NewInMemorySeries()
	}

	e := &Engine{
		config:  opts.Config,
		ledger:  opts.Ledger,
		log:     opts.Log,
		history: opts.History,
		logger:  opts.Logger,
	}

	e.scheduler = schedule.New(e.dispatch, func(o *schedule.Options) {
		o.Clock = opts.Clock
	})

	deps := agent.Deps{
		Ledger:        e.ledger,
		Log:           e.log,
		History:       e.history,
		Scheduler:     e.scheduler,
		Logger:        e.logger,
		RestockDelay:  opts.Config.TimeUnit * time.Duration(opts.Config.RestockDelayUnits),
		SupplierDelay: opts.Config.TimeUnit * time.Duration(opts.Config.SupplierDelayUnits),
	}

	e.customer = agent.NewCustomer(deps)
	e.store = agent.NewStore(deps)
	e.warehouse = agent.NewWarehouse(deps)
	e.supplier = agent.NewSupplier(deps)
	e.forecaster = agent.NewForecaster(deps)
	e.pricer = agent.NewPricer(deps, opts.Rand)

	return e
}

// Start launches the scheduler's dispatcher goroutine. Triggers invoked
// before Start still work; their follow-up actions are retained and fire once
// the dispatcher runs.
func (e *Engine) Start() {
	e.logger.Debug("engine starting", "time_unit", e.config.TimeUnit)
	e.scheduler.Start()
}

// Stop terminates the scheduler, dropping pending follow-up actions.
func (e *Engine) Stop() {
	e.scheduler.Stop()
	e.logger.Debug("engine stopped")
}

// dispatch routes a fired scheduled action back into the owning agent. It
// runs on the scheduler's dispatcher goroutine with whatever ledger state
// exists at fire time.
func (e *Engine) dispatch(a core.Action) {
	e.logger.Debug("dispatching scheduled action", "kind", a.Kind, "product_id", a.ProductID)

	switch a.Kind {
	case core.KindRestock:
		e.store.Restock(a.ProductID)
	case core.KindReorder:
		e.warehouse.Reorder(a.ProductID)
	case core.KindDeliver:
		e.supplier.Deliver(a.ProductID)
	default:
		e.logger.Warn("unknown scheduled action kind", "kind", a.Kind)
	}
}

// TriggerPurchase lets the customer agent buy one unit of a product.
func (e *Engine) TriggerPurchase(productID int) {
	e.Purchase(productID, 1)
}

// Purchase lets the customer agent buy quantity units of a product.
func (e *Engine) Purchase(productID, quantity int) {
	e.logger.Debug("trigger purchase", "product_id", productID, "quantity", quantity)
	e.customer.Purchase(productID, quantity)
}

// TriggerStoreRestock lets the store agent refill the shelf from the
// warehouse.
func (e *Engine) TriggerStoreRestock(productID int) {
	e.logger.Debug("trigger restock", "product_id", productID)
	e.store.Restock(productID)
}

// TriggerWarehouseReorder lets the warehouse agent place a supplier order.
func (e *Engine) TriggerWarehouseReorder(productID int) {
	e.logger.Debug("trigger reorder", "product_id", productID)
	e.warehouse.Reorder(productID)
}

// TriggerForecast lets the forecasting agent log a demand prediction.
func (e *Engine) TriggerForecast(productID int) {
	e.logger.Debug("trigger forecast", "product_id", productID)
	e.forecaster.Predict(productID)
}

// TriggerPriceAdjustment lets the pricing agent apply one pricing regime.
func (e *Engine) TriggerPriceAdjustment(productID int) {
	e.logger.Debug("trigger price adjustment", "product_id", productID)
	e.pricer.Adjust(productID)
}

// Products returns a snapshot of the current product list, ordered by id.
func (e *Engine) Products() []core.Product {
	return e.ledger.Snapshot()
}

// Logs returns the newest-first activity log snapshot.
func (e *Engine) Logs() []core.Entry {
	return e.log.Entries()
}

// History returns the chronological stock history snapshot.
func (e *Engine) History() []core.Sample {
	return e.history.Samples()
}

// HistoryFor returns the chronological stock history of one product.
func (e *Engine) HistoryFor(productID int) []core.Sample {
	return e.history.ForProduct(productID)
}

// PendingActions returns the number of scheduled follow-up actions that have
// not fired yet.
func (e *Engine) PendingActions() int {
	return e.scheduler.Pending()
}
