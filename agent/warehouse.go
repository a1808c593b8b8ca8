package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/stockmesh/core"
)

// Warehouse is the reorder behavior: it places a fixed-lot order with the
// supplier. It never mutates the ledger; the stock arrives later through the
// supplier's delivery after the long lead-time delay. Reorders are not
// cancellable: a reorder fires into a delivery even if intervening actions
// already resolved the shortage.
type Warehouse struct {
	deps Deps
}

// NewWarehouse constructs the warehouse behavior.
func NewWarehouse(deps Deps) *Warehouse {
	return &Warehouse{deps: deps.normalize()}
}

// Reorder logs the supplier order and unconditionally schedules a delivery
// after the supplier lead time. An unknown product is a silent no-op.
func (w *Warehouse) Reorder(productID int) {
	p, err := w.deps.Ledger.Read(productID)
	if errors.Is(err, core.ErrProductNotFound) {
		w.deps.Logger.Debug("reorder dropped, unknown product", "product_id", productID)
		return
	}

	w.deps.Log.Append(core.NewEntry(core.AgentWarehouse, core.ActionReorder,
		fmt.Sprintf("Ordering %d %s(s) from supplier.", p.SupplierQuantity, p.Name)))

	w.deps.Scheduler.Schedule(w.deps.SupplierDelay, core.Action{Kind: core.KindDeliver, ProductID: productID})
}
