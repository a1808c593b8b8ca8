package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/stockmesh/core"
)

// Store is the restock behavior: it refills the shelf from the warehouse up
// to twice the product's threshold. A restock that cannot move anything
// escalates to a warehouse reorder; a restock that drains the warehouse below
// the threshold additionally triggers a reorder. Both checks are independent,
// so a single restock can satisfy the store and still schedule a reorder.
type Store struct {
	deps Deps
}

// NewStore constructs the store behavior.
func NewStore(deps Deps) *Store {
	return &Store{deps: deps.normalize()}
}

// Restock moves min(threshold*2 - storeStock, warehouseStock) units from the
// warehouse to the shelf. Stock is conserved, only relocated.
func (s *Store) Restock(productID int) {
	var name string
	var warehouse int
	var moved int

	updated, err := s.deps.Ledger.Mutate(productID, func(p *core.Product) error {
		name = p.Name
		warehouse = p.WarehouseStock

		need := p.Threshold*2 - p.StoreStock
		moved = min(need, p.WarehouseStock)
		if moved <= 0 {
			return core.ErrInsufficientStock
		}
		p.StoreStock += moved
		p.WarehouseStock -= moved
		return nil
	})

	switch {
	case errors.Is(err, core.ErrProductNotFound):
		s.deps.Logger.Debug("restock dropped, unknown product", "product_id", productID)
		return
	case errors.Is(err, core.ErrInsufficientStock):
		s.deps.Log.Append(core.NewEntry(core.AgentStore, core.ActionRestockFailed,
			fmt.Sprintf("Cannot restock %s. Warehouse stock too low: %d.", name, warehouse)))
		s.deps.Scheduler.Schedule(s.deps.RestockDelay, core.Action{Kind: core.KindReorder, ProductID: productID})
		return
	case err != nil:
		s.deps.Logger.Error("restock mutation rejected", "product_id", productID, "error", err)
		return
	}

	s.deps.History.Record(core.NewSample(updated))
	s.deps.Log.Append(core.NewEntry(core.AgentStore, core.ActionRestock,
		fmt.Sprintf("Restocked store with %d %s(s) from warehouse. New store stock: %d.", moved, updated.Name, updated.StoreStock)))

	if updated.WarehouseStock < updated.Threshold {
		s.deps.Logger.Debug("warehouse stock under threshold, scheduling reorder",
			"product_id", productID, "warehouse_stock", updated.WarehouseStock, "threshold", updated.Threshold)
		s.deps.Scheduler.Schedule(s.deps.RestockDelay, core.Action{Kind: core.KindReorder, ProductID: productID})
	}
}
