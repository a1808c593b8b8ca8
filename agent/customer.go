package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/stockmesh/core"
)

// Customer is the purchase behavior: it takes quantity units off the store
// shelf when available and, when the remaining shelf stock falls under the
// product's threshold, schedules a store restock after the short delay.
type Customer struct {
	deps Deps
}

// NewCustomer constructs the customer behavior.
func NewCustomer(deps Deps) *Customer {
	return &Customer{deps: deps.normalize()}
}

// Purchase attempts to buy quantity units of a product from the store shelf.
// An uncovered request mutates nothing and logs a "Purchase Failed" entry
// with the requested vs. available quantities; an unknown product is a
// silent no-op.
func (c *Customer) Purchase(productID, quantity int) {
	var name string
	var available int

	updated, err := c.deps.Ledger.Mutate(productID, func(p *core.Product) error {
		name = p.Name
		available = p.StoreStock
		if p.StoreStock < quantity {
			return core.ErrInsufficientStock
		}
		p.StoreStock -= quantity
		return nil
	})

	switch {
	case errors.Is(err, core.ErrProductNotFound):
		c.deps.Logger.Debug("purchase dropped, unknown product", "product_id", productID)
		return
	case errors.Is(err, core.ErrInsufficientStock):
		c.deps.Log.Append(core.NewEntry(core.AgentCustomer, core.ActionPurchaseFailed,
			fmt.Sprintf("Not enough %s in store stock (requested: %d, available: %d).", name, quantity, available)))
		return
	case err != nil:
		c.deps.Logger.Error("purchase mutation rejected", "product_id", productID, "error", err)
		return
	}

	c.deps.History.Record(core.NewSample(updated))
	c.deps.Log.Append(core.NewEntry(core.AgentCustomer, core.ActionPurchase,
		fmt.Sprintf("Purchased %d %s(s). Store stock now: %d.", quantity, updated.Name, updated.StoreStock)))

	if updated.BelowThreshold() {
		c.deps.Logger.Debug("store stock under threshold, scheduling restock",
			"product_id", productID, "store_stock", updated.StoreStock, "threshold", updated.Threshold)
		c.deps.Scheduler.Schedule(c.deps.RestockDelay, core.Action{Kind: core.KindRestock, ProductID: productID})
	}
}
