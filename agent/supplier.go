package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/stockmesh/core"
)

// Supplier is the delivery behavior: the terminal step of the reorder chain.
// It adds the product's fixed lot size to the warehouse, whatever the state
// at fire time is.
type Supplier struct {
	deps Deps
}

// NewSupplier constructs the supplier behavior.
func NewSupplier(deps Deps) *Supplier {
	return &Supplier{deps: deps.normalize()}
}

// Deliver adds supplierQuantity units to the warehouse stock and logs the
// delivery. No further follow-up is scheduled.
func (s *Supplier) Deliver(productID int) {
	updated, err := s.deps.Ledger.Mutate(productID, func(p *core.Product) error {
		p.WarehouseStock += p.SupplierQuantity
		return nil
	})
	if errors.Is(err, core.ErrProductNotFound) {
		s.deps.Logger.Debug("delivery dropped, unknown product", "product_id", productID)
		return
	}
	if err != nil {
		s.deps.Logger.Error("delivery mutation rejected", "product_id", productID, "error", err)
		return
	}

	s.deps.History.Record(core.NewSample(updated))
	s.deps.Log.Append(core.NewEntry(core.AgentSupplier, core.ActionDelivery,
		fmt.Sprintf("Delivered %d %s(s) to warehouse. New warehouse stock: %d.", updated.SupplierQuantity, updated.Name, updated.WarehouseStock)))
}
