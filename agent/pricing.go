package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/stockmesh/core"
)

// Pricer is the price adjustment behavior. It mutates price only, using one
// of three mutually exclusive regimes picked from total (store + warehouse)
// stock against the threshold:
//
//   - total < threshold: raise the price by a uniform 5-10%
//   - total > threshold*3: cut the price by a uniform 5-15%
//   - otherwise: drift by a uniform ±3%
//
// There is no price floor; compounding low-stock regimes grow the price
// unbounded and the policy does not clamp on the way down either.
type Pricer struct {
	deps Deps
	rand core.Rand
}

// NewPricer constructs the pricing behavior with the given random source.
func NewPricer(deps Deps, rand core.Rand) *Pricer {
	return &Pricer{deps: deps.normalize(), rand: rand}
}

// Adjust applies one pricing regime and logs the old and new price, both at
// two-decimal precision. No history sample is recorded; price is not part of
// the stock series.
func (p *Pricer) Adjust(productID int) {
	var oldPrice float64

	updated, err := p.deps.Ledger.Mutate(productID, func(prod *core.Product) error {
		oldPrice = prod.Price

		var factor float64
		total := prod.TotalStock()
		switch {
		case total < prod.Threshold:
			factor = 0.05 + p.rand.Float64()*0.05
		case total > prod.Threshold*3:
			factor = -(0.05 + p.rand.Float64()*0.10)
		default:
			factor = p.rand.Float64()*0.06 - 0.03
		}

		prod.Price = core.RoundPrice(prod.Price + prod.Price*factor)
		return nil
	})
	if errors.Is(err, core.ErrProductNotFound) {
		p.deps.Logger.Debug("price adjustment dropped, unknown product", "product_id", productID)
		return
	}
	if err != nil {
		p.deps.Logger.Error("price mutation rejected", "product_id", productID, "error", err)
		return
	}

	p.deps.Log.Append(core.NewEntry(core.AgentPricing, core.ActionPriceAdjustment,
		fmt.Sprintf("%s - Price changed from $%.2f to $%.2f based on inventory level.", updated.Name, oldPrice, updated.Price)))
}
