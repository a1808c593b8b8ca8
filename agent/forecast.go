package agent

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/stockmesh/core"
)

// Forecaster is the read-only prediction behavior. It mutates nothing,
// records no history sample and schedules no follow-up; its only output is a
// prediction entry in the activity log.
type Forecaster struct {
	deps Deps
}

// NewForecaster constructs the forecasting behavior.
func NewForecaster(deps Deps) *Forecaster {
	return &Forecaster{deps: deps.normalize()}
}

// Predict estimates weekly demand as 70% of total stock and days of supply
// as total stock over a 3.5 units/day draw rate, both rounded to the nearest
// integer.
func (f *Forecaster) Predict(productID int) {
	p, err := f.deps.Ledger.Read(productID)
	if errors.Is(err, core.ErrProductNotFound) {
		f.deps.Logger.Debug("forecast dropped, unknown product", "product_id", productID)
		return
	}

	total := float64(p.TotalStock())
	forecast := int(math.Round(total * 0.7))
	daysOfSupply := int(math.Round(total / 3.5))

	f.deps.Log.Append(core.NewEntry(core.AgentForecasting, core.ActionPrediction,
		fmt.Sprintf("%s - Predicted weekly demand: %d units. Estimated days of supply: %d days.", p.Name, forecast, daysOfSupply)))
}
