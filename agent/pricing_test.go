package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/internal/testutil"
)

func TestPricer_LowStockRaisesPrice(t *testing.T) {
	// total = 4 < threshold 10. With rand = 0 the factor is exactly +5%:
	// 100.00 * 1.05 = 105.00.
	f := newFixture(testutil.NewProductBuilder(1).Name("Widget").Store(1).Warehouse(3).Threshold(10).Price(100.00).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0)).Adjust(1)

	p := f.product(1)
	assert.InDelta(t, 105.00, p.Price, 1e-9)

	entries := f.log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, core.AgentPricing, entries[0].Agent)
	assert.Equal(t, "Widget - Price changed from $100.00 to $105.00 based on inventory level.", entries[0].Message)
}

func TestPricer_LowStockUpperBound(t *testing.T) {
	// rand just below 1 pins the low-stock factor near +10%.
	f := newFixture(testutil.NewProductBuilder(1).Store(0).Warehouse(2).Threshold(10).Price(200.00).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0.9999)).Adjust(1)

	p := f.product(1)
	assert.Greater(t, p.Price, 200.00)
	assert.LessOrEqual(t, p.Price, 220.00)
}

func TestPricer_HighStockCutsPrice(t *testing.T) {
	// total = 80 > threshold*3 = 30. With rand = 0 the factor is exactly -5%:
	// 100.00 * 0.95 = 95.00.
	f := newFixture(testutil.NewProductBuilder(1).Store(30).Warehouse(50).Threshold(10).Price(100.00).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0)).Adjust(1)

	assert.InDelta(t, 95.00, f.product(1).Price, 1e-9)
}

func TestPricer_HighStockLowerBound(t *testing.T) {
	// rand just below 1 pins the high-stock cut near -15%.
	f := newFixture(testutil.NewProductBuilder(1).Store(30).Warehouse(50).Threshold(10).Price(100.00).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0.9999)).Adjust(1)

	p := f.product(1)
	assert.Less(t, p.Price, 95.00)
	assert.GreaterOrEqual(t, p.Price, 85.00)
}

func TestPricer_NormalStockDrifts(t *testing.T) {
	// total = 20, threshold 10: neither regime. rand = 0.5 yields a factor of
	// exactly 0, so the price is unchanged.
	f := newFixture(testutil.NewProductBuilder(1).Store(10).Warehouse(10).Threshold(10).Price(149.99).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0.5)).Adjust(1)

	assert.InDelta(t, 149.99, f.product(1).Price, 1e-9)

	// rand = 1 would be +3%, rand = 0 is -3%.
	NewPricer(f.deps, testutil.NewFixedRand(0)).Adjust(1)
	assert.InDelta(t, core.RoundPrice(149.99*0.97), f.product(1).Price, 1e-9)
}

func TestPricer_RegimePriority(t *testing.T) {
	// total == threshold picks the normal regime, not low stock; rand = 0.5
	// keeps the price flat so the boundary is observable.
	f := newFixture(testutil.NewProductBuilder(1).Store(5).Warehouse(5).Threshold(10).Price(50.00).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0.5)).Adjust(1)
	assert.InDelta(t, 50.00, f.product(1).Price, 1e-9)

	// total == threshold*3 is still normal, not high stock.
	f2 := newFixture(testutil.NewProductBuilder(2).Store(15).Warehouse(15).Threshold(10).Price(50.00).Build())
	NewPricer(f2.deps, testutil.NewFixedRand(0.5)).Adjust(2)
	assert.InDelta(t, 50.00, f2.product(2).Price, 1e-9)
}

func TestPricer_MutatesPriceOnly(t *testing.T) {
	f := newFixture(testutil.NewProductBuilder(1).Store(10).Warehouse(10).Threshold(10).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0.9)).Adjust(1)

	p := f.product(1)
	assert.Equal(t, 10, p.StoreStock)
	assert.Equal(t, 10, p.WarehouseStock)
	assert.Empty(t, f.history.Samples(), "price is not part of the stock series")
	assert.Empty(t, f.sched.Calls(), "pricing schedules no follow-up")
}

func TestPricer_RoundsToTwoDecimals(t *testing.T) {
	f := newFixture(testutil.NewProductBuilder(1).Store(1).Warehouse(0).Threshold(10).Price(79.99).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0)).Adjust(1)

	// 79.99 * 1.05 = 83.9895 -> 83.99
	assert.InDelta(t, 83.99, f.product(1).Price, 1e-9)
}

func TestPricer_UnknownProductIsSilentNoOp(t *testing.T) {
	f := newFixture(testutil.NewProductBuilder(1).Build())

	NewPricer(f.deps, testutil.NewFixedRand(0)).Adjust(404)

	assert.Zero(t, f.log.Len())
}
