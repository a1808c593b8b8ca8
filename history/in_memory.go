package history

import (
	"sync"

	"github.com/hupe1980/stockmesh/core"
)

// InMemorySeries is a volatile StockHistory implementation: an append-only,
// unbounded slice of samples in insertion order. Safe for concurrent use.
type InMemorySeries struct {
	mu      sync.RWMutex
	samples []core.Sample
}

// NewInMemorySeries constructs an empty series.
func NewInMemorySeries() *InMemorySeries {
	return &InMemorySeries{}
}

// Record appends a sample.
func (s *InMemorySeries) Record(sample core.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)
}

// Samples returns a chronological copy of all samples.
func (s *InMemorySeries) Samples() []core.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// ForProduct returns the chronological samples of one product.
func (s *InMemorySeries) ForProduct(productID int) []core.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Sample
	for _, sample := range s.samples {
		if sample.ProductID == productID {
			out = append(out, sample)
		}
	}
	return out
}
