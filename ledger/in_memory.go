package ledger

import (
	"sort"
	"sync"

	"github.com/hupe1980/stockmesh/core"
)

// InMemoryLedger is a volatile Ledger implementation holding products in a
// process local map. It is safe for concurrent access: the registry map is
// guarded by an RWMutex while each product carries its own mutex, so two
// actions on different products never block each other and two actions on the
// same product cannot interleave their read and write halves. Every returned
// product is a copy to prevent external mutation of internal state.
type InMemoryLedger struct {
	mu      sync.RWMutex
	records map[int]*record
}

// record pairs a product with the lock serializing its mutations. The
// per-record mutex is held for the whole read-modify-write sequence of a
// single Mutate call and for nothing else.
type record struct {
	mu      sync.Mutex
	product core.Product
}

// NewInMemoryLedger constructs a ledger seeded with the given catalog.
// Products are stored by id; a duplicate id overwrites the earlier seed.
func NewInMemoryLedger(catalog []core.Product) *InMemoryLedger {
	l := &InMemoryLedger{records: make(map[int]*record, len(catalog))}
	for _, p := range catalog {
		l.records[p.ID] = &record{product: p}
	}
	return l
}

// Read returns a consistent snapshot of one product.
func (l *InMemoryLedger) Read(productID int) (core.Product, error) {
	rec, err := l.lookup(productID)
	if err != nil {
		return core.Product{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.product, nil
}

// Mutate runs fn against a scratch copy of the product under the product's
// exclusive lock. The result is committed only when fn returns nil and both
// stock fields are still non-negative; a violating result is rejected with
// ErrNegativeStock and the record is left untouched. The committed (or, on
// error, zero) product is returned.
func (l *InMemoryLedger) Mutate(productID int, fn func(p *core.Product) error) (core.Product, error) {
	rec, err := l.lookup(productID)
	if err != nil {
		return core.Product{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	scratch := rec.product
	if err := fn(&scratch); err != nil {
		return core.Product{}, err
	}
	if scratch.StoreStock < 0 || scratch.WarehouseStock < 0 {
		return core.Product{}, core.ErrNegativeStock
	}

	rec.product = scratch
	return scratch, nil
}

// Snapshot returns a copy of every product, ordered by id.
func (l *InMemoryLedger) Snapshot() []core.Product {
	l.mu.RLock()
	recs := make([]*record, 0, len(l.records))
	for _, rec := range l.records {
		recs = append(recs, rec)
	}
	l.mu.RUnlock()

	products := make([]core.Product, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		products = append(products, rec.product)
		rec.mu.Unlock()
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// lookup resolves the record for an id under the registry read lock.
func (l *InMemoryLedger) lookup(productID int) (*record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[productID]
	if !ok {
		return nil, core.ErrProductNotFound
	}
	return rec, nil
}
