package core

// Ledger is the single shared mutable resource of the simulation: the table
// of products. All stock and price changes must route through Mutate so no
// two causally chained actions can interleave their read and write halves on
// the same product.
//
// Implementations MUST:
//   - Serialize mutations per product (exclusive read-modify-write)
//   - Never block a mutation of one product on a mutation of another
//   - Commit a mutation only when fn returns nil AND the resulting stock
//     fields are non-negative; otherwise leave the record untouched
//   - Hand out product copies, never aliases of internal state
type Ledger interface {
	// Read returns a consistent snapshot of one product.
	Read(productID int) (Product, error)

	// Mutate runs fn against a scratch copy of the product under the
	// product's exclusive lock and commits the result on success. It returns
	// the post-mutation product, or the zero Product together with
	// ErrProductNotFound, ErrNegativeStock or the error fn returned.
	Mutate(productID int, fn func(p *Product) error) (Product, error)

	// Snapshot returns a copy of every product, ordered by id.
	Snapshot() []Product
}

// ActivityLog is the bounded append-only record of agent actions, newest
// first. Once length exceeds the store's capacity the oldest entries are
// evicted. Appends never require coordination beyond the store's own lock.
type ActivityLog interface {
	// Append inserts the entry at the front, assigning its sequence number.
	Append(e Entry)

	// Entries returns a newest-first copy of the retained entries.
	Entries() []Entry

	// Len returns the number of retained entries.
	Len() int
}

// StockHistory is the unbounded chronological series of stock samples, one
// per ledger mutation that changed either stock field.
type StockHistory interface {
	// Record appends a sample.
	Record(s Sample)

	// Samples returns a chronological copy of all samples.
	Samples() []Sample

	// ForProduct returns the chronological samples of one product.
	ForProduct(productID int) []Sample
}
