package testutil

import "github.com/hupe1980/stockmesh/core"

// ProductBuilder provides a fluent helper for constructing products in tests.
// Example:
//
//	p := NewProductBuilder(1).Name("Widget").Store(15).Warehouse(50).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ProductBuilder struct {
	product core.Product
}

// NewProductBuilder creates a builder with defaults matching the canonical
// scenario product: store 15, warehouse 50, price 899.99, threshold 10,
// supplier lot 30.
func NewProductBuilder(id int) *ProductBuilder {
	return &ProductBuilder{product: core.Product{
		ID:               id,
		Name:             "Test Product",
		StoreStock:       15,
		WarehouseStock:   50,
		Price:            899.99,
		Threshold:        10,
		SupplierQuantity: 30,
	}}
}

// Name sets the display name (chainable).
func (b *ProductBuilder) Name(name string) *ProductBuilder { b.product.Name = name; return b }

// Store sets the store stock (chainable).
func (b *ProductBuilder) Store(n int) *ProductBuilder { b.product.StoreStock = n; return b }

// Warehouse sets the warehouse stock (chainable).
func (b *ProductBuilder) Warehouse(n int) *ProductBuilder { b.product.WarehouseStock = n; return b }

// Price sets the price (chainable).
func (b *ProductBuilder) Price(p float64) *ProductBuilder { b.product.Price = p; return b }

// Threshold sets the reorder trigger point (chainable).
func (b *ProductBuilder) Threshold(n int) *ProductBuilder { b.product.Threshold = n; return b }

// Lot sets the supplier lot size (chainable).
func (b *ProductBuilder) Lot(n int) *ProductBuilder { b.product.SupplierQuantity = n; return b }

// Build returns the constructed product.
func (b *ProductBuilder) Build() core.Product { return b.product }
