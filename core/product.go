package core

import "math"

// Product is a single inventory record in the shared ledger. Stock is split
// between the store shelf (StoreStock) and the backing warehouse
// (WarehouseStock); both must stay non-negative at all times. Threshold is the
// reorder/alert trigger point and SupplierQuantity the fixed lot size the
// supplier delivers per reorder.
//
// Products are plain values: the ledger hands out copies, so holding a Product
// never aliases the ledger's internal state.
type Product struct {
	ID               int     `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	StoreStock       int     `json:"store_stock" yaml:"store_stock"`
	WarehouseStock   int     `json:"warehouse_stock" yaml:"warehouse_stock"`
	Price            float64 `json:"price" yaml:"price"`
	Threshold        int     `json:"threshold" yaml:"threshold"`
	SupplierQuantity int     `json:"supplier_quantity" yaml:"supplier_quantity"`
}

// TotalStock returns the combined store and warehouse stock.
func (p Product) TotalStock() int { return p.StoreStock + p.WarehouseStock }

// BelowThreshold reports whether the store shelf has fallen under the
// restock trigger point.
func (p Product) BelowThreshold() bool { return p.StoreStock < p.Threshold }

// RoundPrice rounds a price to two decimal places, the precision every price
// mutation must commit with.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
