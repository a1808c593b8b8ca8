package core

import "time"

// Sample is one point in the stock history time series: the store and
// warehouse stock of a product at the moment a mutation changed either field.
// The series is append-only and unbounded; it backs full-session trend
// rendering by external display collaborators.
type Sample struct {
	ProductID      int       `json:"product_id"`
	Timestamp      time.Time `json:"timestamp"`
	StoreStock     int       `json:"store_stock"`
	WarehouseStock int       `json:"warehouse_stock"`
}

// NewSample captures the stock levels of a freshly mutated product.
func NewSample(p Product) Sample {
	return Sample{
		ProductID:      p.ID,
		Timestamp:      time.Now().UTC(),
		StoreStock:     p.StoreStock,
		WarehouseStock: p.WarehouseStock,
	}
}
