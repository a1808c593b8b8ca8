package config

import "github.com/hupe1980/stockmesh/core"

// DefaultCatalog returns the fixed seed product set every session starts
// from. Products are mutated in place by agent actions and never deleted
// during a session.
func DefaultCatalog() []core.Product {
	return []core.Product{
		{ID: 1, Name: "Smartphone X", StoreStock: 15, WarehouseStock: 50, Price: 899.99, Threshold: 10, SupplierQuantity: 30},
		{ID: 2, Name: "Wireless Headphones", StoreStock: 8, WarehouseStock: 25, Price: 149.99, Threshold: 5, SupplierQuantity: 20},
		{ID: 3, Name: "Smart Watch", StoreStock: 12, WarehouseStock: 30, Price: 299.99, Threshold: 8, SupplierQuantity: 15},
		{ID: 4, Name: "Laptop Pro", StoreStock: 6, WarehouseStock: 18, Price: 1299.99, Threshold: 4, SupplierQuantity: 10},
		{ID: 5, Name: "Bluetooth Speaker", StoreStock: 20, WarehouseStock: 40, Price: 79.99, Threshold: 15, SupplierQuantity: 25},
	}
}
