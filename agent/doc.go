// Package agent implements the six fixed agent behaviors of the inventory
// simulation: Customer (purchase), Store (restock), Warehouse (reorder),
// Supplier (delivery), Forecasting (predict) and Pricing (adjust).
//
// Every stock or price change routes through the ledger's per-product
// exclusive mutation contract. Each behavior narrates its outcome into the
// activity log and, per its policy, schedules at most one follow-up action on
// the delayed action scheduler, producing the causal chain
// Purchase → Restock → Reorder → Delivery.
//
// Business failures (insufficient stock) are absorbed into the activity log,
// not returned to callers; references to unknown products are silent no-ops.
package agent
