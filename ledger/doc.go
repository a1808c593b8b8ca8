// Package ledger contains the in-memory implementation of the shared product
// ledger. The ledger is the single mutable resource of the simulation; every
// stock or price change flows through its per-product exclusive
// read-modify-write contract.
package ledger
