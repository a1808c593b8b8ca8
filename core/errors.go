package core

import "errors"

var (
	// ErrProductNotFound is returned by ledger operations referencing an
	// unknown product id. Agents treat it as a silent no-op: no mutation, no
	// activity log entry.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock signals a recoverable business outcome (a purchase
	// or restock that cannot be covered), not a failure of the system. It is
	// absorbed into the activity log, never propagated to trigger callers.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNegativeStock rejects a mutation whose result would drive a stock
	// field below zero. The ledger refuses the commit; it never clamps.
	ErrNegativeStock = errors.New("stock must not go negative")
)
