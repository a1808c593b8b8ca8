package core

import (
	"time"

	"github.com/google/uuid"
)

// Agent identifiers used as the Author of activity log entries. The set is
// fixed: every entry in the log is attributed to exactly one of these six.
const (
	AgentCustomer    = "Customer Agent"
	AgentStore       = "Store Agent"
	AgentWarehouse   = "Warehouse Agent"
	AgentSupplier    = "Supplier Agent"
	AgentForecasting = "Forecasting Agent"
	AgentPricing     = "Pricing Agent"
)

// Action kinds recorded on activity log entries. These are short display
// labels, not routing keys (see ActionKind for the scheduler's variant tags).
const (
	ActionPurchase        = "Purchase"
	ActionPurchaseFailed  = "Purchase Failed"
	ActionRestock         = "Restock"
	ActionRestockFailed   = "Restock Failed"
	ActionReorder         = "Reorder"
	ActionDelivery        = "Delivery"
	ActionPrediction      = "Prediction"
	ActionPriceAdjustment = "Price Adjustment"
)

// Entry is one immutable record in the activity log: which agent did what and
// the human-readable narration of the outcome. Seq is assigned by the log
// store on insertion and is strictly monotonic, so ordering stays stable even
// when timestamps tie.
type Entry struct {
	ID        string    `json:"id"`
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
}

// NewEntry creates an entry authored by the given agent with a fresh ID and a
// UTC timestamp. Seq is zero until the log store assigns it.
func NewEntry(agent, action, message string) Entry {
	return Entry{
		ID:        NewID(),
		Timestamp: time.Now().UTC(),
		Agent:     agent,
		Action:    action,
		Message:   message,
	}
}

// NewID generates a new unique identifier for log entries and history samples.
func NewID() string { return uuid.NewString() }
