// Package history contains the in-memory implementation of the stock history
// series: the unbounded chronological record of stock levels captured on
// every mutating agent action, used for full-session trend rendering.
package history
