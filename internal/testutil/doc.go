// Package testutil contains helper fakes and builders used across tests to
// reduce boilerplate when constructing products and driving the scheduler and
// pricing agent deterministically. These helpers are intentionally minimal
// and are not intended for production usage.
package testutil
