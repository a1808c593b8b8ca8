// Package activity contains the in-memory implementation of the bounded
// activity log: the newest-first narration of every agent action, capped at a
// fixed number of entries with evict-oldest semantics.
package activity
