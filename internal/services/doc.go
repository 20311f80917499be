// Package services defines the error taxonomy shared by the engine.
//
// Per-item failures are wrapped with sentinel markers so callers can decide
// between "skip and continue", "empty result", and "configuration problem"
// without string matching. Batch outcomes are always returned as values, never
// raised through panics.
package services
