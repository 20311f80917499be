// Package dates resolves a representative date for each file from filename
// patterns, embedded image metadata, and filesystem timestamps.
package dates
