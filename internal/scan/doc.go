// Package scan enumerates directory trees into FileRecord snapshots.
//
// Enumeration is cancellable between directory reads and tolerant of
// unreadable subdirectories, which are logged and skipped. Single-level scans
// never descend, so they stay cheap on deep trees.
package scan
