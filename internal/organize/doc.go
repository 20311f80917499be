// Package organize applies move plans to the filesystem: sequential moves
// with collision-safe naming, cross-filesystem fallback, advisory locking,
// and optional pruning of emptied directories.
package organize
