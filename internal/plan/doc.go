// Package plan builds move plans from scanned directories without touching
// the filesystem. A plan pairs every file with its destination under one of
// the organization strategies; execution is a separate concern.
package plan
