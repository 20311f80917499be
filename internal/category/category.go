// Package category maps file extensions to named category buckets.
package category

import (
	"path/filepath"
	"strings"

	"tidy/internal/config"
)

// DefaultName is the bucket for extensions no category claims.
const DefaultName = "Other"

// Table resolves extensions to category names. Categories are checked in
// their configured order, so when two categories claim the same extension the
// earlier one wins.
type Table struct {
	order  []string
	byExt  map[string]string
	counts map[string]int
}

// NewTable builds a lookup table from ordered category definitions.
// Extensions are matched case-insensitively with their leading dot.
func NewTable(categories []config.Category) *Table {
	t := &Table{
		byExt:  make(map[string]string),
		counts: make(map[string]int),
	}
	for _, cat := range categories {
		t.order = append(t.order, cat.Name)
		for _, ext := range cat.Extensions {
			key := strings.ToLower(ext)
			if _, claimed := t.byExt[key]; claimed {
				continue
			}
			t.byExt[key] = cat.Name
		}
	}
	return t
}

// Classify returns the category name for a file path. Files without an
// extension or with an unclaimed extension land in the default bucket.
func (t *Table) Classify(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if name, ok := t.byExt[ext]; ok {
			t.counts[name]++
			return name
		}
	}
	t.counts[DefaultName]++
	return DefaultName
}

// Counts reports how many files each category has claimed since the table
// was built, for summary logging. Only categories with at least one file
// appear.
func (t *Table) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	for name, n := range t.counts {
		out[name] = n
	}
	return out
}
