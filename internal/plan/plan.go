package plan

import (
	"fmt"
	"strings"
	"time"
)

// Strategy names one of the supported organization layouts.
type Strategy string

const (
	// StrategyType buckets files by upper-cased extension.
	StrategyType Strategy = "type"
	// StrategyDate buckets files by resolved date.
	StrategyDate Strategy = "date"
	// StrategyCategory buckets files by configured category.
	StrategyCategory Strategy = "category"
	// StrategyLocation buckets files by GPS-derived place name.
	StrategyLocation Strategy = "location"
)

// ParseStrategy converts a command-line or configuration string into a
// Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case StrategyType:
		return StrategyType, nil
	case StrategyDate:
		return StrategyDate, nil
	case StrategyCategory:
		return StrategyCategory, nil
	case StrategyLocation:
		return StrategyLocation, nil
	}
	return "", fmt.Errorf("strategy: unsupported value %q (want type, date, category, or location)", value)
}

// Entry is one planned move from an absolute source path to an absolute
// destination path.
type Entry struct {
	Source      string
	Destination string
}

// Plan is an immutable description of the moves an organization run would
// perform. Building a plan never modifies the filesystem.
type Plan struct {
	ID        string
	Root      string
	Strategy  Strategy
	CreatedAt time.Time
	Entries   []Entry
}
