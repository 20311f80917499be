package dates

import (
	"fmt"
	"strings"
	"time"
)

// Source selects which date sources are consulted and in what order.
type Source string

const (
	// SourceAll tries filename, then image metadata, then filesystem times.
	SourceAll Source = "all"
	// SourceFilename tries filename patterns, falling back to filesystem times.
	SourceFilename Source = "filename"
	// SourceMetadata tries embedded image dates, falling back to filesystem times.
	SourceMetadata Source = "metadata"
	// SourceFileDate uses filesystem times directly.
	SourceFileDate Source = "filedate"
)

// ParseSource converts a configuration string into a Source.
func ParseSource(value string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(value))) {
	case SourceAll:
		return SourceAll, nil
	case SourceFilename:
		return SourceFilename, nil
	case SourceMetadata:
		return SourceMetadata, nil
	case SourceFileDate:
		return SourceFileDate, nil
	}
	return "", fmt.Errorf("date source: unsupported value %q", value)
}

// Granularity controls how a resolved date is bucketed into a folder name.
type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

// ParseGranularity converts a configuration string into a Granularity.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(value))) {
	case GranularityYear:
		return GranularityYear, nil
	case GranularityMonth:
		return GranularityMonth, nil
	case GranularityDay:
		return GranularityDay, nil
	}
	return "", fmt.Errorf("date granularity: unsupported value %q", value)
}

// Origin identifies which source produced a resolved date.
type Origin string

const (
	OriginFilename   Origin = "filename"
	OriginMetadata   Origin = "metadata"
	OriginFilesystem Origin = "filesystem"
)

// Resolved pairs a timestamp with the source that produced it.
type Resolved struct {
	Time   time.Time
	Origin Origin
}

// FolderName formats a timestamp as a destination folder name.
func FolderName(t time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityYear:
		return t.Format("2006")
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
