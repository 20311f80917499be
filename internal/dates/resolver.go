package dates

import (
	"log/slog"
	"path/filepath"
	"time"

	"tidy/internal/logging"
	"tidy/internal/scan"
)

// Resolver produces a date for every file, consulting sources according to a
// policy. Resolution never fails: the filesystem source always yields a value.
type Resolver struct {
	logger        *slog.Logger
	maxImageBytes int64
}

// NewResolver builds a Resolver. maxImageBytes caps how large an image file
// may be before its embedded metadata is skipped; zero means no cap.
func NewResolver(logger *slog.Logger, maxImageBytes int64) *Resolver {
	return &Resolver{
		logger:        logging.NewComponentLogger(logger, "dates"),
		maxImageBytes: maxImageBytes,
	}
}

// Resolve determines the date for a file under the given policy. Sources are
// consulted in policy order and the first hit wins; the filesystem source is
// the unconditional fallback, so the result is always usable.
func (r *Resolver) Resolve(record scan.FileRecord, policy Source) Resolved {
	name := filepath.Base(record.Path)

	if policy == SourceAll || policy == SourceFilename {
		if t, ok := FromFilename(name); ok {
			r.logger.Debug("date from filename", logging.String("file", name), logging.String("date", t.Format("2006-01-02")))
			return Resolved{Time: t, Origin: OriginFilename}
		}
	}
	if policy == SourceAll || policy == SourceMetadata {
		if t, ok := metadataDate(record.Path, r.maxImageBytes); ok {
			r.logger.Debug("date from metadata", logging.String("file", name), logging.String("date", t.Format("2006-01-02")))
			return Resolved{Time: t, Origin: OriginMetadata}
		}
	}
	return Resolved{Time: FromFilesystem(record), Origin: OriginFilesystem}
}

// FromFilesystem picks the best available filesystem timestamp: the birth
// time where the platform records one, otherwise the earlier of modification
// and access time. Renames and copies bump both, so the minimum is the
// closest stand-in for when the file actually appeared.
func FromFilesystem(record scan.FileRecord) time.Time {
	if !record.BirthTime.IsZero() {
		return record.BirthTime
	}
	if record.AccessTime.IsZero() {
		return record.ModTime
	}
	if record.AccessTime.Before(record.ModTime) {
		return record.AccessTime
	}
	return record.ModTime
}
