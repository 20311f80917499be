package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileRecord is an immutable snapshot of one file taken at scan time. It is
// value-like: nothing in it holds an open handle, and it is not reused across
// scans.
type FileRecord struct {
	Path       string
	Size       int64
	ModTime    time.Time
	AccessTime time.Time
	// BirthTime is the platform creation time. Zero on platforms that do not
	// record one (notably Linux).
	BirthTime time.Time
}

// Snapshot stats path and captures a FileRecord. The path is made absolute so
// records stay meaningful after the working directory changes.
func Snapshot(path string) (FileRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileRecord{}, fmt.Errorf("resolve absolute path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FileRecord{}, err
	}
	record := FileRecord{
		Path:    abs,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	// Access and birth times are best effort; a failed secondary stat leaves
	// them zero and the date resolver falls back to the modification time.
	if atime, birth, err := platformTimes(abs); err == nil {
		record.AccessTime = atime
		record.BirthTime = birth
	}
	return record, nil
}
