package scan

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tidy/internal/logging"
	"tidy/internal/services"
)

// Walk enumerates the regular files under root, invoking fn once per file in
// a stable order. Directories are never yielded. When includeSubfolders is
// false the traversal does not descend at all: only immediate children of
// root are considered.
//
// The context is consulted between directory reads; on cancellation Walk
// returns ctx.Err() and the caller must discard any partial results it
// accumulated through fn. Unreadable subdirectories are logged and skipped
// without aborting the walk. A missing or unreadable root is the
// distinguished empty-result outcome (services.ErrNotFound).
func Walk(ctx context.Context, root string, includeSubfolders bool, logger *slog.Logger, fn func(FileRecord) error) error {
	logger = logging.NewComponentLogger(logger, "scan")

	info, err := os.Stat(root)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "scan", "read root", "root directory unavailable", err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrNotFound, "scan", "read root", "root is not a directory", nil)
	}

	if !includeSubfolders {
		return walkFlat(ctx, root, logger, fn)
	}
	return walkRecursive(ctx, root, logger, fn)
}

func walkFlat(ctx context.Context, root string, logger *slog.Logger, fn func(FileRecord) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "scan", "read root", "root directory unreadable", err)
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}
		record, err := Snapshot(filepath.Join(root, entry.Name()))
		if err != nil {
			logger.Warn("skipping unreadable file", logging.String("path", entry.Name()), logging.Error(err))
			continue
		}
		if err := fn(record); err != nil {
			return err
		}
	}
	return nil
}

func walkRecursive(ctx context.Context, root string, logger *slog.Logger, fn func(FileRecord) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn("skipping unreadable directory entry", logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		record, snapErr := Snapshot(path)
		if snapErr != nil {
			logger.Warn("skipping unreadable file", logging.String("path", path), logging.Error(snapErr))
			return nil
		}
		return fn(record)
	})
}

// Collect runs Walk and gathers the records into a slice.
func Collect(ctx context.Context, root string, includeSubfolders bool, logger *slog.Logger) ([]FileRecord, error) {
	var records []FileRecord
	err := Walk(ctx, root, includeSubfolders, logger, func(record FileRecord) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
