package organize

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"tidy/internal/logging"
)

// RemoveEmptyDirs deletes directories under root that contain no entries,
// working bottom-up so a directory emptied by removing its children is
// itself removed. The root is never deleted. Directories that cannot be read
// are treated as non-empty.
func RemoveEmptyDirs(root string, logger *slog.Logger) error {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest first, so children are considered before their parents.
	sort.Slice(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})

	for _, dir := range dirs {
		entries, readErr := os.ReadDir(dir)
		if readErr != nil || len(entries) > 0 {
			continue
		}
		if removeErr := os.Remove(dir); removeErr != nil {
			logger.Warn("could not remove empty directory",
				logging.String("path", dir), logging.Error(removeErr))
			continue
		}
		logger.Debug("removed empty directory", logging.String("path", dir))
	}
	return nil
}
