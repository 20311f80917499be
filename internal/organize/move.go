package organize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"tidy/internal/fileutil"
	"tidy/internal/logging"
	"tidy/internal/plan"
)

// moveEntry performs one planned move. It reports moved=false without error
// when the file is already inside its destination directory, which makes
// re-running a plan over an organized tree a no-op.
func (e *Executor) moveEntry(entry plan.Entry) (moved bool, err error) {
	if filepath.Dir(filepath.Clean(entry.Source)) == filepath.Dir(filepath.Clean(entry.Destination)) {
		return false, nil
	}
	if _, err := os.Stat(entry.Source); err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}

	destDir := filepath.Dir(entry.Destination)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return false, fmt.Errorf("create destination directory: %w", err)
	}

	destination, err := uniqueDestination(entry.Destination)
	if err != nil {
		return false, err
	}
	if destination != entry.Destination {
		e.logger.Info("destination occupied, using unique name",
			logging.String("wanted", entry.Destination),
			logging.String("using", destination))
	}

	if err := moveFile(entry.Source, destination); err != nil {
		return false, err
	}
	e.logger.Info("moved file",
		logging.String("source", entry.Source),
		logging.String("destination", destination))
	return true, nil
}

// uniqueDestination returns the first non-colliding variant of path,
// suffixing the stem with " (n)" starting at 1.
func uniqueDestination(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return path, nil
	} else if err != nil {
		return "", fmt.Errorf("stat destination: %w", err)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("stat destination: %w", err)
		}
	}
}

// moveFile renames src to dst, falling back to copy-and-remove when the two
// paths live on different filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("rename: %w", err)
	}
	if copyErr := fileutil.CopyFileVerified(src, dst); copyErr != nil {
		return fmt.Errorf("cross-device copy: %w", copyErr)
	}
	if removeErr := os.Remove(src); removeErr != nil {
		return fmt.Errorf("remove source after copy: %w", removeErr)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}
