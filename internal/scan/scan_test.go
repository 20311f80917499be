package scan

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tidy/internal/logging"
	"tidy/internal/services"
	"tidy/internal/testsupport"
)

func TestCollectFlatDoesNotDescend(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.txt"), 10)
	testsupport.WriteFile(t, filepath.Join(root, "sub", "b.txt"), 10)

	records, err := Collect(context.Background(), root, false, logging.NewNop())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if filepath.Base(records[0].Path) != "a.txt" {
		t.Fatalf("unexpected record: %s", records[0].Path)
	}
}

func TestCollectRecursive(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.txt"), 10)
	testsupport.WriteFile(t, filepath.Join(root, "sub", "deeper", "b.txt"), 10)

	records, err := Collect(context.Background(), root, true, logging.NewNop())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestCollectMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	_, err := Collect(context.Background(), root, false, logging.NewNop())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCollectCancelled(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.txt"), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, root, false, logging.NewNop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSnapshotPopulatesTimes(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	testsupport.WriteFile(t, path, 128)

	record, err := Snapshot(path)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if record.Size != 128 {
		t.Fatalf("size = %d, want 128", record.Size)
	}
	if record.ModTime.IsZero() {
		t.Fatal("mod time not populated")
	}
	if !filepath.IsAbs(record.Path) {
		t.Fatalf("path not absolute: %s", record.Path)
	}
}
