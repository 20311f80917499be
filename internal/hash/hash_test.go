package hash

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tidy/internal/logging"
	"tidy/internal/scan"
	"tidy/internal/testsupport"
)

func collectRecords(t *testing.T, root string) []scan.FileRecord {
	t.Helper()
	records, err := scan.Collect(context.Background(), root, true, logging.NewNop())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return records
}

func TestFileDigestIsStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	testsupport.WriteFileContent(t, path, []byte("hello world"))

	first, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	second, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if first != second {
		t.Fatalf("digests differ: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(first))
	}
}

func TestGroupsFindsDuplicatesAndExcludesSingletons(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFileContent(t, filepath.Join(dir, "a.txt"), []byte("same content"))
	testsupport.WriteFileContent(t, filepath.Join(dir, "sub", "b.txt"), []byte("same content"))
	testsupport.WriteFileContent(t, filepath.Join(dir, "c.txt"), []byte("same content"))
	testsupport.WriteFileContent(t, filepath.Join(dir, "unique.txt"), []byte("different"))

	grouper := NewGrouper(logging.NewNop(), nil, 2, 0)
	groups, err := grouper.Groups(context.Background(), collectRecords(t, dir))
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Paths) != 3 {
		t.Fatalf("got %d paths in group, want 3", len(groups[0].Paths))
	}
}

func TestGroupsSkipsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "big1.bin"), 4096)
	testsupport.WriteFile(t, filepath.Join(dir, "big2.bin"), 4096)

	grouper := NewGrouper(logging.NewNop(), nil, 1, 1024)
	groups, err := grouper.Groups(context.Background(), collectRecords(t, dir))
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("oversized files were hashed: %+v", groups)
	}
}

func TestGroupsCancelled(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.bin"), 64)
	records := collectRecords(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	grouper := NewGrouper(logging.NewNop(), nil, 1, 0)
	if _, err := grouper.Groups(ctx, records); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
