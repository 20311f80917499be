package hash

import (
	"context"
	"log/slog"
	"sync"

	"tidy/internal/hashcache"
	"tidy/internal/logging"
	"tidy/internal/scan"
)

// Group collects the paths of files sharing one content digest.
type Group struct {
	Digest string
	Size   int64
	Paths  []string
}

// Grouper hashes a set of files and buckets them by content. Hashing fans
// out across a bounded worker pool; grouping preserves the input order so
// results are deterministic for a given scan.
type Grouper struct {
	logger   *slog.Logger
	cache    *hashcache.Store
	workers  int
	maxBytes int64
}

// NewGrouper builds a Grouper. cache may be nil to disable digest caching;
// maxBytes caps how large a file is still hashed (zero means unlimited).
func NewGrouper(logger *slog.Logger, cache *hashcache.Store, workers int, maxBytes int64) *Grouper {
	if workers < 1 {
		workers = 1
	}
	return &Grouper{
		logger:   logging.NewComponentLogger(logger, "hash"),
		cache:    cache,
		workers:  workers,
		maxBytes: maxBytes,
	}
}

// Groups hashes the given files and returns only the digests shared by two
// or more files. Oversized and unreadable files are logged and excluded; a
// cancelled context aborts outstanding work and returns ctx.Err().
func (g *Grouper) Groups(ctx context.Context, records []scan.FileRecord) ([]Group, error) {
	digests := make([]string, len(records))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < g.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				digests[i] = g.digestFor(ctx, records[i])
			}
		}()
	}

feed:
	for i, record := range records {
		if g.maxBytes > 0 && record.Size > g.maxBytes {
			g.logger.Debug("skipping oversized file for duplicate detection",
				logging.String("path", record.Path), logging.Int64("size", record.Size))
			continue
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byDigest := make(map[string]*Group)
	var order []string
	for i, record := range records {
		digest := digests[i]
		if digest == "" {
			continue
		}
		group, ok := byDigest[digest]
		if !ok {
			group = &Group{Digest: digest, Size: record.Size}
			byDigest[digest] = group
			order = append(order, digest)
		}
		group.Paths = append(group.Paths, record.Path)
	}

	var groups []Group
	for _, digest := range order {
		group := byDigest[digest]
		if len(group.Paths) < 2 {
			continue
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

// digestFor resolves one file's digest, consulting the cache first. An empty
// return means the file could not be hashed and is excluded from grouping.
func (g *Grouper) digestFor(ctx context.Context, record scan.FileRecord) string {
	if digest, ok := g.cache.Lookup(ctx, record.Path, record.Size, record.ModTime); ok {
		return digest
	}
	digest, err := File(record.Path)
	if err != nil {
		g.logger.Warn("excluding unreadable file from duplicate detection",
			logging.String("path", record.Path), logging.Error(err))
		return ""
	}
	if err := g.cache.Save(ctx, record.Path, record.Size, record.ModTime, digest); err != nil {
		g.logger.Warn("failed to cache digest", logging.String("path", record.Path), logging.Error(err))
	}
	return digest
}
