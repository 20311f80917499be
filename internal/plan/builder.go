package plan

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tidy/internal/category"
	"tidy/internal/config"
	"tidy/internal/dates"
	"tidy/internal/geo"
	"tidy/internal/hash"
	"tidy/internal/hashcache"
	"tidy/internal/logging"
	"tidy/internal/scan"
	"tidy/internal/services"
)

// noExtensionBucket receives files without an extension under the type
// strategy.
const noExtensionBucket = "NO_EXTENSION"

// Progress reports planning advancement after each classified file.
type Progress struct {
	Index int
	Total int
	Path  string
}

// Builder turns a scanned directory into a Plan. The same Builder can build
// any strategy; per-strategy helpers are constructed lazily so a type-only
// run never touches the geocoder or metadata decoders.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
	cache  *hashcache.Store

	// OnProgress, when set, is invoked synchronously after each file is
	// classified.
	OnProgress func(Progress)
}

// NewBuilder constructs a Builder. cache may be nil to disable digest
// caching for duplicate detection.
func NewBuilder(cfg *config.Config, logger *slog.Logger, cache *hashcache.Store) *Builder {
	return &Builder{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "plan"),
		cache:  cache,
	}
}

// Build scans root and produces the move plan for the given strategy. The
// filesystem is not modified. An empty or missing root is reported through
// services.ErrNotFound so callers can distinguish "nothing to do" from real
// failures.
func (b *Builder) Build(ctx context.Context, root string, strategy Strategy) (*Plan, error) {
	expandedRoot, err := config.ExpandPath(root)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "plan", "resolve root", "invalid root path", err)
	}

	records, err := scan.Collect(ctx, expandedRoot, b.cfg.Scan.IncludeSubfolders, b.logger)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "plan", "scan", "no files to organize", nil)
	}

	classify, finish, err := b.classifier(strategy)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		ID:        uuid.NewString(),
		Root:      expandedRoot,
		Strategy:  strategy,
		CreatedAt: time.Now(),
	}
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		folder := classify(ctx, record)
		p.Entries = append(p.Entries, Entry{
			Source:      record.Path,
			Destination: filepath.Join(expandedRoot, folder, filepath.Base(record.Path)),
		})
		if b.OnProgress != nil {
			b.OnProgress(Progress{Index: i + 1, Total: len(records), Path: record.Path})
		}
	}
	if finish != nil {
		finish()
	}

	b.logger.Info("plan built",
		logging.String("plan_id", p.ID),
		logging.String("strategy", string(strategy)),
		logging.Int("files", len(p.Entries)))
	return p, nil
}

// classifier returns the per-file folder function for a strategy plus an
// optional completion hook.
func (b *Builder) classifier(strategy Strategy) (func(context.Context, scan.FileRecord) string, func(), error) {
	switch strategy {
	case StrategyType:
		return func(_ context.Context, record scan.FileRecord) string {
			return typeFolder(record.Path)
		}, nil, nil

	case StrategyDate:
		source, err := dates.ParseSource(b.cfg.Dates.Source)
		if err != nil {
			return nil, nil, services.Wrap(services.ErrConfiguration, "plan", "configure dates", "bad date source", err)
		}
		granularity, err := dates.ParseGranularity(b.cfg.Dates.Granularity)
		if err != nil {
			return nil, nil, services.Wrap(services.ErrConfiguration, "plan", "configure dates", "bad date granularity", err)
		}
		resolver := dates.NewResolver(b.logger, b.cfg.Location.MaxImageBytes)
		return func(_ context.Context, record scan.FileRecord) string {
			resolved := resolver.Resolve(record, source)
			return dates.FolderName(resolved.Time, granularity)
		}, nil, nil

	case StrategyCategory:
		table := category.NewTable(b.cfg.Categories)
		classify := func(_ context.Context, record scan.FileRecord) string {
			return table.Classify(record.Path)
		}
		finish := func() {
			for name, count := range table.Counts() {
				b.logger.Info("category assigned", logging.String("category", name), logging.Int("files", count))
			}
		}
		return classify, finish, nil

	case StrategyLocation:
		granularity, err := geo.ParseGranularity(b.cfg.Location.Granularity)
		if err != nil {
			return nil, nil, services.Wrap(services.ErrConfiguration, "plan", "configure location", "bad location granularity", err)
		}
		namer := geo.NewNamer(b.cfg.Location.GeocoderURL,
			time.Duration(b.cfg.Location.RequestTimeout)*time.Second, b.logger)
		return func(ctx context.Context, record scan.FileRecord) string {
			coord, ok := geo.Extract(record.Path, b.cfg.Location.MaxImageBytes, b.logger)
			if !ok {
				return geo.UnknownLocation
			}
			return namer.Name(ctx, coord, granularity)
		}, nil, nil
	}
	return nil, nil, services.Wrap(services.ErrValidation, "plan", "select strategy",
		"unknown strategy "+string(strategy), nil)
}

// typeFolder maps a path to its extension bucket: "photo.jpg" lands in
// "JPG", extensionless files land in a dedicated bucket.
func typeFolder(path string) string {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return noExtensionBucket
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// DuplicateGroups scans root and returns groups of files with identical
// content. Like Build, it never modifies the filesystem.
func (b *Builder) DuplicateGroups(ctx context.Context, root string) ([]hash.Group, error) {
	expandedRoot, err := config.ExpandPath(root)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "plan", "resolve root", "invalid root path", err)
	}

	records, err := scan.Collect(ctx, expandedRoot, b.cfg.Scan.IncludeSubfolders, b.logger)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "plan", "scan", "no files to inspect", nil)
	}

	grouper := hash.NewGrouper(b.logger, b.cache, b.cfg.Scan.HashWorkers, b.cfg.Duplicates.MaxFileBytes)
	return grouper.Groups(ctx, records)
}
