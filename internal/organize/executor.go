package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"tidy/internal/logging"
	"tidy/internal/plan"
	"tidy/internal/services"
)

// lockFileName is created under the plan root for the duration of a run so
// concurrent invocations against the same tree exclude each other.
const lockFileName = ".tidy.lock"

// Progress reports execution advancement after each processed entry.
type Progress struct {
	Index       int
	Total       int
	Source      string
	Destination string
}

// Failure records one entry that could not be moved.
type Failure struct {
	Entry plan.Entry
	Err   error
}

// Result summarizes an execution run. Failed counts entries whose moves
// errored; those errors never abort the run.
type Result struct {
	Moved    int
	Skipped  int
	Failed   int
	Failures []Failure
}

// Executor applies a plan to the filesystem. Entries are processed strictly
// sequentially; per-entry failures are recorded and skipped so one bad file
// cannot strand the rest of the run mid-reorganization.
type Executor struct {
	logger          *slog.Logger
	deleteEmptyDirs bool

	mu     sync.Mutex
	status Status

	// OnProgress, when set, is invoked synchronously after each entry. It is
	// also the natural place for callers to observe cancellation taking hold.
	OnProgress func(Progress)
}

// NewExecutor builds an Executor. deleteEmptyDirs enables bottom-up pruning
// of directories left empty after the moves.
func NewExecutor(logger *slog.Logger, deleteEmptyDirs bool) *Executor {
	return &Executor{
		logger:          logging.NewComponentLogger(logger, "organize"),
		deleteEmptyDirs: deleteEmptyDirs,
		status:          StatusIdle,
	}
}

// Status returns the executor's current lifecycle state.
func (e *Executor) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Executor) setStatus(s Status) {
	e.mu.Lock()
	e.status = s
	e.mu.Unlock()
}

// Execute applies the plan. The run is guarded by an advisory lock file
// under the plan root; a second concurrent run fails fast instead of
// interleaving moves. On cancellation the partial Result is returned
// alongside the context error; already-moved files stay moved.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) (result *Result, err error) {
	e.mu.Lock()
	if e.status != StatusIdle {
		e.mu.Unlock()
		return nil, services.Wrap(services.ErrValidation, "organize", "execute",
			fmt.Sprintf("executor already used (status %s)", e.status), nil)
	}
	e.status = StatusRunning
	e.mu.Unlock()

	lockPath := filepath.Join(p.Root, lockFileName)
	lock := flock.New(lockPath)
	locked, lockErr := lock.TryLock()
	if lockErr != nil {
		e.setStatus(StatusFailed)
		return nil, services.Wrap(services.ErrTransient, "organize", "acquire lock", "cannot create lock file", lockErr)
	}
	if !locked {
		e.setStatus(StatusFailed)
		return nil, services.Wrap(services.ErrTransient, "organize", "acquire lock",
			"another run is organizing this directory", nil)
	}
	defer func() {
		_ = lock.Unlock()
		// Clear the lock file so the next scan does not pick it up as content.
		_ = os.Remove(lockPath)
	}()

	defer func() {
		if r := recover(); r != nil {
			e.setStatus(StatusFailed)
			err = services.Wrap(services.ErrTransient, "organize", "execute", fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	result = &Result{}
	total := len(p.Entries)
	for i, entry := range p.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.setStatus(StatusCancelled)
			e.logSummary(p, result, total)
			return result, ctxErr
		}

		moved, moveErr := e.moveEntry(entry)
		switch {
		case moveErr != nil:
			result.Failed++
			result.Failures = append(result.Failures, Failure{Entry: entry, Err: moveErr})
			e.logger.Warn("move failed",
				logging.String("source", entry.Source),
				logging.String("destination", entry.Destination),
				logging.Error(moveErr))
		case moved:
			result.Moved++
		default:
			result.Skipped++
		}

		if e.OnProgress != nil {
			e.OnProgress(Progress{Index: i + 1, Total: total, Source: entry.Source, Destination: entry.Destination})
		}
	}

	if e.deleteEmptyDirs {
		if pruneErr := RemoveEmptyDirs(p.Root, e.logger); pruneErr != nil {
			e.logger.Warn("pruning empty directories failed", logging.Error(pruneErr))
		}
	}

	e.setStatus(StatusCompleted)
	e.logSummary(p, result, total)
	return result, nil
}

func (e *Executor) logSummary(p *plan.Plan, result *Result, total int) {
	e.logger.Info("run finished",
		logging.String("plan_id", p.ID),
		logging.String("status", string(e.Status())),
		logging.String("summary", fmt.Sprintf("organized %d of %d files, skipped %d", result.Moved, total, result.Skipped)),
		logging.Int("failed", result.Failed))
}
