package organize

// Status tracks an Executor through its lifecycle. Transitions are one way:
// a finished Executor is not reused, a fresh one is built per run.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)
