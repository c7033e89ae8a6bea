package domain

import "context"

// ProgressManager creates and tracks progress bars for long-running
// operations. service/progress_manager.go and service/parallel_renderer.go
// are written against this interface.
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks a single task's progress within a ProgressManager.
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// ExecutableTask is one unit of work a service.ParallelRenderer can run
// concurrently.
type ExecutableTask interface {
	Name() string
	IsEnabled() bool
	Execute(ctx context.Context) (any, error)
}
