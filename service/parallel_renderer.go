package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ludo-technologies/esgen/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrency bounds a ParallelRenderer when the caller doesn't
// resolve one from config.
const DefaultMaxConcurrency = 4

// DefaultTimeout bounds how long a single batch run may take overall.
const DefaultTimeout = 5 * time.Minute

// TaskError records one task's failure within an AggregatedError.
type TaskError struct {
	TaskName string
	Err      error
}

func (e *TaskError) Error() string { return fmt.Sprintf("%s: %v", e.TaskName, e.Err) }
func (e *TaskError) Unwrap() error { return e.Err }

// AggregatedError collects every TaskError from a batch run rather than
// aborting at the first failure, so a batch render reports every broken
// input file in one pass.
type AggregatedError struct {
	Errors []*TaskError
}

func (e *AggregatedError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, te := range e.Errors {
		parts = append(parts, te.Error())
	}
	return fmt.Sprintf("%d task(s) failed: %s", len(e.Errors), strings.Join(parts, "; "))
}

func (e *AggregatedError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, te := range e.Errors {
		errs[i] = te
	}
	return errs
}

// ParallelRenderer runs a set of domain.ExecutableTask concurrently,
// bounded by a configurable concurrency limit and overall timeout.
type ParallelRenderer struct {
	mu             sync.RWMutex
	maxConcurrency int
	timeout        time.Duration
	progress       domain.ProgressManager
}

// NewParallelRenderer creates a renderer bounded by maxConcurrency (when
// <=0, DefaultMaxConcurrency is used).
func NewParallelRenderer(maxConcurrency int) *ParallelRenderer {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &ParallelRenderer{maxConcurrency: maxConcurrency, timeout: DefaultTimeout}
}

// NewParallelRendererWithProgress attaches a progress manager that
// receives one increment per completed task.
func NewParallelRendererWithProgress(maxConcurrency int, progress domain.ProgressManager) *ParallelRenderer {
	pr := NewParallelRenderer(maxConcurrency)
	pr.progress = progress
	return pr
}

// SetMaxConcurrency updates the concurrency bound for subsequent Execute
// calls.
func (pr *ParallelRenderer) SetMaxConcurrency(n int) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if n > 0 {
		pr.maxConcurrency = n
	}
}

// SetTimeout updates the overall run timeout for subsequent Execute
// calls.
func (pr *ParallelRenderer) SetTimeout(d time.Duration) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if d > 0 {
		pr.timeout = d
	}
}

// Execute runs every enabled task concurrently up to the configured
// limit, collecting results by index and returning an *AggregatedError
// if any task failed. A task's failure never cancels its siblings.
func (pr *ParallelRenderer) Execute(ctx context.Context, tasks []domain.ExecutableTask) ([]any, error) {
	pr.mu.RLock()
	limit := pr.maxConcurrency
	timeout := pr.timeout
	progress := pr.progress
	pr.mu.RUnlock()

	enabled := filterEnabledTasks(tasks)
	if len(enabled) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bar domain.TaskProgress
	if progress != nil {
		bar = progress.StartTask("rendering", len(enabled))
		defer bar.Complete()
	}

	results := make([]any, len(enabled))
	var mu sync.Mutex
	var failures []*TaskError

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, task := range enabled {
		i, task := i, task
		g.Go(func() error {
			res, err := task.Execute(gctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, &TaskError{TaskName: task.Name(), Err: err})
			} else {
				results[i] = res
			}
			if bar != nil {
				bar.Increment(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return results, &AggregatedError{Errors: failures}
	}
	return results, nil
}

func filterEnabledTasks(tasks []domain.ExecutableTask) []domain.ExecutableTask {
	enabled := make([]domain.ExecutableTask, 0, len(tasks))
	for _, t := range tasks {
		if t.IsEnabled() {
			enabled = append(enabled, t)
		}
	}
	return enabled
}
