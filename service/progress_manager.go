// Package service implements esgen's use-case-facing operations: progress
// reporting, parallel batch rendering, and report formatting. It sits
// between app (which owns file discovery and orchestration) and the
// lower-level internal/emitter.
package service

import (
	"io"
	"os"

	"github.com/ludo-technologies/esgen/domain"
	"github.com/schollz/progressbar/v3"
)

// ProgressManagerImpl implements domain.ProgressManager with interactive
// progress bars.
type ProgressManagerImpl struct {
	writer io.Writer
	tasks  []*progressbar.ProgressBar
}

// NewProgressManager creates a progress manager, falling back to a no-op
// implementation when enabled is false or the environment is
// non-interactive.
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &ProgressManagerImpl{writer: os.Stderr}
	}
	return &NoOpProgressManager{}
}

// StartTask creates a new progress task with a description and total
// count.
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	pm.tasks = append(pm.tasks, bar)
	return &TaskProgressImpl{bar: bar}
}

// IsInteractive reports whether progress bars are shown.
func (pm *ProgressManagerImpl) IsInteractive() bool { return true }

// Close finishes every task started through this manager.
func (pm *ProgressManagerImpl) Close() {
	for _, bar := range pm.tasks {
		_ = bar.Finish()
	}
	pm.tasks = nil
}

// TaskProgressImpl implements domain.TaskProgress with a progressbar.
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

func (tp *TaskProgressImpl) Increment(n int)             { _ = tp.bar.Add(n) }
func (tp *TaskProgressImpl) Describe(description string) { tp.bar.Describe(description) }
func (tp *TaskProgressImpl) Complete()                   { _ = tp.bar.Finish() }

// NoOpProgressManager implements domain.ProgressManager with no-op
// methods, used for non-interactive environments or JSON/YAML output
// where a progress bar would corrupt the piped report.
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}
func (pm *NoOpProgressManager) IsInteractive() bool { return false }
func (pm *NoOpProgressManager) Close()              {}

// NoOpTaskProgress implements domain.TaskProgress with no-op methods.
type NoOpTaskProgress struct{}

func (tp *NoOpTaskProgress) Increment(_ int)   {}
func (tp *NoOpTaskProgress) Describe(_ string) {}
func (tp *NoOpTaskProgress) Complete()         {}

// IsInteractiveEnvironment reports whether stderr is a terminal and CI
// isn't set. Callers check --json/--format before constructing a
// progress manager; this makes the interactivity check explicit and
// reusable by both the CLI and tests.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
