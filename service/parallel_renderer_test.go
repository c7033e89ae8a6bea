package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ludo-technologies/esgen/domain"
)

type fakeTask struct {
	name    string
	enabled bool
	result  any
	err     error
}

func (t *fakeTask) Name() string      { return t.name }
func (t *fakeTask) IsEnabled() bool   { return t.enabled }
func (t *fakeTask) Execute(_ context.Context) (any, error) {
	return t.result, t.err
}

func TestParallelRendererExecuteCollectsResults(t *testing.T) {
	pr := NewParallelRenderer(2)
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: true, result: "a-out"},
		&fakeTask{name: "b", enabled: true, result: "b-out"},
	}
	results, err := pr.Execute(context.Background(), tasks)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
}

func TestParallelRendererSkipsDisabledTasks(t *testing.T) {
	pr := NewParallelRenderer(2)
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: false, result: "skip"},
	}
	results, err := pr.Execute(context.Background(), tasks)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil for all-disabled tasks", results)
	}
}

func TestParallelRendererAggregatesFailures(t *testing.T) {
	pr := NewParallelRenderer(2)
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: true, err: errors.New("boom")},
		&fakeTask{name: "b", enabled: true, result: "ok"},
	}
	_, err := pr.Execute(context.Background(), tasks)
	if err == nil {
		t.Fatal("Execute() = nil error, want AggregatedError")
	}
	var agg *AggregatedError
	if !errors.As(err, &agg) {
		t.Fatalf("err = %v (%T), want *AggregatedError", err, err)
	}
	if len(agg.Errors) != 1 || agg.Errors[0].TaskName != "a" {
		t.Errorf("agg.Errors = %v, want one failure from task a", agg.Errors)
	}
}
