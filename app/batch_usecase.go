package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ludo-technologies/esgen/domain"
	"github.com/ludo-technologies/esgen/service"
)

// BatchUseCase orchestrates `esgen batch`: discover AST JSON files under
// one or more roots, render each concurrently, and write the results to
// an output directory.
type BatchUseCase struct {
	files    *FileHelper
	renderer *service.RenderService
}

// NewBatchUseCase constructs a BatchUseCase.
func NewBatchUseCase() *BatchUseCase {
	return &BatchUseCase{files: NewFileHelper(), renderer: service.NewRenderService()}
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	OutputDir       string
	Recursive       bool
	ExcludePatterns []string
	Concurrency     int
	Progress        domain.ProgressManager
	Render          service.RenderOptions
}

// renderTask adapts one file's render into a domain.ExecutableTask for
// service.ParallelRenderer.
type renderTask struct {
	inputPath string
	outputDir string
	renderer  *service.RenderService
	opts      service.RenderOptions
}

func (t *renderTask) Name() string    { return t.inputPath }
func (t *renderTask) IsEnabled() bool { return true }

func (t *renderTask) Execute(_ context.Context) (any, error) {
	data, err := os.ReadFile(t.inputPath)
	if err != nil {
		return nil, err
	}
	opts := t.opts
	opts.SourceFile = t.inputPath
	result, err := t.renderer.RenderJSON(data, opts)
	if err != nil {
		return nil, err
	}

	outPath := outputPathFor(t.inputPath, t.outputDir)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, []byte(result.Source), 0644); err != nil {
		return nil, err
	}

	return domain.FileResult{InputFile: t.inputPath, OutputFile: outPath, Bytes: len(result.Source)}, nil
}

// outputPathFor derives a .js output path from a .ast.json input path,
// relocating it under outputDir when one is given.
func outputPathFor(inputPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), ".ast.json")
	if !strings.HasSuffix(base, ".js") {
		base += ".js"
	}
	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outputDir, base)
}

// Run discovers AST JSON files under paths and renders each
// concurrently, returning an aggregate domain.BatchReport. Per-file
// failures are recorded in the report rather than aborting the run.
func (u *BatchUseCase) Run(ctx context.Context, paths []string, opts BatchOptions) (domain.BatchReport, error) {
	start := time.Now()

	inputs, err := ResolveFilePaths(u.files, paths, opts.Recursive, opts.ExcludePatterns)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("discovering input files: %w", err)
	}

	tasks := make([]domain.ExecutableTask, len(inputs))
	for i, input := range inputs {
		tasks[i] = &renderTask{inputPath: input, outputDir: opts.OutputDir, renderer: u.renderer, opts: opts.Render}
	}

	renderer := service.NewParallelRendererWithProgress(opts.Concurrency, opts.Progress)
	results, runErr := renderer.Execute(ctx, tasks)

	report := domain.BatchReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		DurationMs:  time.Since(start).Milliseconds(),
		FilesTotal:  len(inputs),
	}

	failed := map[string]string{}
	if agg, ok := asAggregatedError(runErr); ok {
		for _, e := range agg.Errors {
			failed[e.TaskName] = e.Err.Error()
		}
	}

	for i, input := range inputs {
		if errMsg, isFailed := failed[input]; isFailed {
			report.Files = append(report.Files, domain.FileResult{InputFile: input, Error: errMsg})
			report.FilesFailed++
			continue
		}
		if i < len(results) {
			if fr, ok := results[i].(domain.FileResult); ok {
				report.Files = append(report.Files, fr)
				continue
			}
		}
		report.Files = append(report.Files, domain.FileResult{InputFile: input})
	}

	return report, nil
}

func asAggregatedError(err error) (*service.AggregatedError, bool) {
	if err == nil {
		return nil, false
	}
	agg, ok := err.(*service.AggregatedError)
	return agg, ok
}
