// Package domain holds the plain data types shared between the service,
// app, and cmd layers: render/batch reports and check results. None of
// these types know how to render or format themselves — that is
// service.OutputFormatter's job.
package domain

import "time"

// RenderReport wraps a single emitter.Render call's result with the
// metadata the CLI's --format json|yaml report adds on top of the
// generated source itself (spec.md's Report, per the glossary).
type RenderReport struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generated_at"`
	DurationMs  int64  `json:"duration_ms"`
	SourceFile  string `json:"source_file,omitempty"`
	Bytes       int    `json:"bytes"`
	Lines       int    `json:"lines"`
	SourceMap   string `json:"source_map,omitempty"`
}

// NewRenderReport builds a RenderReport from a render's output and the
// time it took, counting lines as the number of newline characters plus
// one (matching how a text editor would report a line count for
// non-empty output).
func NewRenderReport(sourceFile, output string, duration time.Duration) RenderReport {
	lines := 0
	if len(output) > 0 {
		lines = 1
		for _, r := range output {
			if r == '\n' {
				lines++
			}
		}
	}
	return RenderReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		DurationMs:  duration.Milliseconds(),
		SourceFile:  sourceFile,
		Bytes:       len(output),
		Lines:       lines,
	}
}

// FileResult is one file's outcome within a BatchReport.
type FileResult struct {
	InputFile  string `json:"input_file"`
	OutputFile string `json:"output_file,omitempty"`
	Bytes      int    `json:"bytes"`
	Error      string `json:"error,omitempty"`
}

// BatchReport wraps the results of an `esgen batch` run across many
// input files.
type BatchReport struct {
	Version      string       `json:"version"`
	GeneratedAt  string       `json:"generated_at"`
	DurationMs   int64        `json:"duration_ms"`
	FilesTotal   int          `json:"files_total"`
	FilesFailed  int          `json:"files_failed"`
	Files        []FileResult `json:"files"`
}
