package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ludo-technologies/esgen/domain"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how a report is rendered to a writer.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputFormatter writes domain reports in the user's requested format:
// a WriteJSON/WriteYAML helper pair plus a Write method per report type.
type OutputFormatter struct{}

// NewOutputFormatter constructs an OutputFormatter.
func NewOutputFormatter() *OutputFormatter { return &OutputFormatter{} }

// WriteJSON encodes data as indented JSON.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteYAML encodes data as YAML with 2-space indentation.
func WriteYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

// WriteRenderReport writes a render result in the requested format. Text
// mode writes only the generated source, since that's the useful output
// of `esgen render` absent --format json|yaml; JSON/YAML modes wrap it in
// the full report.
func (f *OutputFormatter) WriteRenderReport(w io.Writer, source string, report domain.RenderReport, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, renderReportWithSource(report, source))
	case FormatYAML:
		return WriteYAML(w, renderReportWithSource(report, source))
	case FormatText, "":
		_, err := io.WriteString(w, source)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderReportWithSourceDoc is the JSON/YAML wire shape for a render
// report: the report's metadata plus the generated source itself.
type renderReportWithSourceDoc struct {
	domain.RenderReport `yaml:",inline"`
	Source              string `json:"source" yaml:"source"`
}

func renderReportWithSource(report domain.RenderReport, source string) renderReportWithSourceDoc {
	return renderReportWithSourceDoc{RenderReport: report, Source: source}
}

// WriteBatchReport writes a batch run's report in the requested format.
// Text mode prints a one-line-per-file summary; JSON/YAML mode encodes
// the full report.
func (f *OutputFormatter) WriteBatchReport(w io.Writer, report domain.BatchReport, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatYAML:
		return WriteYAML(w, report)
	case FormatText, "":
		for _, file := range report.Files {
			if file.Error != "" {
				fmt.Fprintf(w, "FAIL  %s: %s\n", file.InputFile, file.Error)
				continue
			}
			fmt.Fprintf(w, "OK    %s -> %s (%d bytes)\n", file.InputFile, file.OutputFile, file.Bytes)
		}
		fmt.Fprintf(w, "%d file(s), %d failed, %dms\n", report.FilesTotal, report.FilesFailed, report.DurationMs)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteCheckResult writes a check run's result in the requested format.
func (f *OutputFormatter) WriteCheckResult(w io.Writer, result domain.CheckResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	case FormatText, "":
		if result.Passed {
			fmt.Fprintf(w, "passed: %d file(s) checked\n", result.Summary.FilesChecked)
			return nil
		}
		for _, v := range result.Violations {
			loc := v.Location
			if loc != "" {
				loc = " (" + loc + ")"
			}
			fmt.Fprintf(w, "%s: %s%s\n", v.Severity, v.Message, loc)
		}
		fmt.Fprintf(w, "failed: %d/%d file(s)\n", result.Summary.FilesFailed, result.Summary.FilesChecked)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// ParseOutputFormat validates a user-supplied --format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML, "":
		if s == "" {
			return FormatText, nil
		}
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
	}
}
