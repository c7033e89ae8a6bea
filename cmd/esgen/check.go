package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ludo-technologies/esgen/app"
	"github.com/ludo-technologies/esgen/domain"
	"github.com/ludo-technologies/esgen/internal/version"
	"github.com/ludo-technologies/esgen/service"
	"github.com/spf13/cobra"
)

var (
	checkFormat string
	checkVerbose bool
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Render AST JSON files and verify the output re-parses cleanly",
		Long: `Check renders each given AST JSON file and re-parses the generated
source with tree-sitter, failing if the result contains a parse error.

Exit codes:
  0 - every file rendered and re-parsed cleanly
  1 - one or more files failed the roundtrip check
  2 - a file could not be read or rendered at all

Examples:
  esgen check ast.json
  esgen check --format json src/*.ast.json`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&checkFormat, "format", "text", "Report format: text, json, or yaml")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show per-file detail even on success")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	format, err := service.ParseOutputFormat(checkFormat)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	uc := app.NewRenderUseCase()
	result := domain.CheckResult{
		Passed:  true,
		Version: version.GetVersion(),
	}

	for _, path := range args {
		result.Summary.FilesChecked++

		_, checkErr, renderErr := uc.CheckFile(path)
		if renderErr != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("rendering %s: %v", path, renderErr)}
		}
		if checkErr != nil {
			result.Passed = false
			result.Summary.FilesFailed++
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:     "roundtrip",
				Severity: "error",
				Message:  checkErr.Error(),
				Location: path,
			})
		} else if checkVerbose && format == service.FormatText {
			fmt.Fprintf(os.Stdout, "ok: %s\n", path)
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	if !result.Passed {
		result.ExitCode = 1
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteCheckResult(os.Stdout, result, format); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if !result.Passed {
		return &ExitError{Code: 1}
	}
	return nil
}
