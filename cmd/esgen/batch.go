package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/esgen/app"
	"github.com/ludo-technologies/esgen/internal/config"
	"github.com/ludo-technologies/esgen/service"
	"github.com/spf13/cobra"
)

var (
	batchOutputDir    string
	batchRecursive    bool
	batchConcurrency  int
	batchProgress     bool
	batchExclude      []string
	batchFormat       string
	batchConfigPath   string
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [path...]",
		Short: "Render every AST JSON file under one or more directories",
		Long: `Batch discovers *.ast.json files under the given paths (respecting
.gitignore and --exclude patterns), renders each concurrently, and writes
the generated source next to its input (or under --output-dir).

Examples:
  esgen batch src/
  esgen batch --output-dir out/ --concurrency 8 src/`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runBatch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Directory to write rendered files into")
	cmd.Flags().BoolVarP(&batchRecursive, "recursive", "r", true, "Recurse into subdirectories")
	cmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum concurrent renders (0 = config default)")
	cmd.Flags().BoolVar(&batchProgress, "progress", true, "Show a progress bar")
	cmd.Flags().StringSliceVar(&batchExclude, "exclude", nil, "Additional exclude patterns")
	cmd.Flags().StringVar(&batchFormat, "format", "text", "Report format: text, json, or yaml")
	cmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to config file")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithTarget(batchConfigPath, args[0])
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	exclude := append([]string{}, cfg.Batch.ExcludePatterns...)
	exclude = append(exclude, batchExclude...)

	concurrency := cfg.Batch.ResolvedConcurrency()
	if cmd.Flags().Changed("concurrency") {
		concurrency = batchConcurrency
	}

	showProgress := cfg.Batch.Progress
	if cmd.Flags().Changed("progress") {
		showProgress = batchProgress
	}

	format, err := service.ParseOutputFormat(batchFormat)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	pm := service.NewProgressManager(showProgress && format == service.FormatText)
	defer pm.Close()

	outputDir := batchOutputDir
	if outputDir == "" {
		outputDir = cfg.Batch.OutputDir
	}

	uc := app.NewBatchUseCase()
	report, err := uc.Run(context.Background(), args, app.BatchOptions{
		OutputDir:       outputDir,
		Recursive:       batchRecursive,
		ExcludePatterns: exclude,
		Concurrency:     concurrency,
		Progress:        pm,
		Render: service.RenderOptions{
			Indent:      cfg.Render.Indent,
			LineEnd:     cfg.Render.LineEndString(),
			IndentLevel: cfg.Render.IndentLevel,
			Comments:    cfg.Render.Comments,
		},
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteBatchReport(os.Stdout, report, format); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if report.FilesFailed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
