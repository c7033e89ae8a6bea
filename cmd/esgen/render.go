package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/esgen/app"
	"github.com/ludo-technologies/esgen/internal/config"
	"github.com/ludo-technologies/esgen/service"
	"github.com/spf13/cobra"
)

var (
	renderIndent      string
	renderLineEnd     string
	renderIndentLevel int
	renderComments    bool
	renderSourceMap   string
	renderFormat      string
	renderConfigPath  string
	renderOutput      string
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a single AST JSON file to source text",
		Long: `Render reads an ESTree AST as JSON from a file (or stdin when the
argument is "-") and writes the generated JavaScript source to stdout.

Examples:
  esgen render ast.json
  cat ast.json | esgen render -
  esgen render --format json --source-map out.map ast.json`,
		Args:          cobra.ExactArgs(1),
		RunE:          runRender,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&renderIndent, "indent", "", "Indentation unit (default from config, a tab)")
	cmd.Flags().StringVar(&renderLineEnd, "line-end", "", "Line ending: lf or crlf")
	cmd.Flags().IntVar(&renderIndentLevel, "indent-level", -1, "Starting indentation depth")
	cmd.Flags().BoolVar(&renderComments, "comments", true, "Emit leading/trailing comments")
	cmd.Flags().StringVar(&renderSourceMap, "source-map", "", "Write a source map to this path")
	cmd.Flags().StringVar(&renderFormat, "format", "text", "Output format: text, json, or yaml")
	cmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write generated source to this file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.LoadConfigWithTarget(renderConfigPath, path)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	opts := service.RenderOptions{
		Indent:      cfg.Render.Indent,
		LineEnd:     cfg.Render.LineEndString(),
		IndentLevel: cfg.Render.IndentLevel,
		Comments:    cfg.Render.Comments,
	}
	if cmd.Flags().Changed("indent") {
		opts.Indent = renderIndent
	}
	if cmd.Flags().Changed("line-end") {
		if renderLineEnd == "crlf" {
			opts.LineEnd = "\r\n"
		} else {
			opts.LineEnd = "\n"
		}
	}
	if cmd.Flags().Changed("indent-level") {
		opts.IndentLevel = renderIndentLevel
	}
	if cmd.Flags().Changed("comments") {
		opts.Comments = renderComments
	}
	sourceMapPath := cfg.Render.SourceMap
	if cmd.Flags().Changed("source-map") {
		sourceMapPath = renderSourceMap
	}
	if sourceMapPath != "" {
		opts.SourceMap = true
	}

	format, err := service.ParseOutputFormat(renderFormat)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	uc := app.NewRenderUseCase()
	result, err := uc.RenderFile(path, opts)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if sourceMapPath != "" && result.SourceMap != "" {
		if err := os.WriteFile(sourceMapPath, []byte(result.SourceMap), 0644); err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("failed to write source map: %v", err)}
		}
	}

	out := os.Stdout
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("failed to open output file: %v", err)}
		}
		defer f.Close()
		out = f
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteRenderReport(out, result.Source, result.Report, format); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return nil
}
