package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ludo-technologies/esgen/domain"
	"github.com/ludo-technologies/esgen/internal/emitter"
	"github.com/ludo-technologies/esgen/internal/estree"
	"github.com/ludo-technologies/esgen/internal/sourcemap"
)

// RenderOptions carries the user-facing render knobs, decoupled from
// emitter.Options so app/cmd layers never import internal/emitter
// directly.
type RenderOptions struct {
	Indent      string
	LineEnd     string
	IndentLevel int
	Comments    bool
	SourceMap   bool
	SourceFile  string
}

func (o RenderOptions) toEmitterOptions(sm *sourcemap.Map) emitter.Options {
	opts := emitter.Options{
		Indent:      o.Indent,
		LineEnd:     o.LineEnd,
		IndentLevel: o.IndentLevel,
		Comments:    o.Comments,
		SourceFile:  o.SourceFile,
	}
	if sm != nil {
		opts.SourceMap = sm
	}
	return opts
}

// RenderService turns AST JSON into source text, wrapping
// internal/emitter.Render with timing and report construction.
type RenderService struct{}

// NewRenderService constructs a RenderService. It holds no state; the
// type exists to give render a stable, mockable seam for app/cmd callers
// and tests.
func NewRenderService() *RenderService { return &RenderService{} }

// RenderResult is a render's output source alongside its report and,
// when requested, its source map JSON.
type RenderResult struct {
	Source    string
	Report    domain.RenderReport
	SourceMap string
}

// RenderJSON parses astJSON as an ESTree AST and renders it to source
// text per opts.
func (s *RenderService) RenderJSON(astJSON []byte, opts RenderOptions) (*RenderResult, error) {
	var node estree.Node
	if err := json.Unmarshal(astJSON, &node); err != nil {
		return nil, fmt.Errorf("parsing AST JSON: %w", err)
	}
	return s.RenderNode(&node, opts)
}

// RenderNode renders an already-parsed AST node to source text per
// opts.
func (s *RenderService) RenderNode(node *estree.Node, opts RenderOptions) (*RenderResult, error) {
	var sm *sourcemap.Map
	if opts.SourceMap {
		sm = sourcemap.New()
	}

	start := time.Now()
	out, err := emitter.Render(node, opts.toEmitterOptions(sm))
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}

	report := domain.NewRenderReport(opts.SourceFile, out, duration)

	result := &RenderResult{Source: out, Report: report}
	if sm != nil {
		smJSON, err := sm.JSON()
		if err != nil {
			return nil, fmt.Errorf("encoding source map: %w", err)
		}
		result.SourceMap = string(smJSON)
		result.Report.SourceMap = result.SourceMap
	}
	return result, nil
}
