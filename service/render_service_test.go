package service

import (
	"strings"
	"testing"

	"github.com/ludo-technologies/esgen/internal/estree"
)

func identifierExprStmt(name string) *estree.Node {
	return &estree.Node{
		Type: string(estree.TypeExpressionStatement),
		Attrs: map[string]any{
			"expression": &estree.Node{
				Type:  string(estree.TypeIdentifier),
				Attrs: map[string]any{"name": name},
			},
		},
	}
}

func program(body ...*estree.Node) *estree.Node {
	children := make([]*estree.Node, len(body))
	copy(children, body)
	return &estree.Node{
		Type:  string(estree.TypeProgram),
		Attrs: map[string]any{"body": children},
	}
}

func TestRenderNodeProducesSource(t *testing.T) {
	svc := NewRenderService()
	result, err := svc.RenderNode(program(identifierExprStmt("x")), RenderOptions{SourceFile: "in.js"})
	if err != nil {
		t.Fatalf("RenderNode: %v", err)
	}
	if !strings.Contains(result.Source, "x") {
		t.Errorf("Source = %q, want it to contain %q", result.Source, "x")
	}
	if result.Report.SourceFile != "in.js" {
		t.Errorf("Report.SourceFile = %q, want in.js", result.Report.SourceFile)
	}
	if result.Report.Bytes != len(result.Source) {
		t.Errorf("Report.Bytes = %d, want %d", result.Report.Bytes, len(result.Source))
	}
}

func TestRenderNodeWithSourceMapPopulatesReport(t *testing.T) {
	svc := NewRenderService()
	result, err := svc.RenderNode(program(identifierExprStmt("x")), RenderOptions{SourceFile: "in.js", SourceMap: true})
	if err != nil {
		t.Fatalf("RenderNode: %v", err)
	}
	if result.SourceMap == "" {
		t.Error("SourceMap = \"\", want non-empty JSON")
	}
	if !strings.Contains(result.SourceMap, `"version"`) {
		t.Errorf("SourceMap = %q, want it to contain a version field", result.SourceMap)
	}
}

func TestRenderJSONParsesAndRenders(t *testing.T) {
	svc := NewRenderService()
	astJSON := []byte(`{
		"type": "Program",
		"body": [
			{"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "hello"}}
		]
	}`)
	result, err := svc.RenderJSON(astJSON, RenderOptions{})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !strings.Contains(result.Source, "hello") {
		t.Errorf("Source = %q, want it to contain %q", result.Source, "hello")
	}
}

func TestRenderJSONRejectsInvalidJSON(t *testing.T) {
	svc := NewRenderService()
	if _, err := svc.RenderJSON([]byte("not json"), RenderOptions{}); err == nil {
		t.Error("RenderJSON(invalid) = nil error, want error")
	}
}
