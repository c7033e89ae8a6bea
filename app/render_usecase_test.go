package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/esgen/service"
)

func TestRenderUseCaseRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ast.json")
	ast := `{"type":"Program","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"hi"}}]}`
	if err := os.WriteFile(path, []byte(ast), 0644); err != nil {
		t.Fatal(err)
	}

	uc := NewRenderUseCase()
	result, err := uc.RenderFile(path, service.RenderOptions{})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if !strings.Contains(result.Source, "hi") {
		t.Errorf("Source = %q, want it to contain hi", result.Source)
	}
	if result.Report.SourceFile != path {
		t.Errorf("Report.SourceFile = %q, want %q", result.Report.SourceFile, path)
	}
}

func TestRenderUseCaseRenderFileMissing(t *testing.T) {
	uc := NewRenderUseCase()
	if _, err := uc.RenderFile("/nonexistent/path.ast.json", service.RenderOptions{}); err == nil {
		t.Error("RenderFile(missing) = nil error, want error")
	}
}

func TestCheckFileReportsCleanSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ast.json")
	ast := `{"type":"Program","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"ok"}}]}`
	if err := os.WriteFile(path, []byte(ast), 0644); err != nil {
		t.Fatal(err)
	}

	uc := NewRenderUseCase()
	source, checkErr, renderErr := uc.CheckFile(path)
	if renderErr != nil {
		t.Fatalf("CheckFile render error: %v", renderErr)
	}
	if checkErr != nil {
		t.Errorf("CheckFile check error = %v, want nil for %q", checkErr, source)
	}
}
