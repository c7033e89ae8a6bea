package app

import (
	"fmt"
	"io"
	"os"

	"github.com/ludo-technologies/esgen/internal/roundtrip"
	"github.com/ludo-technologies/esgen/service"
)

// RenderUseCase orchestrates `esgen render`: read an AST JSON file (or
// stdin), render it, and optionally write a source map alongside it.
type RenderUseCase struct {
	renderer *service.RenderService
	files    *FileHelper
}

// NewRenderUseCase constructs a RenderUseCase.
func NewRenderUseCase() *RenderUseCase {
	return &RenderUseCase{renderer: service.NewRenderService(), files: NewFileHelper()}
}

// RenderFile renders the AST JSON at path (or stdin when path is "-")
// per opts.
func (u *RenderUseCase) RenderFile(path string, opts service.RenderOptions) (*service.RenderResult, error) {
	var data []byte
	var err error
	if path == "-" || path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = u.files.ReadFile(path)
		if opts.SourceFile == "" {
			opts.SourceFile = path
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", displayPath(path), err)
	}
	return u.renderer.RenderJSON(data, opts)
}

// CheckFile renders the AST JSON at path and round-trip-checks the
// result with tree-sitter, backing `esgen check`.
func (u *RenderUseCase) CheckFile(path string) (source string, checkErr error, renderErr error) {
	result, err := u.RenderFile(path, service.RenderOptions{})
	if err != nil {
		return "", nil, err
	}

	checker := roundtrip.NewChecker()
	defer checker.Close()

	return result.Source, checker.CheckString(result.Source), nil
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
