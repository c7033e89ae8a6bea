// Package roundtrip wraps tree-sitter's JavaScript grammar to check that
// emitted text parses cleanly, rather than to build an AST from it. It
// backs the emitter's re-parse testable properties and the `esgen check`
// subcommand.
package roundtrip

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Checker parses JavaScript source with tree-sitter and reports whether
// it parsed without error nodes.
type Checker struct {
	parser *sitter.Parser
}

// NewChecker creates a Checker backed by the tree-sitter JavaScript
// grammar.
func NewChecker() *Checker {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return &Checker{parser: parser}
}

// Close frees the underlying tree-sitter parser.
func (c *Checker) Close() {
	if c.parser != nil {
		c.parser.Close()
	}
}

// Check parses source and returns an error describing the first ERROR or
// MISSING node tree-sitter produced, or nil if source parsed cleanly.
func (c *Checker) Check(ctx context.Context, source string) error {
	tree, err := c.parser.ParseCtx(ctx, nil, []byte(source))
	if err != nil {
		return fmt.Errorf("roundtrip: parse failed: %w", err)
	}
	if tree == nil {
		return fmt.Errorf("roundtrip: parser produced no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("roundtrip: no root node")
	}
	if !root.HasError() {
		return nil
	}

	if loc, text, ok := findError(root, []byte(source)); ok {
		return fmt.Errorf("roundtrip: generated source failed to re-parse near %s: %q", loc, text)
	}
	return fmt.Errorf("roundtrip: generated source failed to re-parse")
}

// CheckString is a convenience wrapper around Check using a background
// context, for callers (tests, the `esgen check` command) that have no
// cancellation concerns of their own.
func (c *Checker) CheckString(source string) error {
	return c.Check(context.Background(), source)
}

// findError depth-first searches n for the first ERROR or MISSING node,
// returning its start-point location and source text.
func findError(n *sitter.Node, source []byte) (loc string, text string, ok bool) {
	if n.IsError() || n.IsMissing() {
		p := n.StartPoint()
		return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1), n.Content(source), true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if loc, text, ok := findError(n.Child(i), source); ok {
			return loc, text, ok
		}
	}
	return "", "", false
}
