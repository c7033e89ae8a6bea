// Package testutil provides helper functions for testing esgen components.
package testutil

import (
	"testing"

	"github.com/ludo-technologies/esgen/internal/estree"
)

// Node builds a node of typ with the given attributes. Tests construct
// fixtures by hand with this helper since esgen never parses source
// itself (that is an external collaborator's job).
func Node(typ string, attrs map[string]any) *estree.Node {
	return &estree.Node{Type: typ, Attrs: attrs}
}

// Ident builds an Identifier node.
func Ident(name string) *estree.Node {
	return Node(string(estree.TypeIdentifier), map[string]any{"name": name})
}

// NumberLiteral builds a Literal node for a numeric value, with raw
// text equal to its default formatting so tests can predict output
// without duplicating strconv's formatting rules.
func NumberLiteral(v float64, raw string) *estree.Node {
	return Node(string(estree.TypeLiteral), map[string]any{"value": v, "raw": raw})
}

// StringLiteral builds a Literal node for a string value, with raw text
// as it would appear quoted in source.
func StringLiteral(v, raw string) *estree.Node {
	return Node(string(estree.TypeLiteral), map[string]any{"value": v, "raw": raw})
}

// Binary builds a BinaryExpression node.
func Binary(op string, left, right *estree.Node) *estree.Node {
	return Node(string(estree.TypeBinaryExpression), map[string]any{
		"operator": op, "left": left, "right": right,
	})
}

// ExprStatement wraps expr in an ExpressionStatement.
func ExprStatement(expr *estree.Node) *estree.Node {
	return Node(string(estree.TypeExpressionStatement), map[string]any{"expression": expr})
}

// Program builds a Program node from a body of statements.
func Program(body ...*estree.Node) *estree.Node {
	return Node(string(estree.TypeProgram), map[string]any{"body": body})
}

// BreakStatement builds a label-less BreakStatement.
func BreakStatement() *estree.Node {
	return Node(string(estree.TypeBreakStatement), map[string]any{})
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual.
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}
