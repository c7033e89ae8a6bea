package emitter_test

import (
	"testing"

	"github.com/ludo-technologies/esgen/internal/estree"
	"github.com/ludo-technologies/esgen/internal/testutil"
)

// A SequenceExpression nested as a call argument must keep its own
// parens: without them, `f((a, b), c)` re-parses as a three-argument
// call instead of a two-argument call whose first argument is a comma
// expression.
func TestSequenceExpressionAsCallArgumentIsWrapped(t *testing.T) {
	seq := testutil.Node(string(estree.TypeSequenceExpression), map[string]any{
		"expressions": []*estree.Node{testutil.Ident("a"), testutil.Ident("b")},
	})
	call := testutil.Node(string(estree.TypeCallExpression), map[string]any{
		"callee":    testutil.Ident("f"),
		"arguments": []*estree.Node{seq, testutil.Ident("c")},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(call)))
	testutil.AssertEqual(t, "f((a, b), c);\n", out)
}

// Same hazard for array elements: an unwrapped sequence would silently
// grow the element count on re-parse.
func TestSequenceExpressionAsArrayElementIsWrapped(t *testing.T) {
	seq := testutil.Node(string(estree.TypeSequenceExpression), map[string]any{
		"expressions": []*estree.Node{testutil.Ident("a"), testutil.Ident("b")},
	})
	arr := testutil.Node(string(estree.TypeArrayExpression), map[string]any{
		"elements": []*estree.Node{seq, testutil.Ident("c")},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(arr)))
	testutil.AssertEqual(t, "[(a, b), c];\n", out)
}

// A top-level SequenceExpression (not nested inside any delimiter)
// needs no parens around its own items.
func TestBareSequenceExpressionNeedsNoParens(t *testing.T) {
	seq := testutil.Node(string(estree.TypeSequenceExpression), map[string]any{
		"expressions": []*estree.Node{testutil.Ident("a"), testutil.Ident("b"), testutil.Ident("c")},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(seq)))
	testutil.AssertEqual(t, "a, b, c;\n", out)
}

// A SequenceExpression used to initialize a single VariableDeclarator
// must be wrapped, or it re-parses as two declarators sharing one
// `let`/`const`/`var` instead of one declarator with a comma-operator
// initializer.
func TestSequenceExpressionAsDeclaratorInitIsWrapped(t *testing.T) {
	seq := testutil.Node(string(estree.TypeSequenceExpression), map[string]any{
		"expressions": []*estree.Node{testutil.Ident("a"), testutil.Ident("b")},
	})
	decl := testutil.Node(string(estree.TypeVariableDeclaration), map[string]any{
		"kind": "let",
		"declarations": []*estree.Node{
			testutil.Node(string(estree.TypeVariableDeclarator), map[string]any{
				"id":   testutil.Ident("x"),
				"init": seq,
			}),
		},
	})
	out := mustRender(t, testutil.Program(decl))
	testutil.AssertEqual(t, "let x = (a, b);\n", out)
}
