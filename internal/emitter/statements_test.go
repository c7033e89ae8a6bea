package emitter_test

import (
	"testing"

	"github.com/ludo-technologies/esgen/internal/emitter"
	"github.com/ludo-technologies/esgen/internal/estree"
	"github.com/ludo-technologies/esgen/internal/testutil"
)

func mustRender(t *testing.T, node *estree.Node) string {
	t.Helper()
	out, err := emitter.Render(node, emitter.Options{})
	testutil.AssertNoError(t, err)
	return out
}

func TestIfStatementWithBlockElse(t *testing.T) {
	test := testutil.Ident("cond")
	cons := testutil.Node(string(estree.TypeBlockStatement), map[string]any{
		"body": []*estree.Node{testutil.ExprStatement(testutil.Ident("a"))},
	})
	alt := testutil.Node(string(estree.TypeBlockStatement), map[string]any{
		"body": []*estree.Node{testutil.ExprStatement(testutil.Ident("b"))},
	})
	ifStmt := testutil.Node(string(estree.TypeIfStatement), map[string]any{
		"test": test, "consequent": cons, "alternate": alt,
	})
	out := mustRender(t, testutil.Program(ifStmt))
	want := "if (cond) {\n\ta;\n} else {\n\tb;\n}\n"
	testutil.AssertEqual(t, want, out)
}

func TestIfStatementWithBareConsequentNoElse(t *testing.T) {
	ifStmt := testutil.Node(string(estree.TypeIfStatement), map[string]any{
		"test":       testutil.Ident("cond"),
		"consequent": testutil.ExprStatement(testutil.Ident("a")),
	})
	out := mustRender(t, testutil.Program(ifStmt))
	want := "if (cond)\n\ta;\n"
	testutil.AssertEqual(t, want, out)
}

func TestElseIfChain(t *testing.T) {
	inner := testutil.Node(string(estree.TypeIfStatement), map[string]any{
		"test":       testutil.Ident("b"),
		"consequent": testutil.ExprStatement(testutil.Ident("y")),
	})
	outer := testutil.Node(string(estree.TypeIfStatement), map[string]any{
		"test":       testutil.Ident("a"),
		"consequent": testutil.ExprStatement(testutil.Ident("x")),
		"alternate":  inner,
	})
	out := mustRender(t, testutil.Program(outer))
	want := "if (a)\n\tx;\nelse if (b)\n\ty;\n"
	testutil.AssertEqual(t, want, out)
}

func TestForStatementSuppressesInitSemicolon(t *testing.T) {
	init := testutil.Node(string(estree.TypeVariableDeclaration), map[string]any{
		"kind": "let",
		"declarations": []*estree.Node{
			testutil.Node(string(estree.TypeVariableDeclarator), map[string]any{
				"id":   testutil.Ident("i"),
				"init": testutil.NumberLiteral(0, "0"),
			}),
		},
	})
	test := testutil.Binary("<", testutil.Ident("i"), testutil.NumberLiteral(10, "10"))
	update := testutil.Node(string(estree.TypeUpdateExpression), map[string]any{
		"operator": "++", "prefix": false, "argument": testutil.Ident("i"),
	})
	forStmt := testutil.Node(string(estree.TypeForStatement), map[string]any{
		"init": init, "test": test, "update": update,
		"body": testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	out := mustRender(t, testutil.Program(forStmt))
	testutil.AssertEqual(t, "for (let i = 0; i < 10; i++) {}\n", out)
}

func TestSwitchStatementWithDefault(t *testing.T) {
	caseA := testutil.Node(string(estree.TypeSwitchCase), map[string]any{
		"test":       testutil.NumberLiteral(1, "1"),
		"consequent": []*estree.Node{testutil.BreakStatement()},
	})
	def := testutil.Node(string(estree.TypeSwitchCase), map[string]any{
		"consequent": []*estree.Node{testutil.ExprStatement(testutil.Ident("x"))},
	})
	sw := testutil.Node(string(estree.TypeSwitchStatement), map[string]any{
		"discriminant": testutil.Ident("v"),
		"cases":        []*estree.Node{caseA, def},
	})
	out := mustRender(t, testutil.Program(sw))
	want := "switch (v) {\ncase 1:\n\tbreak;\ndefault:\n\tx;\n}\n"
	testutil.AssertEqual(t, want, out)
}

func TestTryCatchFinally(t *testing.T) {
	block := testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}})
	handler := testutil.Node(string(estree.TypeCatchClause), map[string]any{
		"param": testutil.Ident("e"),
		"body":  testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	tryStmt := testutil.Node(string(estree.TypeTryStatement), map[string]any{
		"block": block, "handler": handler, "finalizer": block,
	})
	out := mustRender(t, testutil.Program(tryStmt))
	testutil.AssertEqual(t, "try {} catch (e) {} finally {}\n", out)
}
