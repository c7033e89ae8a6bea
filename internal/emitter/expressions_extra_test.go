package emitter_test

import (
	"testing"

	"github.com/ludo-technologies/esgen/internal/estree"
	"github.com/ludo-technologies/esgen/internal/testutil"
)

func TestTemplateLiteralWithInterleavedExpressions(t *testing.T) {
	tpl := testutil.Node(string(estree.TypeTemplateLiteral), map[string]any{
		"quasis": []*estree.Node{
			testutil.Node(string(estree.TypeTemplateElement), map[string]any{"raw": "a "}),
			testutil.Node(string(estree.TypeTemplateElement), map[string]any{"raw": " b "}),
			testutil.Node(string(estree.TypeTemplateElement), map[string]any{"raw": " c"}),
		},
		"expressions": []*estree.Node{testutil.Ident("x"), testutil.Ident("y")},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(tpl)))
	testutil.AssertEqual(t, "`a ${x} b ${y} c`;\n", out)
}

func TestTaggedTemplateExpression(t *testing.T) {
	tpl := testutil.Node(string(estree.TypeTemplateLiteral), map[string]any{
		"quasis": []*estree.Node{
			testutil.Node(string(estree.TypeTemplateElement), map[string]any{"raw": "raw "}),
			testutil.Node(string(estree.TypeTemplateElement), map[string]any{"raw": ""}),
		},
		"expressions": []*estree.Node{testutil.Ident("v")},
	})
	tagged := testutil.Node(string(estree.TypeTaggedTemplateExpression), map[string]any{
		"tag": testutil.Ident("tag"), "quasi": tpl,
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(tagged)))
	testutil.AssertEqual(t, "tag`raw ${v}`;\n", out)
}

// A regex Literal missing `raw` cannot be represented as a bare literal
// and is re-synthesized as a `new RegExp(...)` call.
func TestRegexLiteralWithoutRawSynthesizesNewRegExp(t *testing.T) {
	lit := testutil.Node(string(estree.TypeLiteral), map[string]any{
		"regex": testutil.Node("", map[string]any{"pattern": "ab+c", "flags": "gi"}),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(lit)))
	testutil.AssertEqual(t, "new RegExp(\"ab+c\", \"gi\");\n", out)
}

func TestRegexLiteralWithoutRawOrFlagsOmitsFlagsArgument(t *testing.T) {
	lit := testutil.Node(string(estree.TypeLiteral), map[string]any{
		"regex": testutil.Node("", map[string]any{"pattern": "x"}),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(lit)))
	testutil.AssertEqual(t, "new RegExp(\"x\");\n", out)
}

func TestRegexLiteralPrefersRawWhenPresent(t *testing.T) {
	lit := testutil.Node(string(estree.TypeLiteral), map[string]any{
		"raw":   "/ab+c/gi",
		"regex": testutil.Node("", map[string]any{"pattern": "ab+c", "flags": "gi"}),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(lit)))
	testutil.AssertEqual(t, "/ab+c/gi;\n", out)
}

func TestSpreadElementInCallArguments(t *testing.T) {
	call := testutil.Node(string(estree.TypeCallExpression), map[string]any{
		"callee": testutil.Ident("f"),
		"arguments": []*estree.Node{
			testutil.Ident("a"),
			testutil.Node(string(estree.TypeSpreadElement), map[string]any{"argument": testutil.Ident("rest")}),
		},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(call)))
	testutil.AssertEqual(t, "f(a, ...rest);\n", out)
}

func TestSpreadElementInArrayLiteral(t *testing.T) {
	arr := testutil.Node(string(estree.TypeArrayExpression), map[string]any{
		"elements": []*estree.Node{
			testutil.Ident("a"),
			testutil.Node(string(estree.TypeSpreadElement), map[string]any{"argument": testutil.Ident("rest")}),
		},
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(arr)))
	testutil.AssertEqual(t, "[a, ...rest];\n", out)
}

func TestRestElementInFunctionParams(t *testing.T) {
	fn := testutil.Node(string(estree.TypeFunctionDeclaration), map[string]any{
		"id": testutil.Ident("f"),
		"params": []*estree.Node{
			testutil.Ident("a"),
			testutil.Node(string(estree.TypeRestElement), map[string]any{"argument": testutil.Ident("rest")}),
		},
		"body": testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	out := mustRender(t, testutil.Program(fn))
	testutil.AssertEqual(t, "function f(a, ...rest) {}\n", out)
}

func TestArrowFunctionSingleIdentParamExpressionBody(t *testing.T) {
	arrow := testutil.Node(string(estree.TypeArrowFunctionExpression), map[string]any{
		"params":     []*estree.Node{testutil.Ident("x")},
		"expression": true,
		"body":       testutil.Binary("*", testutil.Ident("x"), testutil.NumberLiteral(2, "2")),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(arrow)))
	testutil.AssertEqual(t, "x => x * 2;\n", out)
}

// An arrow function whose expression body is an object literal must
// wrap it, or `{` is misparsed as the start of a block body.
func TestArrowFunctionObjectLiteralBodyIsWrapped(t *testing.T) {
	obj := testutil.Node(string(estree.TypeObjectExpression), map[string]any{"properties": []*estree.Node{}})
	arrow := testutil.Node(string(estree.TypeArrowFunctionExpression), map[string]any{
		"params":     []*estree.Node{},
		"expression": true,
		"body":       obj,
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(arrow)))
	testutil.AssertEqual(t, "() => ({});\n", out)
}

func TestAsyncArrowFunctionWithBlockBody(t *testing.T) {
	arrow := testutil.Node(string(estree.TypeArrowFunctionExpression), map[string]any{
		"async":  true,
		"params": []*estree.Node{testutil.Ident("x")},
		"body":   testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(arrow)))
	testutil.AssertEqual(t, "async x => {};\n", out)
}

func TestYieldExpressionWithAndWithoutArgument(t *testing.T) {
	bare := testutil.Node(string(estree.TypeYieldExpression), map[string]any{})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(bare)))
	testutil.AssertEqual(t, "yield;\n", out)

	withArg := testutil.Node(string(estree.TypeYieldExpression), map[string]any{
		"argument": testutil.Ident("v"),
	})
	out = mustRender(t, testutil.Program(testutil.ExprStatement(withArg)))
	testutil.AssertEqual(t, "yield v;\n", out)

	delegated := testutil.Node(string(estree.TypeYieldExpression), map[string]any{
		"delegate": true,
		"argument": testutil.Ident("gen"),
	})
	out = mustRender(t, testutil.Program(testutil.ExprStatement(delegated)))
	testutil.AssertEqual(t, "yield* gen;\n", out)
}

func TestAwaitExpressionWrapsLowerPrecedenceArgument(t *testing.T) {
	await := testutil.Node(string(estree.TypeAwaitExpression), map[string]any{
		"argument": testutil.Node(string(estree.TypeConditionalExpression), map[string]any{
			"test": testutil.Ident("c"), "consequent": testutil.Ident("a"), "alternate": testutil.Ident("b"),
		}),
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(await)))
	testutil.AssertEqual(t, "await (c ? a : b);\n", out)
}

func TestDeeplyNestedConditionalExpressions(t *testing.T) {
	innermost := testutil.Node(string(estree.TypeConditionalExpression), map[string]any{
		"test": testutil.Ident("c"), "consequent": testutil.Ident("d"), "alternate": testutil.Ident("e"),
	})
	nested := testutil.Node(string(estree.TypeConditionalExpression), map[string]any{
		"test": testutil.Ident("b"), "consequent": innermost, "alternate": testutil.Ident("f"),
	})
	outer := testutil.Node(string(estree.TypeConditionalExpression), map[string]any{
		"test": testutil.Ident("a"), "consequent": testutil.Ident("g"), "alternate": nested,
	})
	out := mustRender(t, testutil.Program(testutil.ExprStatement(outer)))
	testutil.AssertEqual(t, "a ? g : b ? c ? d : e : f;\n", out)
}

func TestObjectPatternWithDefaultsAndRestInParams(t *testing.T) {
	pattern := testutil.Node(string(estree.TypeObjectPattern), map[string]any{
		"properties": []*estree.Node{
			testutil.Node(string(estree.TypeProperty), map[string]any{
				"key": testutil.Ident("a"), "value": testutil.Ident("a"),
				"kind": "init", "shorthand": true, "computed": false,
			}),
			testutil.Node(string(estree.TypeProperty), map[string]any{
				"key": testutil.Ident("b"),
				"value": testutil.Node(string(estree.TypeAssignmentPattern), map[string]any{
					"left": testutil.Ident("b"), "right": testutil.NumberLiteral(1, "1"),
				}),
				"kind": "init", "shorthand": false, "computed": false,
			}),
			testutil.Node(string(estree.TypeRestElement), map[string]any{"argument": testutil.Ident("rest")}),
		},
	})
	fn := testutil.Node(string(estree.TypeFunctionDeclaration), map[string]any{
		"id":     testutil.Ident("f"),
		"params": []*estree.Node{pattern},
		"body":   testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	out := mustRender(t, testutil.Program(fn))
	testutil.AssertEqual(t, "function f({ a, b: b = 1, ...rest }) {}\n", out)
}

func TestArrayPatternWithDefaultAndHole(t *testing.T) {
	pattern := testutil.Node(string(estree.TypeArrayPattern), map[string]any{
		"elements": []*estree.Node{
			testutil.Ident("a"),
			nil,
			testutil.Node(string(estree.TypeAssignmentPattern), map[string]any{
				"left": testutil.Ident("c"), "right": testutil.NumberLiteral(3, "3"),
			}),
		},
	})
	fn := testutil.Node(string(estree.TypeFunctionDeclaration), map[string]any{
		"id":     testutil.Ident("f"),
		"params": []*estree.Node{pattern},
		"body":   testutil.Node(string(estree.TypeBlockStatement), map[string]any{"body": []*estree.Node{}}),
	})
	out := mustRender(t, testutil.Program(fn))
	testutil.AssertEqual(t, "function f([a, , c = 3]) {}\n", out)
}
