package emitter

import (
	"strconv"

	"github.com/ludo-technologies/esgen/internal/estree"
)

func formatIdentifier(st *State, n *estree.Node) {
	st.Write(n.Str("name"))
}

func formatThisExpression(st *State, n *estree.Node) {
	st.Write("this")
}

func formatSuper(st *State, n *estree.Node) {
	st.Write("super")
}

// formatLiteral writes the literal's `raw` text verbatim when present
// (preserving the source author's numeric/string notation exactly), and
// falls back to re-deriving text from `value` otherwise. A `regex`
// attribute without `raw` is re-synthesized as `new RegExp(pattern,
// flags)` — an intentional AST-round-trip trade-off, since a bare
// literal cannot represent a regex without either field.
func formatLiteral(st *State, n *estree.Node) {
	if raw := n.StrOr("raw", ""); raw != "" {
		st.Write(raw)
		return
	}

	if n.Has("regex") {
		regex := n.Child("regex")
		st.Write("new RegExp(")
		st.Write(strconv.Quote(regex.Str("pattern")))
		if flags := regex.StrOr("flags", ""); flags != "" {
			st.Write(", " + strconv.Quote(flags))
		}
		st.Write(")")
		return
	}

	v := n.Value()
	switch val := v.(type) {
	case nil:
		st.Write("null")
	case bool:
		if val {
			st.Write("true")
		} else {
			st.Write("false")
		}
	case string:
		st.Write(strconv.Quote(val))
	case float64:
		st.Write(strconv.FormatFloat(val, 'g', -1, 64))
	default:
		panic(&estree.MalformedNodeError{NodeType: n.Type, Attr: "value", Reason: "has an unsupported literal type"})
	}
}

func formatTemplateElement(st *State, n *estree.Node) {
	st.Write(n.Str("raw"))
}

func formatTemplateLiteral(st *State, n *estree.Node) {
	quasis := n.Children("quasis")
	exprs := n.Children("expressions")
	st.Write("`")
	for i, q := range quasis {
		st.Write(q.Str("raw"))
		if i < len(exprs) {
			st.Write("${")
			st.Dispatch(exprs[i])
			st.Write("}")
		}
	}
	st.Write("`")
}

func formatTaggedTemplateExpression(st *State, n *estree.Node) {
	tag := n.Child("tag")
	wrap := needsParens(n, "tag", tag)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(tag)
	if wrap {
		st.Write(")")
	}
	st.Dispatch(n.Child("quasi"))
}

// formatArrayExpression also serves ArrayPattern: both are
// `[ elem, elem, ... ]` with holes represented as a nil element.
func formatArrayExpression(st *State, n *estree.Node) {
	writeSequence(st, n.Children("elements"), "[", "]")
}

func formatObjectExpression(st *State, n *estree.Node) {
	props := n.Children("properties")
	if len(props) == 0 {
		st.Write("{}")
		return
	}
	st.Write("{")
	st.Write(st.lineEnd)
	st.WithIndent(func() {
		for i, p := range props {
			st.WriteIndent()
			st.Dispatch(p)
			if i < len(props)-1 {
				st.Write(",")
			}
			st.Write(st.lineEnd)
		}
	})
	st.WriteIndent()
	st.Write("}")
}

// formatObjectPattern writes a destructuring pattern inline, unlike its
// ObjectExpression sibling which breaks a non-empty object onto
// multiple lines;
// destructuring targets are short enough in practice that a multi-line
// layout would only hurt readability, and nothing in the grammar
// requires the break.
func formatObjectPattern(st *State, n *estree.Node) {
	props := n.Children("properties")
	st.Write("{ ")
	for i, p := range props {
		if i > 0 {
			st.Write(", ")
		}
		st.Dispatch(p)
	}
	if len(props) > 0 {
		st.Write(" ")
	}
	st.Write("}")
}

func formatProperty(st *State, n *estree.Node) {
	kind := n.StrOr("kind", "init")
	value := n.Child("value")

	if kind == "get" || kind == "set" {
		st.Write(kind + " ")
		writePropertyKey(st, n)
		writeParamList(st, value.Children("params"))
		st.Write(" ")
		st.Dispatch(value.Child("body"))
		return
	}

	if n.Bool("method") {
		if value.Bool("async") {
			st.Write("async ")
		}
		if value.Bool("generator") {
			st.Write("*")
		}
		writePropertyKey(st, n)
		writeParamList(st, value.Children("params"))
		st.Write(" ")
		st.Dispatch(value.Child("body"))
		return
	}

	if n.Bool("shorthand") {
		st.Dispatch(value)
		return
	}

	writePropertyKey(st, n)
	st.Write(": ")
	wrap := needsParens(n, "value", value)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(value)
	if wrap {
		st.Write(")")
	}
}

func writePropertyKey(st *State, n *estree.Node) {
	if n.Bool("computed") {
		st.Write("[")
		st.Dispatch(n.Child("key"))
		st.Write("]")
		return
	}
	st.Dispatch(n.Child("key"))
}

func formatAssignmentPattern(st *State, n *estree.Node) {
	st.Dispatch(n.Child("left"))
	st.Write(" = ")
	st.Dispatch(n.Child("right"))
}

// formatRestElement also serves SpreadElement: both print
// `...argument`, differing only in pattern vs. expression position.
func formatRestElement(st *State, n *estree.Node) {
	st.Write("...")
	st.Dispatch(n.Child("argument"))
}

func formatUnaryExpression(st *State, n *estree.Node) {
	op := n.Str("operator")
	st.Write(op)
	if len(op) > 1 {
		st.Write(" ")
	}
	arg := n.Child("argument")
	wrap := needsParens(n, "argument", arg)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(arg)
	if wrap {
		st.Write(")")
	}
}

func formatUpdateExpression(st *State, n *estree.Node) {
	op := n.Str("operator")
	arg := n.Child("argument")
	wrap := needsParens(n, "argument", arg)
	if n.Bool("prefix") {
		st.Write(op)
		if wrap {
			st.Write("(")
		}
		st.Dispatch(arg)
		if wrap {
			st.Write(")")
		}
		return
	}
	if wrap {
		st.Write("(")
	}
	st.Dispatch(arg)
	if wrap {
		st.Write(")")
	}
	st.Write(op)
}

// formatBinaryExpression also serves LogicalExpression: both are
// `left OP right` with identical parenthesization rules. The `in`
// operator additionally self-parenthesizes the whole expression when
// st.noIn is set, since it would otherwise be ambiguous with the
// enclosing `for (... in ...)` keyword; self-wrapping clears noIn for
// both children, since the added parens already resolve the ambiguity
// for anything nested inside them.
func formatBinaryExpression(st *State, n *estree.Node) {
	op := n.Str("operator")
	left := n.Child("left")
	right := n.Child("right")

	selfWrap := st.noIn && op == "in"
	if selfWrap {
		st.Write("(")
	}
	childNoIn := st.noIn && !selfWrap

	wrapLeft := needsParens(n, "left", left)
	if wrapLeft {
		st.Write("(")
	}
	st.WithNoIn(childNoIn && !wrapLeft, func() { st.Dispatch(left) })
	if wrapLeft {
		st.Write(")")
	}

	st.Write(" " + op + " ")

	wrapRight := needsParens(n, "right", right)
	if wrapRight {
		st.Write("(")
	}
	st.WithNoIn(childNoIn && !wrapRight, func() { st.Dispatch(right) })
	if wrapRight {
		st.Write(")")
	}

	if selfWrap {
		st.Write(")")
	}
}

func formatAssignmentExpression(st *State, n *estree.Node) {
	st.Dispatch(n.Child("left"))
	st.Write(" " + n.Str("operator") + " ")
	right := n.Child("right")
	wrap := needsParens(n, "right", right)
	if wrap {
		st.Write("(")
	}
	st.WithNoIn(st.noIn && !wrap, func() { st.Dispatch(right) })
	if wrap {
		st.Write(")")
	}
}

func formatConditionalExpression(st *State, n *estree.Node) {
	test := n.Child("test")
	cons := n.Child("consequent")
	alt := n.Child("alternate")

	wrapTest := needsParens(n, "test", test)
	if wrapTest {
		st.Write("(")
	}
	st.WithNoIn(st.noIn && !wrapTest, func() { st.Dispatch(test) })
	if wrapTest {
		st.Write(")")
	}

	st.Write(" ? ")

	wrapCons := needsParens(n, "consequent", cons)
	if wrapCons {
		st.Write("(")
	}
	st.WithNoIn(st.noIn && !wrapCons, func() { st.Dispatch(cons) })
	if wrapCons {
		st.Write(")")
	}

	st.Write(" : ")

	wrapAlt := needsParens(n, "alternate", alt)
	if wrapAlt {
		st.Write("(")
	}
	st.WithNoIn(st.noIn && !wrapAlt, func() { st.Dispatch(alt) })
	if wrapAlt {
		st.Write(")")
	}
}

func formatSequenceExpression(st *State, n *estree.Node) {
	writeSequence(st, n.Children("expressions"), "", "")
}

func formatCallExpression(st *State, n *estree.Node) {
	callee := n.Child("callee")
	wrap := needsParens(n, "callee", callee)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(callee)
	if wrap {
		st.Write(")")
	}
	if n.Bool("optional") {
		st.Write("?.")
	}
	writeArguments(st, n.Children("arguments"))
}

func formatNewExpression(st *State, n *estree.Node) {
	st.Write("new ")
	callee := n.Child("callee")
	wrap := needsParens(n, "callee", callee)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(callee)
	if wrap {
		st.Write(")")
	}
	writeArguments(st, n.Children("arguments"))
}

func writeArguments(st *State, args []*estree.Node) {
	writeSequence(st, args, "(", ")")
}

func formatMemberExpression(st *State, n *estree.Node) {
	obj := n.Child("object")
	wrap := needsParens(n, "object", obj)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(obj)
	if wrap {
		st.Write(")")
	}

	optional := n.Bool("optional")
	if n.Bool("computed") {
		if optional {
			st.Write("?.")
		}
		st.Write("[")
		st.Dispatch(n.Child("property"))
		st.Write("]")
		return
	}
	if optional {
		st.Write("?.")
	} else {
		st.Write(".")
	}
	st.Dispatch(n.Child("property"))
}

func formatMetaProperty(st *State, n *estree.Node) {
	st.Dispatch(n.Child("meta"))
	st.Write(".")
	st.Dispatch(n.Child("property"))
}

func formatArrowFunctionExpression(st *State, n *estree.Node) {
	if n.Bool("async") {
		st.Write("async ")
	}
	params := n.Children("params")
	if len(params) == 1 && params[0].Type == string(estree.TypeIdentifier) {
		st.Dispatch(params[0])
	} else {
		writeParamList(st, params)
	}
	st.Write(" => ")

	body := n.Child("body")
	if n.Bool("expression") {
		wrap := needsParens(n, "body", body)
		if wrap {
			st.Write("(")
		}
		st.Dispatch(body)
		if wrap {
			st.Write(")")
		}
		return
	}
	st.Dispatch(body)
}

func formatYieldExpression(st *State, n *estree.Node) {
	st.Write("yield")
	if n.Bool("delegate") {
		st.Write("*")
	}
	if arg := n.ChildOrNil("argument"); arg != nil {
		st.Write(" ")
		wrap := needsParens(n, "argument", arg)
		if wrap {
			st.Write("(")
		}
		st.Dispatch(arg)
		if wrap {
			st.Write(")")
		}
	}
}

func formatAwaitExpression(st *State, n *estree.Node) {
	st.Write("await ")
	arg := n.Child("argument")
	wrap := needsParens(n, "argument", arg)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(arg)
	if wrap {
		st.Write(")")
	}
}
