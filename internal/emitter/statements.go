package emitter

import "github.com/ludo-technologies/esgen/internal/estree"

// formatProgram writes each top-level statement in order, terminated by
// the line terminator.
func formatProgram(st *State, n *estree.Node) {
	body := n.Children("body")
	for i, stmt := range body {
		if i > 0 {
			st.Write(st.lineEnd)
		}
		st.WriteIndent()
		st.Dispatch(stmt)
	}
	if len(body) > 0 {
		st.Write(st.lineEnd)
	}
}

// formatBlockStatement writes `{ ... }`, indenting its body by one
// level. Also serves as the ClassBody formatter: the two kinds share a
// formatter since both are brace-delimited statement/member lists.
func formatBlockStatement(st *State, n *estree.Node) {
	body := n.Children("body")
	if len(body) == 0 {
		st.Write("{}")
		return
	}
	st.Write("{")
	st.Write(st.lineEnd)
	st.WithIndent(func() {
		for _, stmt := range body {
			st.WriteIndent()
			st.Dispatch(stmt)
			st.Write(st.lineEnd)
		}
	})
	st.WriteIndent()
	st.Write("}")
}

// formatExpressionStatement writes the expression, wrapping it in
// parentheses when its leading token would otherwise be misparsed,
// followed by a semicolon unless suppressed.
func formatExpressionStatement(st *State, n *estree.Node) {
	expr := n.Child("expression")
	wrap := needsParens(n, "expression", expr)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(expr)
	if wrap {
		st.Write(")")
	}
	writeSemicolon(st)
}

func writeSemicolon(st *State) {
	if !st.noTrailingSemicolon {
		st.Write(";")
	}
}

func formatIfStatement(st *State, n *estree.Node) {
	st.Write("if (")
	st.Dispatch(n.Child("test"))
	st.Write(")")
	writeClauseBody(st, n.Child("consequent"))
	if alt := n.ChildOrNil("alternate"); alt != nil {
		if consequentIsBlock(n.Child("consequent")) {
			st.Write(" else")
		} else {
			st.Write(st.lineEnd)
			st.WriteIndent()
			st.Write("else")
		}
		if alt.Type == string(estree.TypeIfStatement) {
			st.Write(" ")
			st.Dispatch(alt)
		} else {
			writeClauseBody(st, alt)
		}
	}
}

func consequentIsBlock(n *estree.Node) bool {
	return n.Type == string(estree.TypeBlockStatement)
}

// writeClauseBody writes the body of an if/for/while clause, owning the
// separator between the clause head and its body: a space before an
// inline brace block, or the line terminator plus one indent level
// before a bare statement.
func writeClauseBody(st *State, body *estree.Node) {
	if body.Type == string(estree.TypeBlockStatement) {
		st.Write(" ")
		st.Dispatch(body)
		return
	}
	if body.Type == string(estree.TypeEmptyStatement) {
		st.Write(";")
		return
	}
	st.Write(st.lineEnd)
	st.WithIndent(func() {
		st.WriteIndent()
		st.Dispatch(body)
	})
}

func formatForStatement(st *State, n *estree.Node) {
	st.Write("for (")
	st.SuppressSemicolon(func() {
		if init := n.ChildOrNil("init"); init != nil {
			st.WithNoIn(true, func() {
				st.Dispatch(init)
			})
		}
	})
	st.Write("; ")
	if test := n.ChildOrNil("test"); test != nil {
		st.Dispatch(test)
	}
	st.Write("; ")
	if update := n.ChildOrNil("update"); update != nil {
		st.Dispatch(update)
	}
	st.Write(")")
	writeClauseBody(st, n.Child("body"))
}

// formatForInStatement also serves ForOfStatement: both share the
// `for (LEFT key in|of RIGHT) BODY` shape, differing only in the
// keyword and an optional `await`.
func formatForInStatement(st *State, n *estree.Node) {
	st.Write("for ")
	if n.Type == string(estree.TypeForOfStatement) && n.Bool("await") {
		st.Write("await ")
	}
	st.Write("(")
	st.Dispatch(n.Child("left"))
	if n.Type == string(estree.TypeForOfStatement) {
		st.Write(" of ")
	} else {
		st.Write(" in ")
	}
	st.Dispatch(n.Child("right"))
	st.Write(")")
	writeClauseBody(st, n.Child("body"))
}

func formatWhileStatement(st *State, n *estree.Node) {
	st.Write("while (")
	st.Dispatch(n.Child("test"))
	st.Write(")")
	writeClauseBody(st, n.Child("body"))
}

func formatDoWhileStatement(st *State, n *estree.Node) {
	st.Write("do ")
	body := n.Child("body")
	if body.Type == string(estree.TypeBlockStatement) {
		st.Dispatch(body)
		st.Write(" ")
	} else {
		st.Write(st.lineEnd)
		st.WithIndent(func() {
			st.WriteIndent()
			st.Dispatch(body)
		})
		st.Write(st.lineEnd)
		st.WriteIndent()
	}
	st.Write("while (")
	st.Dispatch(n.Child("test"))
	st.Write(")")
	writeSemicolon(st)
}

func formatSwitchStatement(st *State, n *estree.Node) {
	st.Write("switch (")
	st.Dispatch(n.Child("discriminant"))
	st.Write(") {")
	st.Write(st.lineEnd)
	for _, c := range n.Children("cases") {
		st.WriteIndent()
		st.Dispatch(c)
	}
	st.WriteIndent()
	st.Write("}")
}

func formatSwitchCase(st *State, n *estree.Node) {
	if test := n.ChildOrNil("test"); test != nil {
		st.Write("case ")
		st.Dispatch(test)
		st.Write(":")
	} else {
		st.Write("default:")
	}
	cons := n.Children("consequent")
	if len(cons) == 0 {
		st.Write(st.lineEnd)
		return
	}
	if len(cons) == 1 && cons[0].Type == string(estree.TypeBlockStatement) {
		st.Write(" ")
		st.Dispatch(cons[0])
		st.Write(st.lineEnd)
		return
	}
	st.Write(st.lineEnd)
	st.WithIndent(func() {
		for _, stmt := range cons {
			st.WriteIndent()
			st.Dispatch(stmt)
			st.Write(st.lineEnd)
		}
	})
}

func formatTryStatement(st *State, n *estree.Node) {
	st.Write("try ")
	st.Dispatch(n.Child("block"))
	if handler := n.ChildOrNil("handler"); handler != nil {
		st.Write(" ")
		st.Dispatch(handler)
	}
	if fin := n.ChildOrNil("finalizer"); fin != nil {
		st.Write(" finally ")
		st.Dispatch(fin)
	}
}

func formatCatchClause(st *State, n *estree.Node) {
	st.Write("catch ")
	if param := n.ChildOrNil("param"); param != nil {
		st.Write("(")
		st.Dispatch(param)
		st.Write(") ")
	}
	st.Dispatch(n.Child("body"))
}

func formatReturnStatement(st *State, n *estree.Node) {
	st.Write("return")
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
	writeSemicolon(st)
}

func formatThrowStatement(st *State, n *estree.Node) {
	st.Write("throw ")
	arg := n.Child("argument")
	wrap := needsParens(n, "argument", arg)
	if wrap {
		st.Write("(")
	}
	st.Dispatch(arg)
	if wrap {
		st.Write(")")
	}
	writeSemicolon(st)
}

func formatBreakStatement(st *State, n *estree.Node) {
	st.Write("break")
	if label := n.ChildOrNil("label"); label != nil {
		st.Write(" ")
		st.Dispatch(label)
	}
	writeSemicolon(st)
}

func formatContinueStatement(st *State, n *estree.Node) {
	st.Write("continue")
	if label := n.ChildOrNil("label"); label != nil {
		st.Write(" ")
		st.Dispatch(label)
	}
	writeSemicolon(st)
}

func formatLabeledStatement(st *State, n *estree.Node) {
	st.Dispatch(n.Child("label"))
	st.Write(": ")
	st.Dispatch(n.Child("body"))
}

func formatWithStatement(st *State, n *estree.Node) {
	st.Write("with (")
	st.Dispatch(n.Child("object"))
	st.Write(")")
	writeClauseBody(st, n.Child("body"))
}

func formatEmptyStatement(st *State, n *estree.Node) {
	st.Write(";")
}

func formatDebuggerStatement(st *State, n *estree.Node) {
	st.Write("debugger")
	writeSemicolon(st)
}

func formatVariableDeclaration(st *State, n *estree.Node) {
	st.Write(n.Str("kind"))
	st.Write(" ")
	decls := n.Children("declarations")
	for i, d := range decls {
		if i > 0 {
			st.Write(", ")
		}
		st.Dispatch(d)
	}
	writeSemicolon(st)
}

func formatVariableDeclarator(st *State, n *estree.Node) {
	st.Dispatch(n.Child("id"))
	if init := n.ChildOrNil("init"); init != nil {
		st.Write(" = ")
		wrap := needsParens(n, "init", init)
		if wrap {
			st.Write("(")
		}
		st.WithNoIn(st.noIn && !wrap, func() { st.Dispatch(init) })
		if wrap {
			st.Write(")")
		}
	}
}
