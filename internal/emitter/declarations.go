package emitter

import "github.com/ludo-technologies/esgen/internal/estree"

// formatFunctionDeclaration also serves FunctionExpression: both share
// `[async] function[*] [name](params) { body }`, differing
// only in whether id may be absent and in statement- vs expression-
// position semicolon/parens handling, which callers control.
func formatFunctionDeclaration(st *State, n *estree.Node) {
	if n.Bool("async") {
		st.Write("async ")
	}
	st.Write("function")
	if n.Bool("generator") {
		st.Write("*")
	}
	if id := n.ChildOrNil("id"); id != nil {
		st.Write(" ")
		st.Dispatch(id)
	} else {
		st.Write(" ")
	}
	writeParamList(st, n.Children("params"))
	st.Write(" ")
	st.Dispatch(n.Child("body"))
}

func writeParamList(st *State, params []*estree.Node) {
	writeSequence(st, params, "(", ")")
}

// formatClassDeclaration also serves ClassExpression: a ClassExpression
// formatter simply delegates here, since the grammar is
// identical modulo id being optional in both positions anyway.
func formatClassDeclaration(st *State, n *estree.Node) {
	st.Write("class")
	if id := n.ChildOrNil("id"); id != nil {
		st.Write(" ")
		st.Dispatch(id)
	}
	if super := n.ChildOrNil("superClass"); super != nil {
		st.Write(" extends ")
		st.Dispatch(super)
	}
	st.Write(" ")
	st.Dispatch(n.Child("body"))
}

func formatMethodDefinition(st *State, n *estree.Node) {
	if n.Bool("static") {
		st.Write("static ")
	}
	kind := n.StrOr("kind", "method")
	switch kind {
	case "get", "set":
		st.Write(kind + " ")
	}
	value := n.Child("value")
	if value.Bool("async") {
		st.Write("async ")
	}
	if value.Bool("generator") {
		st.Write("*")
	}
	if n.Bool("computed") {
		st.Write("[")
		st.Dispatch(n.Child("key"))
		st.Write("]")
	} else {
		st.Dispatch(n.Child("key"))
	}
	writeParamList(st, value.Children("params"))
	st.Write(" ")
	st.Dispatch(value.Child("body"))
}

func formatImportDeclaration(st *State, n *estree.Node) {
	st.Write("import ")
	specs := n.Children("specifiers")
	if len(specs) == 0 {
		st.Dispatch(n.Child("source"))
		writeSemicolon(st)
		return
	}

	var def, ns *estree.Node
	var named []*estree.Node
	for _, s := range specs {
		switch s.Type {
		case string(estree.TypeImportDefaultSpecifier):
			def = s
		case string(estree.TypeImportNamespaceSpecifier):
			ns = s
		default:
			named = append(named, s)
		}
	}

	first := true
	writeComma := func() {
		if !first {
			st.Write(", ")
		}
		first = false
	}
	if def != nil {
		writeComma()
		st.Dispatch(def.Child("local"))
	}
	if ns != nil {
		writeComma()
		st.Write("* as ")
		st.Dispatch(ns.Child("local"))
	}
	if len(named) > 0 {
		writeComma()
		st.Write("{ ")
		for i, s := range named {
			if i > 0 {
				st.Write(", ")
			}
			writeImportSpecifier(st, s)
		}
		st.Write(" }")
	}

	st.Write(" from ")
	st.Dispatch(n.Child("source"))
	writeSemicolon(st)
}

func writeImportSpecifier(st *State, n *estree.Node) {
	imported := n.Child("imported")
	local := n.Child("local")
	st.Dispatch(imported)
	if imported.Str("name") != local.Str("name") {
		st.Write(" as ")
		st.Dispatch(local)
	}
}

func formatExportDefaultDeclaration(st *State, n *estree.Node) {
	st.Write("export default ")
	decl := n.Child("declaration")
	st.Dispatch(decl)
	switch decl.Type {
	case string(estree.TypeFunctionDeclaration), string(estree.TypeClassDeclaration):
	default:
		writeSemicolon(st)
	}
}

func formatExportNamedDeclaration(st *State, n *estree.Node) {
	st.Write("export ")
	if decl := n.ChildOrNil("declaration"); decl != nil {
		st.Dispatch(decl)
		return
	}
	st.Write("{ ")
	specs := n.Children("specifiers")
	for i, s := range specs {
		if i > 0 {
			st.Write(", ")
		}
		local := s.Child("local")
		exported := s.Child("exported")
		st.Dispatch(local)
		if local.Str("name") != exported.Str("name") {
			st.Write(" as ")
			st.Dispatch(exported)
		}
	}
	st.Write(" }")
	if source := n.ChildOrNil("source"); source != nil {
		st.Write(" from ")
		st.Dispatch(source)
	}
	writeSemicolon(st)
}

func formatExportAllDeclaration(st *State, n *estree.Node) {
	st.Write("export *")
	if exported := n.ChildOrNil("exported"); exported != nil {
		st.Write(" as ")
		st.Dispatch(exported)
	}
	st.Write(" from ")
	st.Dispatch(n.Child("source"))
	writeSemicolon(st)
}
