package emitter

import (
	"strings"

	"github.com/ludo-technologies/esgen/internal/estree"
)

// writeLeadingComments emits each comment attached to a node before the
// node's own text, one per line for line comments and re-indented for
// block comments. It is a no-op when st.writeComments is false.
func writeLeadingComments(st *State, comments []estree.Comment) {
	if !st.writeComments {
		return
	}
	for _, c := range comments {
		writeComment(st, c)
		st.Write(st.lineEnd)
		st.WriteIndent()
	}
}

// writeTrailingComments emits comments that follow a node on the same
// logical line, space-separated, with no indent of their own.
func writeTrailingComments(st *State, comments []estree.Comment) {
	if !st.writeComments {
		return
	}
	for _, c := range comments {
		st.Write(" ")
		writeComment(st, c)
	}
}

func writeComment(st *State, c estree.Comment) {
	if c.IsLine() {
		st.Write("//" + c.Value)
		return
	}
	st.Write("/*" + reindentBlockComment(c.Value, strings.Repeat(st.indent, st.indentLevel)) + "*/")
}

// reindentBlockComment reworks a block comment's interior whitespace so
// it lines up under the emitter's own indentation rather than whatever
// column it held in the original source.
//
// Algorithm: find the first newline in body. The run of whitespace that
// immediately follows it is the original indent prefix P. Split the
// remainder of body on "\n"+P and rejoin on "\n"+indent, leaving the
// first line (before the first newline) untouched.
func reindentBlockComment(body, indent string) string {
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return body
	}
	first := body[:nl]
	rest := body[nl+1:]

	prefixEnd := 0
	for prefixEnd < len(rest) && (rest[prefixEnd] == ' ' || rest[prefixEnd] == '\t') {
		prefixEnd++
	}
	prefix := rest[:prefixEnd]

	lines := strings.Split(rest[prefixEnd:], "\n"+prefix)
	return first + "\n" + indent + strings.Join(lines, "\n"+indent)
}
