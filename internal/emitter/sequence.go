package emitter

import "github.com/ludo-technologies/esgen/internal/estree"

// writeSequence writes a comma-separated, optionally parenthesized list
// of children dispatched through st.Dispatch, used by call arguments,
// array literals, parameter lists and SequenceExpression itself. A
// SequenceExpression item is wrapped in its own parens, since its
// internal commas would otherwise merge into the list's own commas and
// silently change the argument/element count on re-parse. When open is
// a real delimiter, it also resets the for-loop-initializer `in`
// restriction for its items, since the delimiter itself resolves the
// ambiguity that restriction exists for.
func writeSequence(st *State, items []*estree.Node, open, close string) {
	st.Write(open)
	resetNoIn := open != ""
	for i, item := range items {
		if i > 0 {
			st.Write(", ")
		}
		if item == nil {
			continue
		}
		wrap := item.Type == string(estree.TypeSequenceExpression)
		if wrap {
			st.Write("(")
		}
		dispatch := func() { st.Dispatch(item) }
		if resetNoIn {
			st.WithNoIn(false, dispatch)
		} else {
			dispatch()
		}
		if wrap {
			st.Write(")")
		}
	}
	st.Write(close)
}
