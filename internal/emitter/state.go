package emitter

import (
	"io"
	"strings"

	"github.com/ludo-technologies/esgen/internal/estree"
)

// Sink accepts generated text in emission order. Implementations commit a
// write synchronously; there is no partial-write or backpressure contract.
// Sinks are owned by the caller — the emitter never closes or flushes one.
type Sink interface {
	Write(s string) error
}

// StringSink buffers emitted text in memory. It is the sink Render uses
// when the caller supplies no Options.Output.
type StringSink struct {
	b strings.Builder
}

// NewStringSink creates an empty in-memory sink.
func NewStringSink() *StringSink { return &StringSink{} }

func (s *StringSink) Write(str string) error {
	s.b.WriteString(str)
	return nil
}

// String returns everything written so far.
func (s *StringSink) String() string { return s.b.String() }

// WriterSink adapts any io.Writer into a Sink.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) Write(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// SourceMapSink receives generated-position callbacks as text is
// committed. See internal/sourcemap for the concrete implementation;
// the emitter only depends on this narrow interface.
type SourceMapSink interface {
	Add(sourceFile string, originalLine, originalCol int, generatedLine, generatedCol int)
}

// Table maps an ESTree node Type string to the formatter responsible for
// it. A zero Table is empty; use DefaultTable to get the built-in
// formatters.
type Table map[string]Formatter

// Formatter writes one node's textual form to st, recursing into
// children through st.Dispatch so that overlay tables (Options.Overlay)
// are observed at every depth.
type Formatter func(st *State, n *estree.Node)

// State is the mutable emission-state record threaded through the
// traversal. Its fields stay unexported; callers interact with it only
// through the Formatter signature and the scoped helpers below, which is
// what keeps every formatter's entry/exit balanced.
type State struct {
	sink                Sink
	indent              string
	lineEnd             string
	indentLevel         int
	noTrailingSemicolon bool
	noIn                bool
	writeComments       bool
	table               Table
	sourceFile          string
}

// Write commits s to the sink, panicking with *sinkError on failure so
// that a single recover in Render can surface it without threading an
// error return through every formatter (the same posture fmt and
// text/template take for deeply recursive printers).
func (st *State) Write(s string) {
	if err := st.sink.Write(s); err != nil {
		panic(&sinkError{err: err})
	}
}

// WriteIndent writes the current indent level's worth of indent unit.
func (st *State) WriteIndent() {
	if st.indentLevel > 0 {
		st.Write(strings.Repeat(st.indent, st.indentLevel))
	}
}

// Dispatch looks up n's formatter in the active table and invokes it.
// Every recursive call in every formatter must go through Dispatch
// (never call a formatter directly) so overlay tables apply at every
// depth.
func (st *State) Dispatch(n *estree.Node) {
	f, ok := st.table[n.Type]
	if !ok {
		panic(&UnsupportedNodeError{Kind: n.Type})
	}
	writeLeadingComments(st, n.Comments("comments"))
	f(st, n)
	writeTrailingComments(st, n.Comments("trailingComments"))
}

// WithIndent runs fn with indentLevel incremented by one, restoring it
// on every exit path including panics.
func (st *State) WithIndent(fn func()) {
	st.indentLevel++
	defer func() { st.indentLevel-- }()
	fn()
}

// SuppressSemicolon runs fn with noTrailingSemicolon forced true,
// restoring the previous value afterwards. Used by for-loop initializer
// emission, where the enclosing `for (...)` head owns the semicolons.
func (st *State) SuppressSemicolon(fn func()) {
	prev := st.noTrailingSemicolon
	st.noTrailingSemicolon = true
	defer func() { st.noTrailingSemicolon = prev }()
	fn()
}

// WithNoIn runs fn with the for-loop-initializer "in" restriction set to
// value, restoring the previous value afterwards. A bare `in` operator
// is ambiguous with the `for (... in ...)` keyword when it appears
// unparenthesized in a for-loop initializer, so formatBinaryExpression
// consults this flag to self-parenthesize; constructs with their own
// delimiters (call arguments, array elements, ...) clear it back to
// false since the ambiguity cannot reach through them.
func (st *State) WithNoIn(value bool, fn func()) {
	prev := st.noIn
	st.noIn = value
	defer func() { st.noIn = prev }()
	fn()
}

// sinkError wraps a Sink.Write failure so it can cross a panic/recover
// boundary without losing its type; Render unwraps and returns it
// unchanged.
type sinkError struct{ err error }

func (e *sinkError) Error() string { return e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }
