// Package emitter implements the AST-driven code emitter: a dispatch
// table keyed by ESTree node kind, a precedence oracle governing
// parenthesization, and the emission-state record threaded through a
// single-pass, depth-first, left-to-right traversal.
package emitter

import (
	"github.com/ludo-technologies/esgen/internal/estree"
)

// Options configures a Render call.
type Options struct {
	// Indent is the unit repeated IndentLevel times per nesting depth.
	// Defaults to one tab.
	Indent string
	// LineEnd is written after every statement/line. Defaults to "\n".
	LineEnd string
	// IndentLevel is the starting indentation depth. Defaults to 0.
	IndentLevel int
	// Comments controls whether leading/trailing comments are emitted.
	Comments bool
	// Output, if set, makes Render write through to it instead of
	// buffering into the returned string.
	Output Sink
	// Overlay, if non-nil, is consulted before the default table: a
	// formatter present in Overlay for a kind replaces the built-in one,
	// letting callers customize or extend emission without forking the
	// package.
	Overlay Table
	// SourceMap, if set, receives a callback for every chunk committed
	// to the sink, reporting its generated (line, column).
	SourceMap SourceMapSink
	// SourceFile names the original file for SourceMap callbacks.
	SourceFile string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "\t"
	}
	if o.LineEnd == "" {
		o.LineEnd = "\n"
	}
	return o
}

// Render formats node as JavaScript source text per opts. Unknown node
// kinds and malformed nodes fail immediately with a structured error
// identifying the kind (and, for malformed nodes, the offending
// attribute); sink I/O failures propagate unchanged.
func Render(node *estree.Node, opts Options) (out string, err error) {
	opts = opts.withDefaults()

	sink := opts.Output
	var buf *StringSink
	if sink == nil {
		buf = NewStringSink()
		sink = buf
	}
	if opts.SourceMap != nil {
		sink = trackedSink{inner: sink, tracker: newPositionTracker(opts.SourceMap, opts.SourceFile)}
	}

	table := DefaultTable()
	for kind, f := range opts.Overlay {
		table[kind] = f
	}

	st := &State{
		sink:          sink,
		indent:        opts.Indent,
		lineEnd:       opts.LineEnd,
		indentLevel:   opts.IndentLevel,
		writeComments: opts.Comments,
		table:         table,
		sourceFile:    opts.SourceFile,
	}

	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *UnsupportedNodeError:
				err = e
			case *estree.MalformedNodeError:
				err = e
			case *sinkError:
				err = e.Unwrap()
			default:
				panic(r)
			}
		}
	}()

	st.Dispatch(node)

	if buf != nil {
		return buf.String(), nil
	}
	return "", nil
}

// DefaultTable builds the built-in dispatch table, wiring the shared
// formatters that serve more than one node kind.
func DefaultTable() Table {
	t := Table{
		string(estree.TypeProgram):       formatProgram,
		string(estree.TypeBlockStatement): formatBlockStatement,
		string(estree.TypeClassBody):      formatBlockStatement,

		string(estree.TypeExpressionStatement): formatExpressionStatement,
		string(estree.TypeIfStatement):         formatIfStatement,
		string(estree.TypeForStatement):        formatForStatement,
		string(estree.TypeForInStatement):      formatForInStatement,
		string(estree.TypeForOfStatement):      formatForInStatement,
		string(estree.TypeWhileStatement):      formatWhileStatement,
		string(estree.TypeDoWhileStatement):    formatDoWhileStatement,
		string(estree.TypeSwitchStatement):     formatSwitchStatement,
		string(estree.TypeSwitchCase):          formatSwitchCase,
		string(estree.TypeTryStatement):        formatTryStatement,
		string(estree.TypeCatchClause):         formatCatchClause,
		string(estree.TypeReturnStatement):     formatReturnStatement,
		string(estree.TypeThrowStatement):      formatThrowStatement,
		string(estree.TypeBreakStatement):      formatBreakStatement,
		string(estree.TypeContinueStatement):   formatContinueStatement,
		string(estree.TypeLabeledStatement):    formatLabeledStatement,
		string(estree.TypeWithStatement):       formatWithStatement,
		string(estree.TypeEmptyStatement):      formatEmptyStatement,
		string(estree.TypeDebuggerStatement):   formatDebuggerStatement,
		string(estree.TypeVariableDeclaration): formatVariableDeclaration,
		string(estree.TypeVariableDeclarator):  formatVariableDeclarator,

		string(estree.TypeFunctionDeclaration):      formatFunctionDeclaration,
		string(estree.TypeFunctionExpression):        formatFunctionDeclaration,
		string(estree.TypeClassDeclaration):          formatClassDeclaration,
		string(estree.TypeClassExpression):           formatClassDeclaration,
		string(estree.TypeMethodDefinition):          formatMethodDefinition,
		string(estree.TypeImportDeclaration):         formatImportDeclaration,
		string(estree.TypeExportDefaultDeclaration):  formatExportDefaultDeclaration,
		string(estree.TypeExportNamedDeclaration):    formatExportNamedDeclaration,
		string(estree.TypeExportAllDeclaration):      formatExportAllDeclaration,

		string(estree.TypeIdentifier):              formatIdentifier,
		string(estree.TypeLiteral):                 formatLiteral,
		string(estree.TypeTemplateElement):          formatTemplateElement,
		string(estree.TypeTemplateLiteral):          formatTemplateLiteral,
		string(estree.TypeTaggedTemplateExpression): formatTaggedTemplateExpression,
		string(estree.TypeThisExpression):           formatThisExpression,
		string(estree.TypeSuper):                    formatSuper,
		string(estree.TypeArrayExpression):          formatArrayExpression,
		string(estree.TypeArrayPattern):              formatArrayExpression,
		string(estree.TypeObjectExpression):          formatObjectExpression,
		string(estree.TypeObjectPattern):             formatObjectPattern,
		string(estree.TypeProperty):                  formatProperty,
		string(estree.TypeAssignmentPattern):         formatAssignmentPattern,
		string(estree.TypeRestElement):                formatRestElement,
		string(estree.TypeSpreadElement):              formatRestElement,
		string(estree.TypeUnaryExpression):            formatUnaryExpression,
		string(estree.TypeUpdateExpression):           formatUpdateExpression,
		string(estree.TypeBinaryExpression):           formatBinaryExpression,
		string(estree.TypeLogicalExpression):          formatBinaryExpression,
		string(estree.TypeAssignmentExpression):       formatAssignmentExpression,
		string(estree.TypeConditionalExpression):      formatConditionalExpression,
		string(estree.TypeSequenceExpression):         formatSequenceExpression,
		string(estree.TypeCallExpression):             formatCallExpression,
		string(estree.TypeNewExpression):              formatNewExpression,
		string(estree.TypeMemberExpression):           formatMemberExpression,
		string(estree.TypeMetaProperty):                formatMetaProperty,
		string(estree.TypeArrowFunctionExpression):     formatArrowFunctionExpression,
		string(estree.TypeYieldExpression):             formatYieldExpression,
		string(estree.TypeAwaitExpression):             formatAwaitExpression,
	}
	return t
}
