package emitter_test

import (
	"testing"

	"github.com/ludo-technologies/esgen/internal/emitter"
	"github.com/ludo-technologies/esgen/internal/estree"
	"github.com/ludo-technologies/esgen/internal/testutil"
)

func TestCommentsSuppressedByDefault(t *testing.T) {
	id := testutil.Ident("x")
	id.Attrs["comments"] = []estree.Comment{{Type: "Line", Value: " keep"}}
	out, err := emitter.Render(testutil.Program(testutil.ExprStatement(id)), emitter.Options{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "x;\n", out)
}

func TestLeadingLineCommentEmittedWhenEnabled(t *testing.T) {
	id := testutil.Ident("x")
	id.Attrs["comments"] = []estree.Comment{{Type: "Line", Value: " keep"}}
	out, err := emitter.Render(testutil.Program(testutil.ExprStatement(id)), emitter.Options{Comments: true})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "// keep\nx;\n", out)
}

func TestTrailingBlockCommentEmittedWhenEnabled(t *testing.T) {
	id := testutil.Ident("x")
	id.Attrs["trailingComments"] = []estree.Comment{{Type: "Block", Value: " note "}}
	out, err := emitter.Render(testutil.Program(testutil.ExprStatement(id)), emitter.Options{Comments: true})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "x /* note */;\n", out)
}
