package emitter

import "github.com/ludo-technologies/esgen/internal/estree"

// Precedence levels, lowest to highest. Values are gaps of 2 so a
// right-associative operator (exponentiation) can claim the odd number
// between two levels without renumbering the table.
const (
	precSequence = iota * 2
	precAssignment
	precYield
	precConditional
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precCall
	precNew
	precMember
	precPrimary
)

// binaryPrecedence maps a BinaryExpression/LogicalExpression operator to
// its precedence level.
var binaryPrecedence = map[string]int{
	"??": precLogicalOr,
	"||": precLogicalOr,
	"&&": precLogicalAnd,
	"|":  precBitwiseOr,
	"^":  precBitwiseXor,
	"&":  precBitwiseAnd,
	"==": precEquality, "!=": precEquality, "===": precEquality, "!==": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"in": precRelational, "instanceof": precRelational,
	"<<": precShift, ">>": precShift, ">>>": precShift,
	"+": precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
	"**": precExponent,
}

// expressionPrecedence returns n's own precedence for the purpose of
// deciding whether a parent must wrap it in parentheses.
func expressionPrecedence(n *estree.Node) int {
	switch n.Type {
	case string(estree.TypeSequenceExpression):
		return precSequence
	case string(estree.TypeAssignmentExpression), string(estree.TypeArrowFunctionExpression),
		string(estree.TypeYieldExpression):
		return precAssignment
	case string(estree.TypeConditionalExpression):
		return precConditional
	case string(estree.TypeLogicalExpression), string(estree.TypeBinaryExpression):
		op := n.Str("operator")
		if p, ok := binaryPrecedence[op]; ok {
			return p
		}
		return precBitwiseOr
	case string(estree.TypeAwaitExpression), string(estree.TypeUnaryExpression):
		return precUnary
	case string(estree.TypeUpdateExpression):
		if n.Bool("prefix") {
			return precUnary
		}
		return precPostfix
	case string(estree.TypeCallExpression), string(estree.TypeTaggedTemplateExpression):
		return precCall
	case string(estree.TypeNewExpression):
		return precNew
	case string(estree.TypeMemberExpression):
		return precMember
	default:
		return precPrimary
	}
}

// needsParens reports whether child, appearing as the given attribute
// slot of parent, must be parenthesized to preserve parse structure.
func needsParens(parent *estree.Node, slot string, child *estree.Node) bool {
	childPrec := expressionPrecedence(child)

	switch parent.Type {
	case string(estree.TypeBinaryExpression), string(estree.TypeLogicalExpression):
		parentOp := parent.Str("operator")
		parentPrec := binaryPrecedence[parentOp]
		if child.Type != string(estree.TypeBinaryExpression) && child.Type != string(estree.TypeLogicalExpression) {
			// A unary/await expression is never allowed as the bare left
			// operand of ** (its grammar productions split this out even
			// though no other operator needs it): -2 ** 2 is a syntax
			// error, 2 ** -2 is not.
			if parentOp == "**" && slot == "left" &&
				(child.Type == string(estree.TypeUnaryExpression) || child.Type == string(estree.TypeAwaitExpression)) {
				return true
			}
			return childPrec < parentPrec
		}
		childOp := child.Str("operator")
		childBinPrec := binaryPrecedence[childOp]

		if childBinPrec < parentPrec {
			return true
		}
		if childBinPrec > parentPrec {
			return false
		}
		// Equal precedence: right-associative ** needs parens only on
		// the left; the right operand groups naturally without them.
		if parentOp == "**" {
			// Right-associative: a ** (b ** c) prints as a ** b ** c, but
			// (a ** b) ** c must keep its parens on the left.
			return slot == "left"
		}
		if slot == "right" {
			return true
		}
		return false

	case string(estree.TypeUnaryExpression), string(estree.TypeAwaitExpression):
		return childPrec < precUnary

	case string(estree.TypeUpdateExpression):
		return childPrec < precUnary

	case string(estree.TypeCallExpression), string(estree.TypeNewExpression):
		if slot == "callee" {
			if parent.Type == string(estree.TypeNewExpression) && calleeContainsCall(child) {
				return true
			}
			return childPrec < precCall
		}
		return false

	case string(estree.TypeMemberExpression):
		if slot == "object" {
			if child.Type == string(estree.TypeNewExpression) && len(child.Children("arguments")) == 0 {
				// `new Foo` without call parens is ambiguous as a member
				// object: `new Foo.bar` parses as `new (Foo.bar)`, so
				// force `(new Foo).bar` when that isn't what's meant.
				return true
			}
			// Call/New(with args)/Member chain at the same level as
			// member access itself (`foo().bar`, `new Foo().bar` both
			// need no parens); only genuinely lower-precedence
			// expressions do.
			return childPrec < precCall
		}
		return false

	case string(estree.TypeTaggedTemplateExpression):
		if slot == "tag" {
			return childPrec < precCall
		}
		return false

	case string(estree.TypeConditionalExpression):
		if slot == "test" {
			return childPrec <= precConditional
		}
		return childPrec < precConditional

	case string(estree.TypeAssignmentExpression):
		if slot == "left" {
			return false
		}
		return childPrec < precAssignment

	case string(estree.TypeSpreadElement), string(estree.TypeRestElement), string(estree.TypeProperty),
		string(estree.TypeReturnStatement), string(estree.TypeThrowStatement), string(estree.TypeVariableDeclarator):
		return childPrec < precAssignment

	case string(estree.TypeArrowFunctionExpression):
		if slot == "body" && child.Type == string(estree.TypeObjectExpression) {
			return true
		}
		return childPrec < precAssignment

	case string(estree.TypeYieldExpression):
		return childPrec <= precAssignment

	case string(estree.TypeExpressionStatement):
		return exprStatementNeedsWrap(child)

	default:
		return false
	}
}

// calleeContainsCall walks a NewExpression callee's .object chain
// looking for a bare CallExpression, which would make `new` bind to
// the wrong sub-expression without parentheses.
func calleeContainsCall(n *estree.Node) bool {
	for n != nil {
		switch n.Type {
		case string(estree.TypeCallExpression):
			return true
		case string(estree.TypeMemberExpression):
			n = n.Child("object")
		default:
			return false
		}
	}
	return false
}

// exprStatementNeedsWrap reports whether an expression statement whose
// expression starts with one of the ambiguous heads (function, class,
// object literal, or an assignment to a destructuring pattern) must be
// wrapped in parentheses so the leading token cannot be misparsed as a
// statement-level keyword or block.
func exprStatementNeedsWrap(expr *estree.Node) bool {
	n := expr
	for {
		switch n.Type {
		case string(estree.TypeFunctionExpression), string(estree.TypeClassExpression),
			string(estree.TypeObjectExpression):
			return true
		case string(estree.TypeAssignmentExpression):
			left := n.Child("left")
			if left.Type == string(estree.TypeObjectPattern) || left.Type == string(estree.TypeArrayPattern) {
				return true
			}
			n = left
			continue
		case string(estree.TypeBinaryExpression), string(estree.TypeLogicalExpression):
			n = n.Child("left")
			continue
		case string(estree.TypeCallExpression), string(estree.TypeTaggedTemplateExpression):
			if n.Type == string(estree.TypeTaggedTemplateExpression) {
				n = n.Child("tag")
			} else {
				n = n.Child("callee")
			}
			continue
		case string(estree.TypeMemberExpression):
			n = n.Child("object")
			continue
		case string(estree.TypeConditionalExpression):
			n = n.Child("test")
			continue
		case string(estree.TypeSequenceExpression):
			exprs := n.Children("expressions")
			if len(exprs) == 0 {
				return false
			}
			n = exprs[0]
			continue
		default:
			return false
		}
	}
}
