package emitftl

import (
	"strconv"
	"strings"

	"github.com/ftlang/ftl/ast"
)

// renderExpression renders expr as canonical FTL source with a single
// space around every binary operator (spec.md §4.6).
func (e *Emitter) renderExpression(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return renderNumber(n)
	case *ast.VariableExpression:
		return n.Name
	case *ast.FunctionCall:
		params := make([]string, len(n.Params))
		for i, param := range n.Params {
			params[i] = e.renderExpression(param)
			// Call arguments parse as primaries, so a binary argument only
			// re-parses when it keeps its parentheses.
			if _, isBinary := param.(*ast.BinaryExpression); isBinary {
				params[i] = "(" + params[i] + ")"
			}
		}
		return n.Name + "(" + strings.Join(params, ", ") + ")"
	case *ast.BinaryExpression:
		lhs := e.renderOperand(n.Lhs, n.Operator, true)
		rhs := e.renderOperand(n.Rhs, n.Operator, false)
		return lhs + " " + n.Operator.String() + " " + rhs
	default:
		return ""
	}
}

// renderOperand renders one side of a binary expression, adding
// parentheses only when precedence would otherwise be lost on a
// re-parse. The left side needs parentheses only when it binds more
// loosely than the parent operator; the right side also needs them at
// equal precedence, because every FTL operator is left-associative, so
// an unparenthesized equal-precedence chain always re-parses left-deep
// (spec.md §4.3, §8's round-trip law).
func (e *Emitter) renderOperand(operand ast.Expression, parentOp ast.BinaryOperator, isLHS bool) string {
	str := e.renderExpression(operand)
	bin, ok := operand.(*ast.BinaryExpression)
	if !ok {
		return str
	}
	needsParens := bin.Operator.Precedence() < parentOp.Precedence()
	if !isLHS {
		needsParens = bin.Operator.Precedence() <= parentOp.Precedence()
	}
	if needsParens {
		return "(" + str + ")"
	}
	return str
}

// renderNumber formats a NumberLiteral as an FTL numeric literal. A
// float literal always keeps its decimal point so it re-lexes as Float
// rather than Int.
func renderNumber(n *ast.NumberLiteral) string {
	if !n.IsFloat {
		return strconv.FormatInt(n.IntValue, 10)
	}
	s := strconv.FormatFloat(n.FloatValue, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
