package emitc

import (
	"strconv"
	"strings"

	"github.com/ftlang/ftl/ast"
)

// renderExpression renders expr as a single line of C, with no trailing
// newline or semicolon — callers append those where the grammar needs
// them (spec.md §4.6).
func (e *Emitter) renderExpression(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return renderNumber(n)
	case *ast.VariableExpression:
		return n.Name
	case *ast.BinaryExpression:
		return "(" + e.renderExpression(n.Lhs) + " " + cOperator(n.Operator) + " " + e.renderExpression(n.Rhs) + ")"
	case *ast.FunctionCall:
		params := make([]string, len(n.Params))
		for i, param := range n.Params {
			params[i] = e.renderExpression(param)
		}
		return n.Name + "(" + strings.Join(params, ", ") + ")"
	default:
		return ""
	}
}

// cOperator maps a BinaryOperator to its C spelling. NotEqual is the
// one case where this deliberately diverges from the operator's own
// FTL spelling ("=/="): the original reference implementation emitted
// "=/=" literally here, which is not valid C. This emitter renders it
// as "!=" (spec.md §9, resolved in SPEC_FULL.md §4.7).
func cOperator(op ast.BinaryOperator) string {
	switch op {
	case ast.Add:
		return "+"
	case ast.Subtract:
		return "-"
	case ast.Multiply:
		return "*"
	case ast.Divide:
		return "/"
	case ast.Less:
		return "<"
	case ast.Greater:
		return ">"
	case ast.Equal:
		return "=="
	case ast.NotEqual:
		return "!="
	default:
		return "?"
	}
}

// renderNumber formats a NumberLiteral as a C numeric literal. A float
// always keeps a decimal point so the C compiler doesn't read it as an
// int literal.
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
