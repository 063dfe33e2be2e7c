package typecheck

import (
	"fmt"

	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
)

// inferType is infer_expression_type (spec.md §4.5): a total function
// over the closed Expression set, value-position. A FunctionCall whose
// callee has no declared return type is rejected here with
// VoidValueUsed — that call is only legal as a bare instruction, via
// checkExpressionStatement.
func (c *Checker) inferType(expr ast.Expression) (ast.DataType, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat {
			return ast.BasicType{Kind: ast.Float}, nil
		}
		return ast.BasicType{Kind: ast.Int}, nil

	case *ast.VariableExpression:
		t, ok := c.declared(e.Name)
		if !ok {
			return nil, &diag.UndeclaredVariable{Name: e.Name, Pos: e.Span}
		}
		return t, nil

	case *ast.BinaryExpression:
		lhs, err := c.inferType(e.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := c.inferType(e.Rhs)
		if err != nil {
			return nil, err
		}
		if !ast.TypesEqual(lhs, rhs) {
			return nil, &diag.TypeMismatch{Expected: lhs.String(), Actual: rhs.String(), Pos: e.OperatorPos}
		}
		return lhs, nil

	case *ast.FunctionCall:
		returnType, err := c.checkFunctionCall(e)
		if err != nil {
			return nil, err
		}
		if returnType == nil {
			return nil, &diag.VoidValueUsed{Name: e.Name, Pos: e.Span}
		}
		return returnType, nil

	default:
		return nil, fmt.Errorf("typecheck: unhandled expression %T", expr)
	}
}

// checkFunctionCall verifies call's target exists, that its argument
// count matches, and that every parameter's inferred type matches the
// corresponding declared argument type. It returns the callee's
// declared return type, or nil if the callee declares none — the
// caller decides whether nil is acceptable in its context.
func (c *Checker) checkFunctionCall(call *ast.FunctionCall) (ast.DataType, error) {
	proto, ok := c.symbols.Function(call.Name)
	if !ok {
		return nil, &diag.UndefinedFunctionCall{Name: call.Name, Pos: call.Span}
	}
	if len(call.Params) != len(proto.Args) {
		return nil, &diag.ArgumentCountMismatch{
			Name:     call.Name,
			Expected: len(proto.Args),
			Actual:   len(call.Params),
			Pos:      call.Span,
		}
	}
	for i, param := range call.Params {
		paramType, err := c.inferType(param)
		if err != nil {
			return nil, err
		}
		argType := proto.Args[i].Type
		if !ast.TypesEqual(paramType, argType) {
			return nil, &diag.TypeMismatch{Expected: argType.String(), Actual: paramType.String(), Pos: param.Pos()}
		}
	}
	return proto.ReturnType, nil
}

// checkExpressionStatement type-checks an Expression used as a bare
// instruction. This is the one context where a call to a function with
// no declared return type is legal (spec.md §9, resolved in
// SPEC_FULL.md §4.7).
func (c *Checker) checkExpressionStatement(expr ast.Expression) error {
	if call, ok := expr.(*ast.FunctionCall); ok {
		_, err := c.checkFunctionCall(call)
		return err
	}
	_, err := c.inferType(expr)
	return err
}
