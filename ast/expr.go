package ast

import "github.com/ftlang/ftl/source"

// Expression is the closed set of expression-producing nodes: binary
// expressions, function calls, number literals, and variable references
// (spec.md §3). Every Expression is also a valid Instruction (an
// expression used for its side effect, e.g. a bare function call).
type Expression interface {
	Instruction
	expression()
}

// BinaryOperator enumerates FTL's binary operators. Every value has a
// fixed, defined precedence via Precedence — spec.md §4.3's invariant
// that "the operator in a BinaryExpression has a defined precedence."
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Less
	Greater
	Equal
	NotEqual
)

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Less:
		return "<"
	case Greater:
		return ">"
	case Equal:
		return "="
	case NotEqual:
		return "=/="
	default:
		return "?"
	}
}

// Precedence returns op's fixed binding strength per spec.md §4.3's
// table. All operators are left-associative.
func (op BinaryOperator) Precedence() int {
	switch op {
	case Equal, NotEqual:
		return 5
	case Less, Greater:
		return 10
	case Add, Subtract:
		return 20
	case Multiply, Divide:
		return 30
	default:
		return 0
	}
}

// BinaryExpression is `lhs operator rhs`. Operator carries its own span
// (the operator token's), distinct from the whole expression's span,
// because the type checker's diag.TypeMismatch anchors at the operator's
// position.
type BinaryExpression struct {
	Lhs         Expression
	Operator    BinaryOperator
	OperatorPos source.SourcePositionRange
	Rhs         Expression
	Span        source.SourcePositionRange
}

func (b *BinaryExpression) Pos() source.SourcePositionRange { return b.Span }
func (*BinaryExpression) instruction()                      {}
func (*BinaryExpression) expression()                        {}

// FunctionCall is `name(params...)`.
type FunctionCall struct {
	Name   string
	Params []Expression
	Span   source.SourcePositionRange
}

func (f *FunctionCall) Pos() source.SourcePositionRange { return f.Span }
func (*FunctionCall) instruction()                       {}
func (*FunctionCall) expression()                         {}

// NumberLiteral is a numeric literal, holding either an Int or a Float
// value (spec.md §3's NumberKind). IsFloat selects which field is valid.
type NumberLiteral struct {
	IsFloat    bool
	IntValue   int64
	FloatValue float64
	Span       source.SourcePositionRange
}

func (n *NumberLiteral) Pos() source.SourcePositionRange { return n.Span }
func (*NumberLiteral) instruction()                       {}
func (*NumberLiteral) expression()                         {}

// VariableExpression references a variable by name.
type VariableExpression struct {
	Name string
	Span source.SourcePositionRange
}

func (v *VariableExpression) Pos() source.SourcePositionRange { return v.Span }
func (*VariableExpression) instruction()                       {}
func (*VariableExpression) expression()                         {}
