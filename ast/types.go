/*
Package ast defines the FTL abstract syntax tree: the closed set of node
types the parser produces and the symbol table, type checker, and
emitters consume. Every node carries a source.SourcePositionRange so a
diagnostic raised against it can always be rendered back to source text.
*/
package ast

import (
	"fmt"

	"github.com/ftlang/ftl/source"
)

// BasicKind enumerates FTL's two primitive scalar types.
type BasicKind int

const (
	Int BasicKind = iota
	Float
)

func (b BasicKind) String() string {
	if b == Float {
		return "float"
	}
	return "int"
}

// DataType is the recursive type variant spec.md §3 describes:
// Basic(BasicDataType) | Struct(name) | Pointer(DataType). It is a closed
// interface implemented only by BasicType, StructType, and PointerType.
type DataType interface {
	fmt.Stringer
	dataType()
}

// BasicType is one of FTL's two primitive scalar types.
type BasicType struct {
	Kind BasicKind
}

func (BasicType) dataType()         {}
func (b BasicType) String() string  { return b.Kind.String() }

// StructType names a user-defined struct. Whether the name actually
// refers to a declared struct is resolved by symtable/typecheck, not by
// the parser that constructs this node (spec.md §4.3).
type StructType struct {
	Name string
}

func (StructType) dataType()        {}
func (s StructType) String() string { return s.Name }

// PointerType wraps another DataType; pointer depth is unbounded, so
// PointerType{PointerType{BasicType{Int}}} ("ptr ptr int") is well-formed.
type PointerType struct {
	Elem DataType
}

func (PointerType) dataType()        {}
func (p PointerType) String() string { return "ptr " + p.Elem.String() }

// TypesEqual reports whether two DataTypes denote the same type. The
// type checker uses this for every type-compatibility check in spec.md
// §4.5; there is no numeric coercion, so Int and Float are always
// distinct. Named distinctly from the BinaryOperator constant Equal,
// which tags FTL's `=` operator, not this function.
func TypesEqual(a, b DataType) bool {
	switch av := a.(type) {
	case BasicType:
		bv, ok := b.(BasicType)
		return ok && av.Kind == bv.Kind
	case StructType:
		bv, ok := b.(StructType)
		return ok && av.Name == bv.Name
	case PointerType:
		bv, ok := b.(PointerType)
		return ok && TypesEqual(av.Elem, bv.Elem)
	default:
		return false
	}
}

// Node is the base interface every AST node implements: it can always
// report the source span it was parsed from.
type Node interface {
	Pos() source.SourcePositionRange
}
