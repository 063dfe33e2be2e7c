package ast

import "github.com/ftlang/ftl/source"

// TopLevel is the closed set of nodes the parser can produce at the
// top level of a program: function definitions, extern prototypes, and
// struct definitions (spec.md §3's "top-level Node").
type TopLevel interface {
	Node
	topLevel()
}

// FunctionArgument is one ident : data_type pair in a function's
// parameter list.
type FunctionArgument struct {
	Name string
	Type DataType
}

// FunctionPrototype is a function's header: its name, ordered argument
// list, and optional return type. ReturnType is nil when the function
// returns nothing observable (spec.md §4.3) — it lowers to C's void.
// A FunctionPrototype is itself a TopLevel node when declared with
// `extern` (no body).
type FunctionPrototype struct {
	Name       string
	Args       []FunctionArgument
	ReturnType DataType // nil means no declared return type
	Span       source.SourcePositionRange
}

func (p *FunctionPrototype) Pos() source.SourcePositionRange { return p.Span }
func (*FunctionPrototype) topLevel()                         {}

// FunctionDefinition pairs a FunctionPrototype with its body.
type FunctionDefinition struct {
	Prototype *FunctionPrototype
	Body      Block
	Span      source.SourcePositionRange
}

func (f *FunctionDefinition) Pos() source.SourcePositionRange { return f.Span }
func (*FunctionDefinition) topLevel()                         {}

// Field is one ident : data_type pair in a struct's field list.
type Field struct {
	Name string
	Type DataType
}

// Struct is a struct definition: a name plus an ordered field list.
type Struct struct {
	Name   string
	Fields []Field
	Span   source.SourcePositionRange
}

func (s *Struct) Pos() source.SourcePositionRange { return s.Span }
func (*Struct) topLevel()                         {}
