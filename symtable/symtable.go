/*
Package symtable implements the first semantic pass over a parsed FTL
program: a single walk over its top-level nodes that records every
function and struct name so the type checker (which runs second) can
resolve forward references — any function body may call any function
declared anywhere in the program, in either direction (spec.md §4.4).

The walk itself cannot fail in the original design; this repo takes the
spec's own suggested stricter behavior and rejects a name collision with
DuplicateDefinition (spec.md §9, resolved in SPEC_FULL.md §4.7).
*/
package symtable

import (
	"github.com/ftlang/ftl/ast"
	"github.com/ftlang/ftl/diag"
)

// Table is the {functions, structs} state spec.md §4.4 and §4.5 share:
// built once by Build, then read (never mutated) by the type checker.
type Table struct {
	functions map[string]*ast.FunctionPrototype
	structs   map[string]*ast.Struct
}

// New returns an empty Table, ready for Insert calls. Build is the usual
// entry point; New exists so callers that stream top-level nodes (e.g.
// an incremental REPL) can insert one node at a time.
func New() *Table {
	return &Table{
		functions: make(map[string]*ast.FunctionPrototype),
		structs:   make(map[string]*ast.Struct),
	}
}

// Build walks nodes once, inserting every function and struct. It
// returns the first DuplicateDefinition it encounters, if any; unlike
// the parser, it does not stop early — every remaining node is still
// inserted so a caller correcting one duplicate and retrying sees the
// complete picture, but only the first error is ever returned.
func Build(nodes []ast.TopLevel) (*Table, error) {
	t := New()
	var firstErr error
	for _, node := range nodes {
		if err := t.Insert(node); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return t, firstErr
}

// Insert records a single top-level node's name. node must be a
// *ast.FunctionDefinition, *ast.FunctionPrototype (an extern
// declaration), or *ast.Struct; anything else is ignored.
func (t *Table) Insert(node ast.TopLevel) error {
	switch n := node.(type) {
	case *ast.FunctionDefinition:
		return t.insertFunction(n.Prototype)
	case *ast.FunctionPrototype:
		return t.insertFunction(n)
	case *ast.Struct:
		return t.insertStruct(n)
	default:
		return nil
	}
}

func (t *Table) insertFunction(proto *ast.FunctionPrototype) error {
	if existing, ok := t.functions[proto.Name]; ok {
		return &diag.DuplicateDefinition{Name: proto.Name, Pos: proto.Span, FirstPos: existing.Span}
	}
	if existing, ok := t.structs[proto.Name]; ok {
		return &diag.DuplicateDefinition{Name: proto.Name, Pos: proto.Span, FirstPos: existing.Span}
	}
	t.functions[proto.Name] = proto
	return nil
}

func (t *Table) insertStruct(s *ast.Struct) error {
	if existing, ok := t.structs[s.Name]; ok {
		return &diag.DuplicateDefinition{Name: s.Name, Pos: s.Span, FirstPos: existing.Span}
	}
	if existing, ok := t.functions[s.Name]; ok {
		return &diag.DuplicateDefinition{Name: s.Name, Pos: s.Span, FirstPos: existing.Span}
	}
	t.structs[s.Name] = s
	return nil
}

// Function looks up a declared function or extern prototype by name.
func (t *Table) Function(name string) (*ast.FunctionPrototype, bool) {
	proto, ok := t.functions[name]
	return proto, ok
}

// Struct looks up a declared struct by name.
func (t *Table) Struct(name string) (*ast.Struct, bool) {
	s, ok := t.structs[name]
	return s, ok
}

// Functions returns every recorded function prototype, unordered.
func (t *Table) Functions() []*ast.FunctionPrototype {
	out := make([]*ast.FunctionPrototype, 0, len(t.functions))
	for _, proto := range t.functions {
		out = append(out, proto)
	}
	return out
}

// Structs returns every recorded struct, unordered.
func (t *Table) Structs() []*ast.Struct {
	out := make([]*ast.Struct, 0, len(t.structs))
	for _, s := range t.structs {
		out = append(out, s)
	}
	return out
}
