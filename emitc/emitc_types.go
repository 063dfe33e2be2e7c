package emitc

import "github.com/ftlang/ftl/ast"

// cType renders an ast.DataType as a C type name. A Pointer is rendered
// postfix, the way C itself does: "ptr int" becomes "int*", "ptr ptr
// int" becomes "int**" (spec.md §4.6).
func cType(t ast.DataType) string {
	switch dt := t.(type) {
	case ast.BasicType:
		if dt.Kind == ast.Float {
			return "double"
		}
		return "int"
	case ast.StructType:
		return dt.Name
	case ast.PointerType:
		return cType(dt.Elem) + "*"
	default:
		return "void"
	}
}
