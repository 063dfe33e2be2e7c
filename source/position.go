/*
Package source owns the FTL front end's character buffer and position model.

A Source is an immutable bundle of a file name and its text, shared by
reference from every Token and AST node so that diagnostics can always be
rendered back against the original text. Position and PositionRange are the
two coordinate types every later stage anchors its output to.
*/
package source

import "fmt"

// Position is a single point in a Source: a 1-based line, a 1-based
// column, and a 0-based offset into the rune buffer. Line/column are the
// human-facing coordinates; offset is what makes slicing the buffer cheap.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders a Position as "line:column", the conventional compiler
// diagnostic prefix.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionRange is an inclusive start/end span. Start and End may be equal
// for a single-rune token.
type PositionRange struct {
	Start Position
	End   Position
}

// String renders a PositionRange as "start-end" when the bounds differ, or
// just "start" when the range covers a single position.
func (r PositionRange) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// SourcePositionRange pairs a PositionRange with the Source it refers to.
// This is the span type carried by every Token and AST node; it is what
// lets diag.Render recover and underline the offending source text.
type SourcePositionRange struct {
	Range PositionRange
	Src   *Source
}

// Text returns the substring of the originating Source covered by this
// span, inclusive of both endpoints.
func (s SourcePositionRange) Text() string {
	if s.Src == nil {
		return ""
	}
	start, end := s.Range.Start.Offset, s.Range.End.Offset
	if start < 0 || end >= len(s.Src.Text) || start > end {
		return ""
	}
	return string(s.Src.Text[start : end+1])
}

// String renders "name@range", e.g. "add.ftl@3:8-3:12".
func (s SourcePositionRange) String() string {
	name := "<unknown>"
	if s.Src != nil {
		name = s.Src.Name
	}
	return fmt.Sprintf("%s@%s", name, s.Range)
}

// PositionContainer wraps a value together with the span it was produced
// from. It behaves like T for most purposes but never forgets where it
// came from, matching spec.md §3's PositionContainer<T>.
type PositionContainer[T any] struct {
	Value    T
	Position SourcePositionRange
}
