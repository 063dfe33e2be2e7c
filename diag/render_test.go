package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftlang/ftl/source"
)

func span(src *source.Source, startLine, startCol, startOff, endLine, endCol, endOff int) source.SourcePositionRange {
	return source.SourcePositionRange{
		Range: source.PositionRange{
			Start: source.Position{Line: startLine, Column: startCol, Offset: startOff},
			End:   source.Position{Line: endLine, Column: endCol, Offset: endOff},
		},
		Src: src,
	}
}

func TestRender_UnderlinesSingleLineSpan(t *testing.T) {
	src := source.New("t.ftl", "var x: int = 1.0")
	err := &TypeMismatch{Expected: "Int", Actual: "Float", Pos: span(src, 1, 14, 13, 1, 16, 15)}

	out := Render(err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "type mismatch")
	assert.Contains(t, lines[1], "var x: int = 1.0")
	assert.True(t, strings.HasSuffix(lines[2], strings.Repeat("^", 3)))
}

func TestRender_NilSourceDoesNotPanic(t *testing.T) {
	err := &UndeclaredVariable{Name: "x", Pos: source.SourcePositionRange{}}
	assert.NotPanics(t, func() {
		Render(err)
	})
}
