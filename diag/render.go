package diag

import (
	"strconv"
	"strings"
)

// Render formats a Positioned error as the offending source line(s)
// followed by a caret underline spanning the error's start and end
// columns, the way spec.md §6 describes the driver's error presentation.
// When the span covers more than one line, every covered line is printed
// with its own underline: the first from the start column to its end, the
// last from its first column to the end column, and any line in between
// across its full width.
func Render(err Positioned) string {
	pos := err.Position()
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteByte('\n')

	if pos.Src == nil {
		return b.String()
	}

	lines := splitLines(pos.Src.Text)
	startLine, endLine := pos.Range.Start.Line, pos.Range.End.Line
	if startLine < 1 || startLine > len(lines) {
		return b.String()
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}

	gutterWidth := len(strconv.Itoa(endLine))
	for ln := startLine; ln <= endLine; ln++ {
		lineText := lines[ln-1]
		b.WriteString(padLeft(strconv.Itoa(ln), gutterWidth))
		b.WriteString(" | ")
		b.WriteString(lineText)
		b.WriteByte('\n')

		underlineStart, underlineEnd := 1, len(lineText)
		if ln == startLine {
			underlineStart = pos.Range.Start.Column
		}
		if ln == endLine {
			underlineEnd = pos.Range.End.Column
		}
		if underlineEnd < underlineStart {
			underlineEnd = underlineStart
		}

		b.WriteString(strings.Repeat(" ", gutterWidth))
		b.WriteString("   ")
		b.WriteString(strings.Repeat(" ", underlineStart-1))
		b.WriteString(strings.Repeat("^", underlineEnd-underlineStart+1))
		b.WriteByte('\n')
	}

	return b.String()
}

// splitLines splits a rune buffer into lines without its newline
// terminators, mirroring how Position counts lines (a '\n' ends the line
// it terminates, and does not start a new empty trailing line unless
// there is text after it).
func splitLines(text []rune) []string {
	s := string(text)
	raw := strings.Split(s, "\n")
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	return raw
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
