package source

// Source is an immutable bundle of a file name and its text, stored as a
// linear rune buffer. It is constructed once, held by pointer throughout
// compilation, and shared by every Token and AST node that needs to
// render a diagnostic against the original text.
type Source struct {
	Name string
	Text []rune
}

// New builds a Source from raw text. The caller owns text until New
// returns; afterward the Source never mutates it.
func New(name, text string) *Source {
	return &Source{Name: name, Text: []rune(text)}
}

// Len returns the number of runes in the source buffer.
func (s *Source) Len() int {
	return len(s.Text)
}

// Symbol is a single positioned rune: the universal item a Source's
// Reader yields, and the input alphabet the lexer consumes.
type Symbol struct {
	Char     rune
	Position SourcePositionRange
}

// Reader iterates a Source one rune at a time, tracking line/column/offset.
// It is the leaf of the pipeline: every later stage's "pull one more item"
// ultimately bottoms out in a call to Reader.Next.
type Reader struct {
	src    *Source
	offset int
	line   int
	column int
}

// NewReader creates a Reader positioned at the start of src.
func NewReader(src *Source) *Reader {
	return &Reader{src: src, offset: 0, line: 1, column: 1}
}

// Next yields the next Symbol, or ok=false once the buffer is drained.
// There is no EOF sentinel value; exhaustion is signaled by ok=false, per
// spec.md §4.1. Encountering '\n' advances the line counter and resets
// the column to 1 for the rune that follows; the newline itself is
// reported at the position it was read from.
func (r *Reader) Next() (Symbol, bool) {
	if r.offset >= len(r.src.Text) {
		return Symbol{}, false
	}
	ch := r.src.Text[r.offset]
	pos := Position{Line: r.line, Column: r.column, Offset: r.offset}
	span := SourcePositionRange{Range: PositionRange{Start: pos, End: pos}, Src: r.src}

	r.offset++
	if ch == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}

	return Symbol{Char: ch, Position: span}, true
}
