package lexer

import (
	"strconv"
	"unicode"

	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/source"
)

// Lexer pulls Symbols from a source.Reader and emits Tokens. It keeps a
// single Symbol of lookahead, matching spec.md §5's "no stage buffers more
// than one element of lookahead."
type Lexer struct {
	reader  *source.Reader
	src     *source.Source
	lookhd  source.Symbol
	hasLook bool
}

// New creates a Lexer reading from src.
func New(src *source.Source) *Lexer {
	return &Lexer{reader: source.NewReader(src), src: src}
}

// peek returns the next Symbol without consuming it.
func (l *Lexer) peek() (source.Symbol, bool) {
	if !l.hasLook {
		sym, ok := l.reader.Next()
		if !ok {
			return source.Symbol{}, false
		}
		l.lookhd = sym
		l.hasLook = true
	}
	return l.lookhd, true
}

// advance consumes and returns the next Symbol.
func (l *Lexer) advance() (source.Symbol, bool) {
	if l.hasLook {
		l.hasLook = false
		return l.lookhd, true
	}
	return l.reader.Next()
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// skipWhitespace consumes a run of whitespace runes.
func (l *Lexer) skipWhitespace() {
	for {
		sym, ok := l.peek()
		if !ok || !isWhitespace(sym.Char) {
			return
		}
		l.advance()
	}
}

// Next skips whitespace and merges any run of contiguous comment lines,
// then returns exactly one token, a lexical error, or ok=false once the
// underlying source is drained.
func (l *Lexer) Next() (Token, error, bool) {
	for {
		l.skipWhitespace()

		sym, ok := l.peek()
		if !ok {
			return Token{}, nil, false
		}

		if sym.Char == '#' {
			tok := l.readComment()
			return tok, nil, true
		}

		return l.readToken()
	}
}

// readComment reads one or more contiguous "# ..." lines, merging them
// into a single Comment token whose span covers all joined lines per
// spec.md §4.2.
func (l *Lexer) readComment() Token {
	first, _ := l.peek()
	startPos := first.Position.Range.Start
	lastEnd := startPos

	var text []rune
	for {
		sym, ok := l.peek()
		if !ok || sym.Char != '#' {
			break
		}
		l.advance() // consume '#'

		for {
			sym, ok := l.peek()
			if !ok || sym.Char == '\n' {
				break
			}
			text = append(text, sym.Char)
			lastEnd = sym.Position.Range.End
			l.advance()
		}

		// Look ahead across whitespace (including the newline that ends
		// this comment line) to see if another comment line follows
		// contiguously; if so, merge it in. Discarding that whitespace
		// now is safe either way — it would be skipped before the next
		// token regardless of whether the merge happens.
		l.skipWhitespace()
		next, ok := l.peek()
		if ok && next.Char == '#' {
			text = append(text, '\n')
			continue
		}
		break
	}

	endPos := lastEnd
	span := source.SourcePositionRange{
		Range: source.PositionRange{Start: startPos, End: endPos},
		Src:   l.src,
	}
	return Token{Kind: Comment, Literal: string(text), Position: span}
}

// readToken reads exactly one non-comment token starting at the current
// lookahead Symbol, which must not be whitespace.
func (l *Lexer) readToken() (Token, error, bool) {
	sym, _ := l.peek()

	switch {
	case isIdentStart(sym.Char):
		return l.readIdentifier()
	case unicode.IsDigit(sym.Char):
		return l.readNumber()
	case sym.Char == '=':
		return l.readEquals()
	}

	if kind, ok := single[sym.Char]; ok {
		l.advance()
		return Token{Kind: kind, Literal: string(sym.Char), Position: sym.Position}, nil, true
	}

	l.advance()
	return Token{}, &diag.UnknownSymbol{Char: sym.Char, Pos: sym.Position}, true
}

// readIdentifier reads [A-Za-z0-9_]* starting from an alphabetic-leading
// rune and classifies it against the keyword table.
func (l *Lexer) readIdentifier() (Token, error, bool) {
	first, _ := l.advance()
	runes := []rune{first.Char}
	end := first.Position.Range.End

	for {
		sym, ok := l.peek()
		if !ok || !isIdentPart(sym.Char) {
			break
		}
		runes = append(runes, sym.Char)
		end = sym.Position.Range.End
		l.advance()
	}

	literal := string(runes)
	span := source.SourcePositionRange{
		Range: source.PositionRange{Start: first.Position.Range.Start, End: end},
		Src:   l.src,
	}

	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Position: span}, nil, true
	}
	return Token{Kind: Identifier, Literal: literal, Position: span}, nil, true
}

// readNumber reads a digit-leading run of [0-9.]*. A leading dot is never
// part of a number (spec.md §9's resolved open question): ".5" lexes as
// Dot followed by Int(5). A trailing dot with no following digits, e.g.
// "42.", lexes as Float.
func (l *Lexer) readNumber() (Token, error, bool) {
	first, _ := l.advance()
	runes := []rune{first.Char}
	end := first.Position.Range.End
	sawDot := false

	for {
		sym, ok := l.peek()
		if !ok {
			break
		}
		if unicode.IsDigit(sym.Char) {
			runes = append(runes, sym.Char)
			end = sym.Position.Range.End
			l.advance()
			continue
		}
		if sym.Char == '.' {
			sawDot = true
			runes = append(runes, sym.Char)
			end = sym.Position.Range.End
			l.advance()
			continue
		}
		break
	}

	literal := string(runes)
	span := source.SourcePositionRange{
		Range: source.PositionRange{Start: first.Position.Range.Start, End: end},
		Src:   l.src,
	}

	if sawDot {
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Token{}, &diag.ParseNumberError{Literal: literal, Pos: span}, true
		}
		return Token{Kind: Float, Literal: literal, FloatValue: v, Position: span}, nil, true
	}

	v, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return Token{}, &diag.ParseNumberError{Literal: literal, Pos: span}, true
	}
	return Token{Kind: Int, Literal: literal, IntValue: v, Position: span}, nil, true
}

// readEquals disambiguates "=" from "=/=" per spec.md §4.2: if the rune
// after "=" is "/", the lexer commits to expecting another "=" to close
// NotEqual; anything else starting with "=/" is IllegalSymbol.
func (l *Lexer) readEquals() (Token, error, bool) {
	eq, _ := l.advance()

	next, ok := l.peek()
	if !ok || next.Char != '/' {
		return Token{Kind: Equal, Literal: "=", Position: eq.Position}, nil, true
	}
	l.advance() // consume '/'

	third, ok := l.peek()
	if ok && third.Char == '=' {
		l.advance()
		span := source.SourcePositionRange{
			Range: source.PositionRange{Start: eq.Position.Range.Start, End: third.Position.Range.End},
			Src:   l.src,
		}
		return Token{Kind: NotEqual, Literal: "=/=", Position: span}, nil, true
	}

	end := next.Position.Range.End
	found := "=/"
	if ok {
		end = third.Position.Range.End
		found = "=/" + string(third.Char)
		l.advance()
	}
	span := source.SourcePositionRange{
		Range: source.PositionRange{Start: eq.Position.Range.Start, End: end},
		Src:   l.src,
	}
	return Token{}, &diag.IllegalSymbol{Found: found, Pos: span}, true
}
