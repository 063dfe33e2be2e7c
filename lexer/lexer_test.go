package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftlang/ftl/diag"
	"github.com/ftlang/ftl/source"
)

// collect drains every token from a Lexer, requiring that no lexical
// error occurs.
func collect(t *testing.T, src string) []Token {
	t.Helper()
	l := New(source.New("t.ftl", src))
	var toks []Token
	for {
		tok, err, ok := l.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		toks = append(toks, tok)
	}
	return toks
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexer_Keywords(t *testing.T) {
	toks := collect(t, "def extern struct var ptr if else while return bitor bitand mod")
	assert.Equal(t, []Kind{Def, Extern, Struct, Var, Pointer, If, Else, While, Return, BitOr, BitAnd, Modulus}, kinds(toks))
}

func TestLexer_KeywordSpanMatchesSpelling(t *testing.T) {
	src := source.New("t.ftl", "  return ")
	l := New(src)
	tok, err, ok := l.Next()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Return, tok.Kind)
	assert.Equal(t, "return", tok.Position.Text())
}

func TestLexer_IdentifierVsKeyword(t *testing.T) {
	toks := collect(t, "returning def_not ifx")
	assert.Equal(t, []Kind{Identifier, Identifier, Identifier}, kinds(toks))
}

func TestLexer_Operators(t *testing.T) {
	toks := collect(t, "+ - * / < > ( ) { } [ ] , ; : .")
	assert.Equal(t, []Kind{
		Plus, Minus, Star, Slash, Less, Greater, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket, Comma, Semicolon, Colon, Dot,
	}, kinds(toks))
}

func TestLexer_EqualAndNotEqual(t *testing.T) {
	toks := collect(t, "= =/=")
	assert.Equal(t, []Kind{Equal, NotEqual}, kinds(toks))
	assert.Equal(t, "=/=", toks[1].Literal)
}

func TestLexer_IllegalSymbolOnBadNotEqual(t *testing.T) {
	l := New(source.New("t.ftl", "=/x"))
	_, err, ok := l.Next()
	require.True(t, ok)
	require.Error(t, err)
	var illegal *diag.IllegalSymbol
	assert.ErrorAs(t, err, &illegal)
}

func TestLexer_IllegalSymbolAtEOFAfterSlash(t *testing.T) {
	l := New(source.New("t.ftl", "=/"))
	_, err, ok := l.Next()
	require.True(t, ok)
	require.Error(t, err)
	var illegal *diag.IllegalSymbol
	assert.ErrorAs(t, err, &illegal)
}

func TestLexer_UnknownSymbol(t *testing.T) {
	l := New(source.New("t.ftl", "@"))
	_, err, ok := l.Next()
	require.True(t, ok)
	require.Error(t, err)
	var unknown *diag.UnknownSymbol
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, '@', unknown.Char)
}

func TestLexer_IntegerLiteral(t *testing.T) {
	toks := collect(t, "42")
	require.Len(t, toks, 1)
	assert.Equal(t, Int, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].IntValue)
}

func TestLexer_FloatLiteral(t *testing.T) {
	toks := collect(t, "3.14")
	require.Len(t, toks, 1)
	assert.Equal(t, Float, toks[0].Kind)
	assert.InDelta(t, 3.14, toks[0].FloatValue, 1e-9)
}

func TestLexer_TrailingDotIsFloat(t *testing.T) {
	toks := collect(t, "42.")
	require.Len(t, toks, 1)
	assert.Equal(t, Float, toks[0].Kind)
	assert.InDelta(t, 42.0, toks[0].FloatValue, 1e-9)
}

func TestLexer_LeadingDotIsDotThenInt(t *testing.T) {
	toks := collect(t, ".5")
	require.Len(t, toks, 2)
	assert.Equal(t, Dot, toks[0].Kind)
	assert.Equal(t, Int, toks[1].Kind)
	assert.Equal(t, int64(5), toks[1].IntValue)
}

func TestLexer_SingleLineComment(t *testing.T) {
	toks := collect(t, "# hello world\n42")
	require.Len(t, toks, 2)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, " hello world", toks[0].Literal)
	assert.Equal(t, Int, toks[1].Kind)
}

func TestLexer_MergesContiguousCommentLines(t *testing.T) {
	toks := collect(t, "# line one\n# line two\n42")
	require.Len(t, toks, 2)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, " line one\n line two", toks[0].Literal)
}

func TestLexer_MergesAcrossBlankLine(t *testing.T) {
	// A blank line between two "#" lines is still only whitespace
	// separating them, so it merges the same as adjacent comment lines.
	toks := collect(t, "# one\n\n# two\n")
	require.Len(t, toks, 1)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, " one\n two", toks[0].Literal)
}

func TestLexer_DoesNotMergeWhenCodeIntervenes(t *testing.T) {
	toks := collect(t, "# one\n42\n# two\n")
	require.Len(t, toks, 3)
	assert.Equal(t, []Kind{Comment, Int, Comment}, kinds(toks))
}

func TestLexer_SpanOffsetsAreValidAndOrdered(t *testing.T) {
	toks := collect(t, "def add(a: int): int { return a }")
	for _, tok := range toks {
		assert.LessOrEqual(t, tok.Position.Range.Start.Offset, tok.Position.Range.End.Offset)
	}
}

func TestLexer_LexRoundTrip(t *testing.T) {
	program := "def add(a: int, b: int): int {\n  return a + b\n}"
	src := source.New("t.ftl", program)
	l := New(src)

	var rebuilt []rune
	cursor := 0
	for {
		tok, err, ok := l.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		start := tok.Position.Range.Start.Offset
		end := tok.Position.Range.End.Offset
		rebuilt = append(rebuilt, src.Text[cursor:start]...)
		rebuilt = append(rebuilt, src.Text[start:end+1]...)
		cursor = end + 1
	}
	rebuilt = append(rebuilt, src.Text[cursor:]...)
	assert.Equal(t, program, string(rebuilt))
}
