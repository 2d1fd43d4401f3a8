package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestTokenizeOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"greater-equal before greater", ">=", []TokenType{GE, EOF}},
		{"equal before assign", "==", []TokenType{EQ, EOF}},
		{"arrow before minus", "->", []TokenType{ARROW, EOF}},
		{"double colon before colon", "::", []TokenType{DCOLON, EOF}},
		{"single colon", ":", []TokenType{COLON, EOF}},
		{"shift operators", "<< >>", []TokenType{SHL, SHR, EOF}},
		{"logical symbols", "&& ||", []TokenType{AND, OR, EOF}},
		{"logical words", "and or not", []TokenType{AND, OR, NOT, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tokens, lexErr := l.Tokenize()
			require.Nil(t, lexErr)
			assert.Equal(t, tt.want, tokenTypes(tokens))
		})
	}
}

func TestTokenizeLiterals(t *testing.T) {
	l := New(`42 3.14 true false "hi\n"`)
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	require.Len(t, tokens, 6)

	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, int64(42), tokens[0].IntValue)

	assert.Equal(t, FLOAT, tokens[1].Type)
	assert.InDelta(t, 3.14, tokens[1].FloatValue, 1e-9)

	assert.Equal(t, BOOLEAN, tokens[2].Type)
	assert.True(t, tokens[2].BoolValue)

	assert.Equal(t, BOOLEAN, tokens[3].Type)
	assert.False(t, tokens[3].BoolValue)

	assert.Equal(t, STRING, tokens[4].Type)
	assert.Equal(t, "hi\n", tokens[4].Literal)
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("1 # trailing comment\n2")
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	assert.Equal(t, []TokenType{INT, NEWLINE, INT, EOF}, tokenTypes(tokens))
}

func TestStatementSeparatorsCollapse(t *testing.T) {
	l := New("1;2\r\n3")
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	assert.Equal(t, []TokenType{INT, NEWLINE, INT, NEWLINE, INT, EOF}, tokenTypes(tokens))
}

func TestSpansAreMonotoneAndNonOverlapping(t *testing.T) {
	l := New("var x = 1 + 2")
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)

	prevEnd := 0
	for _, tok := range tokens {
		if tok.Type == EOF {
			continue
		}
		assert.GreaterOrEqual(t, tok.Span.Start, prevEnd)
		assert.LessOrEqual(t, tok.Span.Start, tok.Span.End)
		prevEnd = tok.Span.End
	}
}

func TestIllegalCharacterFailsEagerly(t *testing.T) {
	l := New("var x = 1 ` 2")
	tokens, lexErr := l.Tokenize()
	require.Nil(t, tokens)
	require.NotNil(t, lexErr)
	assert.Equal(t, 1, lexErr.Pos.Line)
	assert.Contains(t, lexErr.Error(), "unrecognized character")
}

func TestIndentModeProducesIndentDedent(t *testing.T) {
	src := "if true\n  println(1)\nprintln(2)"
	l := New(src, WithIndentMode(true))
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	assert.Equal(t,
		[]TokenType{IF, BOOLEAN, NEWLINE, INDENT, IDENT, LPAREN, INT, RPAREN, NEWLINE, DEDENT, IDENT, LPAREN, INT, RPAREN, EOF},
		tokenTypes(tokens),
	)
}

func TestIndentModeBlankLinesDoNotChangeState(t *testing.T) {
	src := "if true\n  println(1)\n\n  println(2)\nprintln(3)"
	l := New(src, WithIndentMode(true))
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	// Blank line between two statements at the same indent should not emit
	// spurious INDENT/DEDENT pairs.
	indentCount, dedentCount := 0, 0
	for _, tt := range tokenTypes(tokens) {
		if tt == INDENT {
			indentCount++
		}
		if tt == DEDENT {
			dedentCount++
		}
	}
	assert.Equal(t, 1, indentCount)
	assert.Equal(t, 1, dedentCount)
}

func TestIndentModeMultiLevelDedentEmitsOnePerLevel(t *testing.T) {
	src := "if true\n  if true\n    println(1)\nprintln(2)"
	l := New(src, WithIndentMode(true))
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	// Two levels of indent (2 then 4 spaces, indent_size 2) followed by a
	// dedent straight back to column 0 must emit one DEDENT per level
	// given up -- (prev-curr)/indent_size == 2 -- not a single DEDENT.
	assert.Equal(t,
		[]TokenType{
			IF, BOOLEAN, NEWLINE,
			INDENT, IF, BOOLEAN, NEWLINE,
			INDENT, IDENT, LPAREN, INT, RPAREN, NEWLINE,
			DEDENT, DEDENT,
			IDENT, LPAREN, INT, RPAREN, EOF,
		},
		tokenTypes(tokens),
	)
}

func TestKeywordsDoNotMatchAsIdentifierPrefix(t *testing.T) {
	l := New("variable")
	tokens, lexErr := l.Tokenize()
	require.Nil(t, lexErr)
	require.Len(t, tokens, 2)
	assert.Equal(t, IDENT, tokens[0].Type)
	assert.Equal(t, "variable", tokens[0].Literal)
}
