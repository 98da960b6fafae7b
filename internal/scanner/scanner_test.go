package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltungv/dry/internal/report"
	"github.com/ltungv/dry/internal/token"
)

func tok(typ token.Type, lexeme string, literal interface{}, line, column int) *token.Token {
	return token.New(typ, lexeme, literal, line, column)
}

func tokEOF(line, column int) *token.Token {
	return token.New(token.EOF, "", nil, line, column)
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		// single character token
		{"(", []*token.Token{tok(token.LEFT_PAREN, "(", nil, 1, 1), tokEOF(1, 2)}},
		{")", []*token.Token{tok(token.RIGHT_PAREN, ")", nil, 1, 1), tokEOF(1, 2)}},
		{",", []*token.Token{tok(token.COMMA, ",", nil, 1, 1), tokEOF(1, 2)}},
		{"-", []*token.Token{tok(token.MINUS, "-", nil, 1, 1), tokEOF(1, 2)}},
		{"+", []*token.Token{tok(token.PLUS, "+", nil, 1, 1), tokEOF(1, 2)}},
		{"/", []*token.Token{tok(token.SLASH, "/", nil, 1, 1), tokEOF(1, 2)}},
		{"*", []*token.Token{tok(token.STAR, "*", nil, 1, 1), tokEOF(1, 2)}},
		{"%", []*token.Token{tok(token.PERCENT, "%", nil, 1, 1), tokEOF(1, 2)}},
		{"&", []*token.Token{tok(token.AMPERSAND, "&", nil, 1, 1), tokEOF(1, 2)}},
		{"|", []*token.Token{tok(token.PIPE, "|", nil, 1, 1), tokEOF(1, 2)}},
		{"^", []*token.Token{tok(token.CARET, "^", nil, 1, 1), tokEOF(1, 2)}},
		{"~", []*token.Token{tok(token.TILDE, "~", nil, 1, 1), tokEOF(1, 2)}},
		// single-/double-character token
		{"**", []*token.Token{tok(token.STAR_STAR, "**", nil, 1, 1), tokEOF(1, 3)}},
		{"!", []*token.Token{tok(token.BANG, "!", nil, 1, 1), tokEOF(1, 2)}},
		{"!=", []*token.Token{tok(token.BANG_EQUAL, "!=", nil, 1, 1), tokEOF(1, 3)}},
		{"==", []*token.Token{tok(token.EQUAL_EQUAL, "==", nil, 1, 1), tokEOF(1, 3)}},
		{">", []*token.Token{tok(token.GREATER, ">", nil, 1, 1), tokEOF(1, 2)}},
		{">=", []*token.Token{tok(token.GREATER_EQUAL, ">=", nil, 1, 1), tokEOF(1, 3)}},
		{">>", []*token.Token{tok(token.GREATER_GREATER, ">>", nil, 1, 1), tokEOF(1, 3)}},
		{"<", []*token.Token{tok(token.LESS, "<", nil, 1, 1), tokEOF(1, 2)}},
		{"<=", []*token.Token{tok(token.LESS_EQUAL, "<=", nil, 1, 1), tokEOF(1, 3)}},
		{"<<", []*token.Token{tok(token.LESS_LESS, "<<", nil, 1, 1), tokEOF(1, 3)}},
		// literals
		{"a", []*token.Token{tok(token.IDENTIFIER, "a", nil, 1, 1), tokEOF(1, 2)}},
		{"abc123", []*token.Token{tok(token.IDENTIFIER, "abc123", nil, 1, 1), tokEOF(1, 7)}},
		{"_123abc", []*token.Token{tok(token.IDENTIFIER, "_123abc", nil, 1, 1), tokEOF(1, 8)}},
		{"a_b", []*token.Token{tok(token.IDENTIFIER, "a_b", nil, 1, 1), tokEOF(1, 4)}},
		{"\"\"", []*token.Token{tok(token.STRING, "\"\"", "", 1, 1), tokEOF(1, 3)}},
		{"\"123\"", []*token.Token{tok(token.STRING, "\"123\"", "123", 1, 1), tokEOF(1, 6)}},
		{"\"abc\n123\"", []*token.Token{tok(token.STRING, "\"abc\n123\"", "abc\n123", 1, 1), tokEOF(2, 5)}},
		{"10", []*token.Token{tok(token.NUMBER, "10", 10.0, 1, 1), tokEOF(1, 3)}},
		{"001", []*token.Token{tok(token.NUMBER, "001", 1.0, 1, 1), tokEOF(1, 4)}},
		{"123.456", []*token.Token{tok(token.NUMBER, "123.456", 123.456, 1, 1), tokEOF(1, 8)}},
		// keywords
		{"and", []*token.Token{tok(token.AND, "and", nil, 1, 1), tokEOF(1, 4)}},
		{"or", []*token.Token{tok(token.OR, "or", nil, 1, 1), tokEOF(1, 3)}},
		{"true", []*token.Token{tok(token.TRUE, "true", true, 1, 1), tokEOF(1, 5)}},
		{"false", []*token.Token{tok(token.FALSE, "false", false, 1, 1), tokEOF(1, 6)}},
		{"nil", []*token.Token{tok(token.NIL, "nil", nil, 1, 1), tokEOF(1, 4)}},
		{"", []*token.Token{tokEOF(1, 1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := report.NewCollector()
		scan := New([]rune(tc.src), reporter)
		toks := scan.Scan()

		assert.False(reporter.HadError(), tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanPositions(t *testing.T) {
	assert := assert.New(t)

	src := "a >= b\n  and (c ** 2)"
	reporter := report.NewCollector()
	toks := New([]rune(src), reporter).Scan()

	assert.False(reporter.HadError())
	assert.Equal([]*token.Token{
		tok(token.IDENTIFIER, "a", nil, 1, 1),
		tok(token.GREATER_EQUAL, ">=", nil, 1, 3),
		tok(token.IDENTIFIER, "b", nil, 1, 6),
		tok(token.AND, "and", nil, 2, 3),
		tok(token.LEFT_PAREN, "(", nil, 2, 7),
		tok(token.IDENTIFIER, "c", nil, 2, 8),
		tok(token.STAR_STAR, "**", nil, 2, 10),
		tok(token.NUMBER, "2", 2.0, 2, 13),
		tok(token.RIGHT_PAREN, ")", nil, 2, 14),
		tokEOF(2, 15),
	}, toks)
}

func TestScanComments(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"// comment\na", []*token.Token{tok(token.IDENTIFIER, "a", nil, 2, 1), tokEOF(2, 2)}},
		{"/* a\nb */ c", []*token.Token{tok(token.IDENTIFIER, "c", nil, 2, 6), tokEOF(2, 7)}},
		{"/** x **/c", []*token.Token{tok(token.IDENTIFIER, "c", nil, 1, 10), tokEOF(1, 11)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := report.NewCollector()
		toks := New([]rune(tc.src), reporter).Scan()

		assert.False(reporter.HadError(), tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanErrors(t *testing.T) {
	testCases := []struct {
		src string
		err string
	}{
		{"a = b", "[line 1:3] Error: Unexpected character."},
		{"\n  @", "[line 2:3] Error: Unexpected character."},
		{"\"abc", "[line 1:1] Error: Unterminated string."},
		{"/* abc", "[line 1:1] Error: Unterminated multiline comment."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := report.NewCollector()
		toks := New([]rune(tc.src), reporter).Scan()

		if assert.Len(reporter.Errors(), 1, tc.src) {
			assert.EqualError(reporter.Errors()[0], tc.err)
		}
		assert.Equal(token.EOF, toks[len(toks)-1].Type())
	}
}

func TestScanIsCached(t *testing.T) {
	assert := assert.New(t)

	scan := New([]rune("a + b"), report.NewCollector())
	first := scan.Scan()
	second := scan.Scan()

	assert.Equal(first, second)
	assert.Len(second, 4)
}

func TestScanAtLine(t *testing.T) {
	assert := assert.New(t)
	reporter := report.NewCollector()
	toks := NewAtLine([]rune("a >\n b"), 7, reporter).Scan()

	assert.False(reporter.HadError())
	assert.Equal([]*token.Token{
		tok(token.IDENTIFIER, "a", nil, 7, 1),
		tok(token.GREATER, ">", nil, 7, 3),
		tok(token.IDENTIFIER, "b", nil, 8, 2),
		tokEOF(8, 3),
	}, toks)
}
