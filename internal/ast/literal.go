package ast

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ltungv/dry/internal/token"
)

var literalTypes = map[token.Type]struct{}{
	token.NUMBER: {},
	token.STRING: {},
	token.TRUE:   {},
	token.FALSE:  {},
	token.NIL:    {},
}

// LiteralExpr is a number, string, boolean or nil written in the source.
type LiteralExpr struct {
	tok *token.Token
}

func NewLiteralExpr(tok *token.Token) (*LiteralExpr, error) {
	if err := expectToken(tok, "literal"); err != nil {
		return nil, err
	}
	if _, ok := literalTypes[tok.Type()]; !ok {
		return nil, newNodeError(tok, ErrMalformedNode, fmt.Sprintf("Token '%s' is not a literal.", tok.Type()))
	}
	if tok.Lexeme() == "" {
		return nil, newNodeError(tok, ErrMalformedNode, "Literal has no lexeme.")
	}
	if !isLiteralLexeme(tok.Type(), tok.Lexeme()) {
		return nil, newNodeError(
			tok,
			ErrMalformedNode,
			fmt.Sprintf("'%s' is not a valid %s literal.", tok.Lexeme(), tok.Type()),
		)
	}
	return &LiteralExpr{tok}, nil
}

func (e *LiteralExpr) Token() *token.Token { return e.tok }

// Value returns the value the scanner attached to the literal.
func (e *LiteralExpr) Value() interface{} { return e.tok.Literal() }

func (e *LiteralExpr) Children() []Node { return nil }

func (e *LiteralExpr) Depth() int { return 1 }

func (e *LiteralExpr) Precedence(*Table) Precedence { return PrecPrimary }

func (e *LiteralExpr) Unparse(u *Unparser) {
	u.WriteString(e.tok.Lexeme())
}

// IdentExpr is a reference to a name.
type IdentExpr struct {
	name *token.Token
}

func NewIdentExpr(name *token.Token) (*IdentExpr, error) {
	if err := expectToken(name, "identifier"); err != nil {
		return nil, err
	}
	if name.Type() != token.IDENTIFIER || !isIdentifier(name.Lexeme()) {
		return nil, newNodeError(name, ErrMalformedNode, "Expect identifier.")
	}
	return &IdentExpr{name}, nil
}

func (e *IdentExpr) Token() *token.Token { return e.name }

func (e *IdentExpr) Name() string { return e.name.Lexeme() }

func (e *IdentExpr) Children() []Node { return nil }

func (e *IdentExpr) Depth() int { return 1 }

func (e *IdentExpr) Precedence(*Table) Precedence { return PrecPrimary }

func (e *IdentExpr) Unparse(u *Unparser) {
	u.WriteString(e.name.Lexeme())
}

// isLiteralLexeme reports whether lexeme is spelled the way the scanner
// spells a literal of type typ.
func isLiteralLexeme(typ token.Type, lexeme string) bool {
	switch typ {
	case token.NUMBER:
		return isNumber(lexeme)
	case token.STRING:
		return len(lexeme) >= 2 &&
			lexeme[0] == '"' &&
			lexeme[len(lexeme)-1] == '"' &&
			!strings.Contains(lexeme[1:len(lexeme)-1], `"`)
	}
	// true, false and nil are spelled like their type
	return lexeme == string(typ)
}

// number --> digits ( "." digits )? ;
func isNumber(lexeme string) bool {
	whole, frac, hasFrac := strings.Cut(lexeme, ".")
	return isDigits(whole) && (!hasFrac || isDigits(frac))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isIdentifier(lexeme string) bool {
	if _, keyword := token.Keywords[lexeme]; keyword {
		return false
	}
	for i, r := range lexeme {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return lexeme != ""
}
