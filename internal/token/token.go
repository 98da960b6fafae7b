package token

import "fmt"

// Pos is the location of the first character of a token in the source.
// Lines and columns start at 1.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents group a characters with additional information that was
// obtained during the scanning phase. A token is never modified after it was
// created.
type Token struct {
	typ     Type
	lexeme  string
	literal interface{}
	pos     Pos
}

// New creates a new token
func New(typ Type, lexeme string, literal interface{}, line, column int) *Token {
	return &Token{typ, lexeme, literal, Pos{line, column}}
}

// Type returns the lexical category of the token.
func (t *Token) Type() Type {
	return t.typ
}

// Lexeme returns the source text the token was scanned from.
func (t *Token) Lexeme() string {
	return t.lexeme
}

// Literal returns the runtime value of number, string and boolean tokens.
func (t *Token) Literal() interface{} {
	return t.literal
}

func (t *Token) Pos() Pos {
	return t.pos
}

func (t *Token) Line() int {
	return t.pos.Line
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.typ, t.lexeme, t.literal)
}

// Type is a just a wrapped string used to represent token's type. For
// operators and keywords the value is the canonical spelling of the token.
type Type string

const (
	// Punctuation
	LEFT_PAREN  Type = "("
	RIGHT_PAREN Type = ")"
	COMMA       Type = ","

	// Arithmetic operators
	PLUS      Type = "+"
	MINUS     Type = "-"
	STAR      Type = "*"
	STAR_STAR Type = "**"
	SLASH     Type = "/"
	PERCENT   Type = "%"

	// Bitwise operators
	AMPERSAND       Type = "&"
	PIPE            Type = "|"
	CARET           Type = "^"
	TILDE           Type = "~"
	LESS_LESS       Type = "<<"
	GREATER_GREATER Type = ">>"

	// Comparison operators
	BANG          Type = "!"
	BANG_EQUAL    Type = "!="
	EQUAL_EQUAL   Type = "=="
	GREATER       Type = ">"
	GREATER_EQUAL Type = ">="
	LESS          Type = "<"
	LESS_EQUAL    Type = "<="

	// Literals
	IDENTIFIER Type = "identifier"
	STRING     Type = "string"
	NUMBER     Type = "number"

	// Keywords
	AND   Type = "and"
	OR    Type = "or"
	TRUE  Type = "true"
	FALSE Type = "false"
	NIL   Type = "nil"

	EOF Type = "eof"
)

// Keywords maps reserved words to their token type.
var Keywords = map[string]Type{
	"and":   AND,
	"or":    OR,
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,
}

var operators = map[string]Type{
	"+":   PLUS,
	"-":   MINUS,
	"*":   STAR,
	"**":  STAR_STAR,
	"/":   SLASH,
	"%":   PERCENT,
	"&":   AMPERSAND,
	"|":   PIPE,
	"^":   CARET,
	"~":   TILDE,
	"<<":  LESS_LESS,
	">>":  GREATER_GREATER,
	"!":   BANG,
	"!=":  BANG_EQUAL,
	"==":  EQUAL_EQUAL,
	">":   GREATER,
	">=":  GREATER_EQUAL,
	"<":   LESS,
	"<=":  LESS_EQUAL,
	"and": AND,
	"or":  OR,
}

// LookupOperator returns the type of the operator spelled by symbol.
func LookupOperator(symbol string) (Type, bool) {
	typ, ok := operators[symbol]
	return typ, ok
}
