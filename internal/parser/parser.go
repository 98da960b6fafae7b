package parser

import (
	"fmt"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/report"
	"github.com/ltungv/dry/internal/scanner"
	"github.com/ltungv/dry/internal/token"
)

// Parser composes the syntax tree of an expression from the sequence of
// tokens produced by the scanner. Operators and their binding are taken from
// the table the parser is created with, the same table must be used to
// render the tree again.
//
// Grammar
//
//	expression --> binary(1) ;
//	binary(p)  --> prefix ( OP binary(p') )*     where prec(OP) >= p
//	prefix     --> UNARY_OP binary(prec(UNARY_OP))
//	             | postfix ;
//	postfix    --> primary ( "(" args? ")" )* ;
//	args       --> expression ( "," expression )* ;
//	primary    --> NUMBER | STRING | IDENT
//	             | "true" | "false" | "nil"
//	             | "(" expression ")" ;
//
// p' is prec(OP) for right-associative operators and prec(OP)+1 otherwise.
// Chaining two non-associative operators of the same precedence is an error.
type Parser struct {
	current  int
	tokens   []*token.Token
	table    *ast.Table
	reporter report.Reporter
}

// New creates a new parser. The token sequence must end with EOF.
func New(tokens []*token.Token, table *ast.Table, reporter report.Reporter) *Parser {
	return &Parser{0, tokens, table, reporter}
}

// Parse parses a single expression that spans all tokens. On error, the error
// is sent to the reporter and nil is returned.
func (parser *Parser) Parse() ast.Expr {
	expr, err := parser.expression()
	if err == nil && !parser.isEOF() {
		err = newParseError(parser.peek(), "Expect end of expression.")
	}
	if err != nil {
		parser.reporter.Report(err)
		return nil
	}
	return expr
}

// ParseExpr scans and parses src. The returned error joins every scan and
// parse error.
func ParseExpr(src string, table *ast.Table) (ast.Expr, error) {
	collector := report.NewCollector()
	tokens := scanner.New([]rune(src), collector).Scan()
	if collector.HadError() {
		return nil, collector.Err()
	}
	expr := New(tokens, table, collector).Parse()
	if collector.HadError() {
		return nil, collector.Err()
	}
	return expr, nil
}

// expression --> binary(1) ;
func (parser *Parser) expression() (ast.Expr, error) {
	return parser.binary(ast.PrecLowest + 1)
}

// Creates a nested tree of binary operator nodes by precedence climbing.
// Operators binding looser than minPrec are left to the caller.
//
// binary(p) --> prefix ( OP binary(p') )* ;
func (parser *Parser) binary(minPrec ast.Precedence) (ast.Expr, error) {
	expr, err := parser.prefix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := parser.table.Binary(parser.peek().Type())
		if !ok || op.Precedence < minPrec {
			return expr, nil
		}
		tok := parser.advance()

		next := op.Precedence + 1
		if op.Assoc == ast.AssocRight {
			next = op.Precedence
		}
		right, err := parser.binary(next)
		if err != nil {
			return nil, err
		}
		if expr, err = op.Build(tok, expr, right); err != nil {
			return nil, wrapNodeError(tok, err)
		}

		if op.Assoc == ast.AssocNone {
			if other, ok := parser.table.Binary(parser.peek().Type()); ok && other.Precedence == op.Precedence {
				return nil, newParseError(
					parser.peek(),
					fmt.Sprintf("Operator '%s' is non-associative, use parentheses.", other.Type),
				)
			}
		}
	}
}

// prefix --> UNARY_OP binary(prec(UNARY_OP)) | postfix ;
func (parser *Parser) prefix() (ast.Expr, error) {
	op, ok := parser.table.Unary(parser.peek().Type())
	if !ok {
		return parser.postfix()
	}
	tok := parser.advance()
	operand, err := parser.binary(op.Precedence)
	if err != nil {
		return nil, err
	}
	expr, err := op.Build(tok, operand)
	if err != nil {
		return nil, wrapNodeError(tok, err)
	}
	return expr, nil
}

// postfix --> primary ( "(" args? ")" )* ;
func (parser *Parser) postfix() (ast.Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for parser.match(token.LEFT_PAREN) {
		paren := parser.prev()
		args, err := parser.args()
		if err != nil {
			return nil, err
		}
		call, err := ast.NewCallExpr(paren, expr, args)
		if err != nil {
			return nil, wrapNodeError(paren, err)
		}
		expr = call
	}
	return expr, nil
}

// args --> expression ( "," expression )* ;
func (parser *Parser) args() ([]ast.Expr, error) {
	args := make([]ast.Expr, 0)
	if parser.match(token.RIGHT_PAREN) {
		return args, nil
	}
	for {
		arg, err := parser.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !parser.match(token.COMMA) {
			break
		}
	}
	if err := parser.consume(token.RIGHT_PAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return args, nil
}

// primary --> NUMBER | STRING | IDENT | "true" | "false" | "nil"
//           | "(" expression ")" ;
func (parser *Parser) primary() (ast.Expr, error) {
	if parser.match(token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NIL) {
		tok := parser.prev()
		expr, err := ast.NewLiteralExpr(tok)
		if err != nil {
			return nil, wrapNodeError(tok, err)
		}
		return expr, nil
	}
	if parser.match(token.IDENTIFIER) {
		tok := parser.prev()
		expr, err := ast.NewIdentExpr(tok)
		if err != nil {
			return nil, wrapNodeError(tok, err)
		}
		return expr, nil
	}
	if parser.match(token.LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			token.RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, newParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ token.Type, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return newParseError(parser.peek(), message)
}

func (parser *Parser) check(tt token.Type) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Type() == tt
}

func (parser *Parser) advance() *token.Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Type() == token.EOF
}

func (parser *Parser) peek() *token.Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *token.Token {
	return parser.tokens[parser.current-1]
}
