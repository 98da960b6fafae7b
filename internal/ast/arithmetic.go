package ast

import "github.com/ltungv/dry/internal/token"

var arithmeticOperators = map[token.Type]struct{}{
	token.PLUS:      {},
	token.MINUS:     {},
	token.STAR:      {},
	token.SLASH:     {},
	token.PERCENT:   {},
	token.STAR_STAR: {},
}

// ArithmeticExpr is one of `a + b`, `a - b`, `a * b`, `a / b`, `a % b` and
// `a ** b`.
type ArithmeticExpr struct {
	BinaryExpr
}

func NewArithmeticExpr(op *token.Token, left, right Expr) (*ArithmeticExpr, error) {
	base, err := newBinaryExpr(op, left, right, arithmeticOperators, "an arithmetic")
	if err != nil {
		return nil, err
	}
	return &ArithmeticExpr{base}, nil
}

func buildArithmetic(op *token.Token, left, right Expr) (Expr, error) {
	e, err := NewArithmeticExpr(op, left, right)
	if err != nil {
		return nil, err
	}
	return e, nil
}
