package ast

import "github.com/ltungv/dry/internal/token"

var bitwiseOperators = map[token.Type]struct{}{
	token.AMPERSAND:       {},
	token.PIPE:            {},
	token.CARET:           {},
	token.LESS_LESS:       {},
	token.GREATER_GREATER: {},
}

// BitwiseExpr is a bitwise and, or, xor or shift.
type BitwiseExpr struct {
	BinaryExpr
}

func NewBitwiseExpr(op *token.Token, left, right Expr) (*BitwiseExpr, error) {
	base, err := newBinaryExpr(op, left, right, bitwiseOperators, "a bitwise")
	if err != nil {
		return nil, err
	}
	return &BitwiseExpr{base}, nil
}

func buildBitwise(op *token.Token, left, right Expr) (Expr, error) {
	e, err := NewBitwiseExpr(op, left, right)
	if err != nil {
		return nil, err
	}
	return e, nil
}
