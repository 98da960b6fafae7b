package ast

import "github.com/ltungv/dry/internal/token"

var logicalOperators = map[token.Type]struct{}{
	token.AND: {},
	token.OR:  {},
}

// LogicalExpr is `a and b` or `a or b`.
type LogicalExpr struct {
	BinaryExpr
}

func NewLogicalExpr(op *token.Token, left, right Expr) (*LogicalExpr, error) {
	base, err := newBinaryExpr(op, left, right, logicalOperators, "a logical")
	if err != nil {
		return nil, err
	}
	return &LogicalExpr{base}, nil
}

func buildLogical(op *token.Token, left, right Expr) (Expr, error) {
	e, err := NewLogicalExpr(op, left, right)
	if err != nil {
		return nil, err
	}
	return e, nil
}
