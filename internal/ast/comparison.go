package ast

import "github.com/ltungv/dry/internal/token"

var comparisonOperators = map[token.Type]struct{}{
	token.EQUAL_EQUAL:   {},
	token.BANG_EQUAL:    {},
	token.GREATER:       {},
	token.GREATER_EQUAL: {},
	token.LESS:          {},
	token.LESS_EQUAL:    {},
}

// ComparisonExpr compares its operands for equality or order.
type ComparisonExpr struct {
	BinaryExpr
}

func NewComparisonExpr(op *token.Token, left, right Expr) (*ComparisonExpr, error) {
	base, err := newBinaryExpr(op, left, right, comparisonOperators, "a comparison")
	if err != nil {
		return nil, err
	}
	return &ComparisonExpr{base}, nil
}

func buildComparison(op *token.Token, left, right Expr) (Expr, error) {
	e, err := NewComparisonExpr(op, left, right)
	if err != nil {
		return nil, err
	}
	return e, nil
}
