package ast

import (
	"fmt"

	"github.com/ltungv/dry/internal/token"
)

var unaryOperators = map[token.Type]struct{}{
	token.MINUS: {},
	token.BANG:  {},
	token.TILDE: {},
}

// UnaryExpr applies a prefix operator: `-x`, `!x` or `~x`.
type UnaryExpr struct {
	op      *token.Token
	operand Expr
	depth   int
}

func NewUnaryExpr(op *token.Token, operand Expr) (*UnaryExpr, error) {
	if err := expectToken(op, "operator"); err != nil {
		return nil, err
	}
	if _, ok := unaryOperators[op.Type()]; !ok {
		return nil, newNodeError(op, ErrUnknownOperator, fmt.Sprintf("'%s' is not a unary operator.", op.Type()))
	}
	depth, err := childDepth(op, operand)
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{op, operand, depth}, nil
}

func buildUnary(op *token.Token, operand Expr) (Expr, error) {
	e, err := NewUnaryExpr(op, operand)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *UnaryExpr) Token() *token.Token { return e.op }

func (e *UnaryExpr) Op() token.Type { return e.op.Type() }

func (e *UnaryExpr) Operand() Expr { return e.operand }

func (e *UnaryExpr) Children() []Node { return []Node{e.operand} }

func (e *UnaryExpr) Depth() int { return e.depth }

func (e *UnaryExpr) Precedence(t *Table) Precedence {
	if op, ok := t.Unary(e.op.Type()); ok {
		return op.Precedence
	}
	return PrecLowest
}

func (e *UnaryExpr) Unparse(u *Unparser) {
	// Operands of an operator missing from the table are grouped unless they
	// are calls or primaries.
	prec := PrecCall
	if op, ok := u.Table().Unary(e.op.Type()); ok {
		prec = op.Precedence
	}
	u.Prefix(string(e.op.Type()), e.operand, prec)
}
