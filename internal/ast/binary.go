package ast

import (
	"fmt"

	"github.com/ltungv/dry/internal/token"
)

// BinaryExpr holds an operator and its two operands. It is embedded by the
// concrete binary expressions, which decide the operators they accept.
type BinaryExpr struct {
	op    *token.Token
	left  Expr
	right Expr
	depth int
}

func newBinaryExpr(
	op *token.Token,
	left Expr,
	right Expr,
	operators map[token.Type]struct{},
	category string,
) (BinaryExpr, error) {
	if err := expectToken(op, "operator"); err != nil {
		return BinaryExpr{}, err
	}
	if _, ok := operators[op.Type()]; !ok {
		return BinaryExpr{}, newNodeError(
			op,
			ErrUnknownOperator,
			fmt.Sprintf("'%s' is not %s operator.", op.Type(), category),
		)
	}
	depth, err := childDepth(op, left, right)
	if err != nil {
		return BinaryExpr{}, err
	}
	return BinaryExpr{op, left, right, depth}, nil
}

func (e *BinaryExpr) Token() *token.Token { return e.op }

func (e *BinaryExpr) Op() token.Type { return e.op.Type() }

func (e *BinaryExpr) Left() Expr { return e.left }

func (e *BinaryExpr) Right() Expr { return e.right }

func (e *BinaryExpr) Children() []Node { return []Node{e.left, e.right} }

func (e *BinaryExpr) Depth() int { return e.depth }

func (e *BinaryExpr) Precedence(t *Table) Precedence {
	return t.BinaryOperator(e.op.Type()).Precedence
}

// Unparse renders `left op right`, parenthesizing operands as the table of u
// requires.
func (e *BinaryExpr) Unparse(u *Unparser) {
	u.Infix(e.left, string(e.op.Type()), e.right, u.Table().BinaryOperator(e.op.Type()))
}
