package ast

import "github.com/ltungv/dry/internal/token"

// CallExpr is `callee(args...)`. It keeps the opening parenthesis as its
// token so errors about the call point at the argument list.
type CallExpr struct {
	paren  *token.Token
	callee Expr
	args   []Expr
	depth  int
}

func NewCallExpr(paren *token.Token, callee Expr, args []Expr) (*CallExpr, error) {
	if err := expectToken(paren, "'('"); err != nil {
		return nil, err
	}
	if paren.Type() != token.LEFT_PAREN {
		return nil, newNodeError(paren, ErrMalformedNode, "Expect '(' to start a call.")
	}
	children := make([]Expr, 0, len(args)+1)
	children = append(children, callee)
	children = append(children, args...)
	depth, err := childDepth(paren, children...)
	if err != nil {
		return nil, err
	}
	return &CallExpr{paren, callee, children[1:], depth}, nil
}

func (e *CallExpr) Token() *token.Token { return e.paren }

func (e *CallExpr) Callee() Expr { return e.callee }

func (e *CallExpr) Args() []Expr {
	args := make([]Expr, len(e.args))
	copy(args, e.args)
	return args
}

func (e *CallExpr) Children() []Node {
	children := make([]Node, 0, len(e.args)+1)
	children = append(children, e.callee)
	for _, arg := range e.args {
		children = append(children, arg)
	}
	return children
}

func (e *CallExpr) Depth() int { return e.depth }

func (e *CallExpr) Precedence(*Table) Precedence { return PrecCall }

func (e *CallExpr) Unparse(u *Unparser) {
	u.Operand(e.callee, Operator{Precedence: PrecCall, Assoc: AssocLeft}, LeftOperand)
	u.WriteString("(")
	for i, arg := range e.args {
		if i > 0 {
			u.WriteString(", ")
		}
		u.Node(arg)
	}
	u.WriteString(")")
}
