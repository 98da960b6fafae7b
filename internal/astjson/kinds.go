package astjson

import (
	"fmt"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/token"
)

var builtinKinds = []struct {
	kind   string
	sample ast.Expr
	build  Builder
}{
	{"literal", (*ast.LiteralExpr)(nil), leaf(func(tok *token.Token) (ast.Expr, error) { return ast.NewLiteralExpr(tok) })},
	{"ident", (*ast.IdentExpr)(nil), leaf(func(tok *token.Token) (ast.Expr, error) { return ast.NewIdentExpr(tok) })},
	{"unary", (*ast.UnaryExpr)(nil), buildUnary},
	{"arithmetic", (*ast.ArithmeticExpr)(nil), binary(func(op *token.Token, l, r ast.Expr) (ast.Expr, error) {
		return ast.NewArithmeticExpr(op, l, r)
	})},
	{"comparison", (*ast.ComparisonExpr)(nil), binary(func(op *token.Token, l, r ast.Expr) (ast.Expr, error) {
		return ast.NewComparisonExpr(op, l, r)
	})},
	{"logical", (*ast.LogicalExpr)(nil), binary(func(op *token.Token, l, r ast.Expr) (ast.Expr, error) {
		return ast.NewLogicalExpr(op, l, r)
	})},
	{"bitwise", (*ast.BitwiseExpr)(nil), binary(func(op *token.Token, l, r ast.Expr) (ast.Expr, error) {
		return ast.NewBitwiseExpr(op, l, r)
	})},
	{"call", (*ast.CallExpr)(nil), buildCall},
}

func arity(children []ast.Expr, want int) error {
	if len(children) != want {
		return fmt.Errorf("%w: expect %d children, got %d", ErrInvalidDocument, want, len(children))
	}
	return nil
}

func leaf(build func(*token.Token) (ast.Expr, error)) Builder {
	return func(tok *token.Token, children []ast.Expr) (ast.Expr, error) {
		if err := arity(children, 0); err != nil {
			return nil, err
		}
		return orNil(build(tok))
	}
}

func binary(build func(op *token.Token, left, right ast.Expr) (ast.Expr, error)) Builder {
	return func(tok *token.Token, children []ast.Expr) (ast.Expr, error) {
		if err := arity(children, 2); err != nil {
			return nil, err
		}
		return orNil(build(tok, children[0], children[1]))
	}
}

func buildUnary(tok *token.Token, children []ast.Expr) (ast.Expr, error) {
	if err := arity(children, 1); err != nil {
		return nil, err
	}
	return orNil(ast.NewUnaryExpr(tok, children[0]))
}

func buildCall(tok *token.Token, children []ast.Expr) (ast.Expr, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: call has no callee", ErrInvalidDocument)
	}
	return orNil(ast.NewCallExpr(tok, children[0], children[1:]))
}

// orNil keeps a failed constructor from leaking a typed nil into an
// ast.Expr.
func orNil(e ast.Expr, err error) (ast.Expr, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
