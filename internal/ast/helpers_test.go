package ast

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltungv/dry/internal/token"
)

var testTable = DefaultTable()

func opTok(typ token.Type) *token.Token {
	return token.New(typ, string(typ), nil, 1, 1)
}

func ident(t *testing.T, name string) Expr {
	t.Helper()
	e, err := NewIdentExpr(token.New(token.IDENTIFIER, name, nil, 1, 1))
	require.NoError(t, err)
	return e
}

func num(t *testing.T, lexeme string) Expr {
	t.Helper()
	v, err := strconv.ParseFloat(lexeme, 64)
	require.NoError(t, err)
	e, err := NewLiteralExpr(token.New(token.NUMBER, lexeme, v, 1, 1))
	require.NoError(t, err)
	return e
}

func bin(t *testing.T, typ token.Type, left, right Expr) Expr {
	t.Helper()
	op, ok := testTable.Binary(typ)
	require.True(t, ok, "no binary operator '%s'", typ)
	e, err := op.Build(opTok(typ), left, right)
	require.NoError(t, err)
	return e
}

func un(t *testing.T, typ token.Type, operand Expr) Expr {
	t.Helper()
	e, err := NewUnaryExpr(opTok(typ), operand)
	require.NoError(t, err)
	return e
}

func call(t *testing.T, callee Expr, args ...Expr) Expr {
	t.Helper()
	e, err := NewCallExpr(opTok(token.LEFT_PAREN), callee, args)
	require.NoError(t, err)
	return e
}
