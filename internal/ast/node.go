package ast

import (
	"fmt"
	"reflect"

	"github.com/ltungv/dry/internal/token"
)

// MaxDepth is the deepest tree the constructors accept. A leaf has depth 1.
const MaxDepth = 10000

// Node is implemented by every node of the syntax tree.
type Node interface {
	// Token returns the token that defines the node, e.g. the operator of a
	// binary expression or the lexeme of a literal.
	Token() *token.Token
	// Children returns the direct children in source order. The returned
	// slice belongs to the caller.
	Children() []Node
	// Depth returns the height of the subtree rooted at the node.
	Depth() int
	// Unparse writes the source text of the subtree to u.
	Unparse(u *Unparser)
}

// Expr is a node that can appear as an operand.
type Expr interface {
	Node
	// Precedence reports how tightly the node binds when it appears as an
	// operand, according to t.
	Precedence(t *Table) Precedence
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// childDepth checks that every child is present and returns the depth of a
// node holding them.
func childDepth(tok *token.Token, children ...Expr) (int, error) {
	depth := 0
	for i, child := range children {
		if isNil(child) {
			return 0, newNodeError(tok, ErrMalformedNode, fmt.Sprintf("Missing operand %d.", i+1))
		}
		if d := child.Depth(); d > depth {
			depth = d
		}
	}
	if depth+1 > MaxDepth {
		return 0, newNodeError(tok, ErrTooDeep, fmt.Sprintf("Expression is nested deeper than %d.", MaxDepth))
	}
	return depth + 1, nil
}

func expectToken(tok *token.Token, what string) error {
	if tok == nil {
		return newNodeError(nil, ErrMalformedNode, fmt.Sprintf("Missing %s token.", what))
	}
	return nil
}
