package ast

import (
	"strings"
	"unicode"
)

// Side tells on which side of its parent an operand is.
type Side int

const (
	LeftOperand Side = iota
	RightOperand
)

// Unparser accumulates the text of one rendering. A new Unparser is created
// for every call to SourceCode.
type Unparser struct {
	table *Table
	b     strings.Builder
}

// SourceCode renders the subtree rooted at n using the precedences of t.
func SourceCode(n Node, t *Table) string {
	u := &Unparser{table: t}
	n.Unparse(u)
	return u.b.String()
}

// Table returns the table the text is rendered with.
func (u *Unparser) Table() *Table {
	return u.table
}

// WriteString writes s to the output as is.
func (u *Unparser) WriteString(s string) {
	u.b.WriteString(s)
}

// Node renders n without parentheses.
func (u *Unparser) Node(n Node) {
	n.Unparse(u)
}

// Group renders n inside parentheses.
func (u *Unparser) Group(n Node) {
	u.b.WriteByte('(')
	n.Unparse(u)
	u.b.WriteByte(')')
}

// Operand renders child as the operand on the given side of an operator
// described by parent, adding parentheses when the child would otherwise
// group differently when parsed again.
func (u *Unparser) Operand(child Expr, parent Operator, side Side) {
	if needsParens(child.Precedence(u.table), parent, side) {
		u.Group(child)
		return
	}
	child.Unparse(u)
}

// Prefix renders the operand of a prefix operator with precedence prec.
func (u *Unparser) Prefix(symbol string, operand Expr, prec Precedence) {
	u.b.WriteString(symbol)
	if isWord(symbol) {
		u.b.WriteByte(' ')
	}
	u.Operand(operand, Operator{Precedence: prec, Assoc: AssocRight}, RightOperand)
}

// Infix renders `left symbol right` for the operator op.
func (u *Unparser) Infix(left Expr, symbol string, right Expr, op Operator) {
	u.Operand(left, op, LeftOperand)
	u.b.WriteByte(' ')
	u.b.WriteString(symbol)
	u.b.WriteByte(' ')
	u.Operand(right, op, RightOperand)
}

func needsParens(prec Precedence, parent Operator, side Side) bool {
	switch {
	case prec < parent.Precedence:
		return true
	case prec > parent.Precedence:
		return false
	}
	switch parent.Assoc {
	case AssocLeft:
		return side == RightOperand
	case AssocRight:
		return side == LeftOperand
	}
	return true
}

func isWord(symbol string) bool {
	for _, r := range symbol {
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return symbol != ""
}
