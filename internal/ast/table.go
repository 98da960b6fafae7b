package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ltungv/dry/internal/token"
)

// Precedence is the binding strength of an operator. Higher binds tighter.
type Precedence int

const (
	// PrecLowest is used for operators the table does not know about.
	PrecLowest Precedence = 0
	// PrecCall is the precedence of call expressions. Table entries must be
	// below it.
	PrecCall Precedence = 1000
	// PrecPrimary is the precedence of literals and identifiers.
	PrecPrimary Precedence = 1001
)

// Precedence levels of DefaultTable.
const (
	PrecOr Precedence = iota + 1
	PrecAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecComparison
	PrecShift
	PrecTerm
	PrecFactor
	PrecPower
	PrecUnary
)

// Assoc is the way operators of the same precedence group.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNone
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	case AssocNone:
		return "none"
	}
	return fmt.Sprintf("Assoc(%d)", int(a))
}

// ParseAssoc is the inverse of Assoc.String.
func ParseAssoc(s string) (Assoc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AssocLeft, nil
	case "right":
		return AssocRight, nil
	case "none", "nonassoc":
		return AssocNone, nil
	}
	return 0, fmt.Errorf("unknown associativity %q", s)
}

// BinaryBuilder constructs the node of a binary operator.
type BinaryBuilder func(op *token.Token, left, right Expr) (Expr, error)

// UnaryBuilder constructs the node of a prefix operator.
type UnaryBuilder func(op *token.Token, operand Expr) (Expr, error)

// Operator describes a binary operator.
type Operator struct {
	Type       token.Type
	Precedence Precedence
	Assoc      Assoc
	Build      BinaryBuilder
}

// UnaryOperator describes a prefix operator.
type UnaryOperator struct {
	Type       token.Type
	Precedence Precedence
	Build      UnaryBuilder
}

// Table holds the precedence and associativity of every operator of a
// grammar. A table is never modified after NewTable returns, it can be shared
// between goroutines.
type Table struct {
	binary map[token.Type]Operator
	unary  map[token.Type]UnaryOperator
}

// NewTable validates the operators and builds a table from them.
func NewTable(binary []Operator, unary []UnaryOperator) (*Table, error) {
	t := &Table{
		binary: make(map[token.Type]Operator, len(binary)),
		unary:  make(map[token.Type]UnaryOperator, len(unary)),
	}

	levels := make(map[Precedence]Operator)
	for _, op := range binary {
		if _, dup := t.binary[op.Type]; dup {
			return nil, fmt.Errorf("%w: binary operator '%s' is defined twice", ErrInvalidTable, op.Type)
		}
		if err := checkLevel(op.Type, op.Precedence); err != nil {
			return nil, err
		}
		if op.Build == nil {
			return nil, fmt.Errorf("%w: binary operator '%s' has no builder", ErrInvalidTable, op.Type)
		}
		if other, ok := levels[op.Precedence]; ok && other.Assoc != op.Assoc {
			return nil, fmt.Errorf(
				"%w: '%s' is %s-associative but '%s' at the same precedence is %s-associative",
				ErrInvalidTable, op.Type, op.Assoc, other.Type, other.Assoc,
			)
		}
		levels[op.Precedence] = op
		t.binary[op.Type] = op
	}

	for _, op := range unary {
		if _, dup := t.unary[op.Type]; dup {
			return nil, fmt.Errorf("%w: unary operator '%s' is defined twice", ErrInvalidTable, op.Type)
		}
		if err := checkLevel(op.Type, op.Precedence); err != nil {
			return nil, err
		}
		if op.Build == nil {
			return nil, fmt.Errorf("%w: unary operator '%s' has no builder", ErrInvalidTable, op.Type)
		}
		// A prefix operator sharing a level with a binary one makes
		// `a OP -b OP c` ambiguous to the renderer.
		if other, ok := levels[op.Precedence]; ok {
			return nil, fmt.Errorf(
				"%w: unary '%s' shares precedence %d with binary '%s'",
				ErrInvalidTable, op.Type, op.Precedence, other.Type,
			)
		}
		t.unary[op.Type] = op
	}
	return t, nil
}

func checkLevel(typ token.Type, prec Precedence) error {
	if prec <= PrecLowest || prec >= PrecCall {
		return fmt.Errorf(
			"%w: precedence %d of '%s' is outside (%d, %d)",
			ErrInvalidTable, prec, typ, PrecLowest, PrecCall,
		)
	}
	return nil
}

// Binary returns the binary operator of the given type.
func (t *Table) Binary(typ token.Type) (Operator, bool) {
	op, ok := t.binary[typ]
	return op, ok
}

// Unary returns the prefix operator of the given type.
func (t *Table) Unary(typ token.Type) (UnaryOperator, bool) {
	op, ok := t.unary[typ]
	return op, ok
}

// BinaryOperator is like Binary, but an unknown type yields a
// non-associative operator of the lowest precedence so that rendering stays
// unambiguous.
func (t *Table) BinaryOperator(typ token.Type) Operator {
	if op, ok := t.binary[typ]; ok {
		return op
	}
	return Operator{Type: typ, Precedence: PrecLowest, Assoc: AssocNone}
}

// BinaryOperators returns the binary operators ordered by precedence.
func (t *Table) BinaryOperators() []Operator {
	ops := make([]Operator, 0, len(t.binary))
	for _, op := range t.binary {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Precedence != ops[j].Precedence {
			return ops[i].Precedence < ops[j].Precedence
		}
		return ops[i].Type < ops[j].Type
	})
	return ops
}

// UnaryOperators returns the prefix operators ordered by precedence.
func (t *Table) UnaryOperators() []UnaryOperator {
	ops := make([]UnaryOperator, 0, len(t.unary))
	for _, op := range t.unary {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Precedence != ops[j].Precedence {
			return ops[i].Precedence < ops[j].Precedence
		}
		return ops[i].Type < ops[j].Type
	})
	return ops
}

// DefaultBinaryOperators returns the binary operators of DefaultTable.
func DefaultBinaryOperators() []Operator {
	return []Operator{
		{token.OR, PrecOr, AssocLeft, buildLogical},
		{token.AND, PrecAnd, AssocLeft, buildLogical},
		{token.PIPE, PrecBitOr, AssocLeft, buildBitwise},
		{token.CARET, PrecBitXor, AssocLeft, buildBitwise},
		{token.AMPERSAND, PrecBitAnd, AssocLeft, buildBitwise},
		{token.EQUAL_EQUAL, PrecEquality, AssocLeft, buildComparison},
		{token.BANG_EQUAL, PrecEquality, AssocLeft, buildComparison},
		{token.LESS, PrecComparison, AssocNone, buildComparison},
		{token.LESS_EQUAL, PrecComparison, AssocNone, buildComparison},
		{token.GREATER, PrecComparison, AssocNone, buildComparison},
		{token.GREATER_EQUAL, PrecComparison, AssocNone, buildComparison},
		{token.LESS_LESS, PrecShift, AssocLeft, buildBitwise},
		{token.GREATER_GREATER, PrecShift, AssocLeft, buildBitwise},
		{token.PLUS, PrecTerm, AssocLeft, buildArithmetic},
		{token.MINUS, PrecTerm, AssocLeft, buildArithmetic},
		{token.STAR, PrecFactor, AssocLeft, buildArithmetic},
		{token.SLASH, PrecFactor, AssocLeft, buildArithmetic},
		{token.PERCENT, PrecFactor, AssocLeft, buildArithmetic},
		{token.STAR_STAR, PrecPower, AssocRight, buildArithmetic},
	}
}

// DefaultUnaryOperators returns the prefix operators of DefaultTable.
func DefaultUnaryOperators() []UnaryOperator {
	return []UnaryOperator{
		{token.MINUS, PrecUnary, buildUnary},
		{token.BANG, PrecUnary, buildUnary},
		{token.TILDE, PrecUnary, buildUnary},
	}
}

// DefaultTable returns a new table for the standard grammar.
func DefaultTable() *Table {
	t, err := NewTable(DefaultBinaryOperators(), DefaultUnaryOperators())
	if err != nil {
		panic(err)
	}
	return t
}
