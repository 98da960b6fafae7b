package ast

import (
	"errors"
	"fmt"

	"github.com/ltungv/dry/internal/token"
)

var (
	// ErrMalformedNode is returned when a required token or child is missing.
	ErrMalformedNode = errors.New("malformed node")
	// ErrUnknownOperator is returned when an operator token does not belong
	// to the node being built.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrTooDeep is returned when a node would exceed MaxDepth.
	ErrTooDeep = errors.New("expression nested too deeply")
	// ErrInvalidTable is returned by NewTable for inconsistent operators.
	ErrInvalidTable = errors.New("invalid operator table")
)

// NodeError wraps the error message returned by a node constructor with
// additional information on where the node was going to be placed.
type NodeError struct {
	token   *token.Token
	message string
	err     error
}

func newNodeError(tok *token.Token, err error, message string) error {
	return &NodeError{tok, message, err}
}

func (err *NodeError) Error() string {
	if err.token == nil {
		return fmt.Sprintf("Error: %s", err.message)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line(),
		err.token.Lexeme(),
		err.message,
	)
}

func (err *NodeError) Unwrap() error {
	return err.err
}

// Token returns the token of the rejected node, it may be nil.
func (err *NodeError) Token() *token.Token {
	return err.token
}
