package parser

import (
	"fmt"

	"github.com/ltungv/dry/internal/token"
)

// ParseError wraps the error message returned by the parser with additional
// information on where the error occured.
type ParseError struct {
	token   *token.Token
	message string
	err     error
}

func newParseError(tok *token.Token, message string) error {
	return &ParseError{tok, message, nil}
}

// wrapNodeError reports a rejected node at tok. The message of the node
// error is kept so the cause stays visible.
func wrapNodeError(tok *token.Token, err error) error {
	return &ParseError{tok, fmt.Sprintf("Invalid expression: %v.", err), err}
}

func (err *ParseError) Error() string {
	if err.token.Type() == token.EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line(),
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line(),
		err.token.Lexeme(),
		err.message,
	)
}

func (err *ParseError) Unwrap() error {
	return err.err
}

// Token returns the token the parser stopped at.
func (err *ParseError) Token() *token.Token {
	return err.token
}
