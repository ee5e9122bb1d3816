package parser

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gobasic/pkg/token"
)

// SyntaxError is a user-facing parse failure blamed on one token.
type SyntaxError struct {
	// Token is the offending token, or a synthesized end-of-line token when
	// the input ran out.
	Token token.Token
	// Message is a short diagnostic such as "Expected: )".
	Message string
	// Err is an underlying cause, if any.
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// Unwrap returns the underlying cause.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Line returns the 1-based line of the blamed token.
func (e *SyntaxError) Line() int { return e.Token.Line }

// Column returns the 1-based column of the blamed token.
func (e *SyntaxError) Column() int { return e.Token.Column }

// AsSyntaxError unwraps err to a *SyntaxError.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Diagnostic messages.
const (
	msgExpression      = "Expected: expression"
	msgEndOfStatement  = "Expected: end of statement"
	msgIdentifier      = "Expected: identifier"
	msgLineOrLabel     = "Expected: line number or label"
	msgStatement       = "Expected: statement"
	msgTo              = "Expected: TO"
	msgVariable        = "Expected: variable"
	msgNestedProcedure = "SUB or FUNCTION not allowed in control statement"
	msgMetacommand     = "Metacommand error"
	msgIllegal         = "Unexpected character"
	msgTypeCharacter   = "Identifier cannot end with %, &, !, #, $ or @"
)

func newError(t token.Token, message string) *SyntaxError {
	if t.Kind == token.Illegal && t.Text != "" {
		message = msgIllegal
	}
	return &SyntaxError{Token: t, Message: message}
}

func expected(t token.Token, what string) *SyntaxError {
	return newError(t, "Expected: "+what)
}

// errTrial is returned by trial parses. It carries no position so failing
// trials allocate nothing.
var errTrial = errors.New("trial parse failed")
