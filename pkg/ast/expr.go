package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// Literal is a number or string constant. Its token text is rendered as
// written, so &H10 and 1.5E+3 keep their spelling.
type Literal struct {
	Token token.Token
}

// Identifier is a variable, array, constant or procedure name.
type Identifier struct {
	Token token.Token
}

// Name returns the identifier as written.
func (e *Identifier) Name() string { return e.Token.Text }

// Binary is an infix operation. Op is PERIOD for record field access.
type Binary struct {
	Op    token.Kind
	Left  Expression
	Right Expression
}

// Unary is a prefix operation: negation, NOT, or the # that marks a file
// number.
type Unary struct {
	Op      token.Kind
	Operand Expression
}

// Paren is a parenthesized expression.
type Paren struct {
	Inner Expression
}

// CallOrIndex is name(args). The grammar cannot tell an array element from a
// FUNCTION call, so both share this node.
type CallOrIndex struct {
	Subject Expression
	Args    []Expression
}

// KeywordFunction is a call of a built-in function such as LEFT$ or TIMER.
type KeywordFunction struct {
	Function token.Token
	Args     []Expression
	// Parenthesized is false for parameterless forms such as RND or TIMER.
	Parenthesized bool
}

func (*Literal) expressionNode()         {}
func (*Identifier) expressionNode()      {}
func (*Binary) expressionNode()          {}
func (*Unary) expressionNode()           {}
func (*Paren) expressionNode()           {}
func (*CallOrIndex) expressionNode()     {}
func (*KeywordFunction) expressionNode() {}

func (e *Literal) Render(sb *strings.Builder) {
	require(e.Token.Text != "", "Literal", "text")
	sb.WriteString(e.Token.Text)
}

func (e *Identifier) Render(sb *strings.Builder) {
	require(e.Token.Text != "", "Identifier", "name")
	sb.WriteString(e.Token.Text)
}

func (e *Binary) Render(sb *strings.Builder) {
	renderExpr(sb, e.Left, "Binary", "left operand")
	if e.Op == token.Period {
		sb.WriteByte('.')
	} else {
		require(e.Op.IsOperator(), "Binary", "operator")
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
	}
	renderExpr(sb, e.Right, "Binary", "right operand")
}

func (e *Unary) Render(sb *strings.Builder) {
	switch e.Op {
	case token.Minus:
		sb.WriteByte('-')
	case token.Hash:
		sb.WriteByte('#')
	case token.NOT:
		sb.WriteString("NOT ")
	default:
		panic(InvariantError{Node: "Unary", Field: "operator"})
	}
	renderExpr(sb, e.Operand, "Unary", "operand")
}

func (e *Paren) Render(sb *strings.Builder) {
	sb.WriteByte('(')
	renderExpr(sb, e.Inner, "Paren", "inner expression")
	sb.WriteByte(')')
}

func (e *CallOrIndex) Render(sb *strings.Builder) {
	renderExpr(sb, e.Subject, "CallOrIndex", "subject")
	sb.WriteByte('(')
	writeList(sb, e.Args, "CallOrIndex")
	sb.WriteByte(')')
}

func (e *KeywordFunction) Render(sb *strings.Builder) {
	require(e.Function.Kind.IsKeyword(), "KeywordFunction", "function keyword")
	sb.WriteString(e.Function.Kind.String())
	if e.Parenthesized {
		sb.WriteByte('(')
		writeList(sb, e.Args, "KeywordFunction")
		sb.WriteByte(')')
	}
}

// IsIndexSubject reports whether e may be followed by a parenthesized
// argument list: a name, a field access or another subscript.
func IsIndexSubject(e Expression) bool {
	switch x := e.(type) {
	case *Identifier, *CallOrIndex:
		return true
	case *Binary:
		return x.Op == token.Period
	default:
		return false
	}
}

// IsAssignable reports whether e can stand on the left of an assignment.
func IsAssignable(e Expression) bool {
	return IsIndexSubject(e)
}
