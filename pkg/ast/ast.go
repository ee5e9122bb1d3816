// Package ast defines the syntax tree produced by the parser and the
// renderer that turns it back into canonical BASIC source text.
//
// Expressions and statements are closed sum types: the Expression and
// Statement interfaces carry unexported marker methods, so every variant is
// declared in this package and a type switch over them can be checked for
// exhaustiveness. Every node renders itself; rendering never fails for a
// well-formed tree and panics with an InvariantError when a node is missing a
// field its variant requires.
package ast

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// Node is implemented by every expression and statement.
type Node interface {
	// Render writes the canonical source text of the node.
	Render(sb *strings.Builder)
}

// Expression is a value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is one colon-separated statement of a line.
type Statement interface {
	Node
	// Indentation returns the whitespace that preceded the statement.
	Indentation() string
	// SetIndentation records the whitespace that preceded the statement.
	SetIndentation(indent string)
	statementNode()
}

// stmt is embedded by every statement variant.
type stmt struct {
	Indent string
}

func (s *stmt) Indentation() string          { return s.Indent }
func (s *stmt) SetIndentation(indent string) { s.Indent = indent }
func (s *stmt) statementNode()               {}

// InvariantError reports a tree that no parser run can produce. It is raised
// with panic and must not be recovered: it indicates a defect in the code
// that built the tree.
type InvariantError struct {
	Node  string
	Field string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("ast: %s is missing required %s", e.Node, e.Field)
}

// require panics with an InvariantError when present is false.
func require(present bool, node, field string) {
	if !present {
		panic(InvariantError{Node: node, Field: field})
	}
}

// String renders any node to a string.
func String(n Node) string {
	var sb strings.Builder
	n.Render(&sb)
	return sb.String()
}

// renderExpr writes e, panicking when it is nil.
func renderExpr(sb *strings.Builder, e Expression, node, field string) {
	require(e != nil, node, field)
	e.Render(sb)
}

// writeList writes expressions separated by ", ".
func writeList(sb *strings.Builder, list []Expression, node string) {
	for i, e := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		renderExpr(sb, e, node, "list element")
	}
}

// writeOptionalArgs writes a comma-separated argument tail in which nil
// entries stand for omitted positions. A comma is always written between
// positions; the space after it is dropped only before a final omitted
// position, so "1, , 0" and "1," both survive a round trip.
func writeOptionalArgs(sb *strings.Builder, args []Expression) {
	last := len(args) - 1
	for i, e := range args {
		if i > 0 {
			sb.WriteByte(',')
			if e != nil || i < last {
				sb.WriteByte(' ')
			}
		}
		if e != nil {
			e.Render(sb)
		}
	}
}

// writeTokens writes the text of each token separated by ", ".
func writeTokens(sb *strings.Builder, toks []token.Token) {
	for i, t := range toks {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.Text)
	}
}

// writeStatements writes nested statements separated by ": ".
func writeStatements(sb *strings.Builder, list []Statement, node string) {
	require(len(list) > 0, node, "statement list")
	for i, s := range list {
		if i > 0 {
			sb.WriteString(": ")
		}
		s.Render(sb)
	}
}
