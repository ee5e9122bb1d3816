package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/metacommand"
	"github.com/yaklabco/gobasic/pkg/token"
)

// stmtContext carries what a statement routine may need beyond its own
// tokens.
type stmtContext struct {
	// nested is set inside a single-line IF body.
	nested bool
	// rest consumes the remainder of the line, past any colons, starting at
	// the current statement. It is nil when no more tokens are available.
	rest func() tokens
}

func (p *Parser) parseLine(r tokens) (*ast.CodeLine, error) {
	line := &ast.CodeLine{}

	end := r.Len()
	for i, t := range r.All() {
		if t.Kind == token.Comment && strings.HasPrefix(t.Text, "'") {
			end = i
			break
		}
	}
	if end < r.Len() {
		c := r.At(end)
		if end+1 < r.Len() {
			return nil, newError(r.At(end+1), msgEndOfStatement)
		}
		text, err := p.comment(c)
		if err != nil {
			return nil, err
		}
		line.Comment = text
		line.CommentSpace = c.Space
	}
	body := r.To(end)

	i := 0
	if !body.Empty() && isLineNumber(body.At(0)) {
		line.LineNumber = body.At(0).Text
		i = 1
	}
	if i+1 < body.Len() && body.At(i).Kind == token.Identifier && body.At(i+1).Kind == token.Colon &&
		!token.HasTypeSigil(body.At(i).Text) {
		line.Label = &ast.Label{Name: body.At(i).Text, Indentation: body.At(i).Space}
		i += 2
	}

	for i < body.Len() {
		stmtEnd := i
		for stmtEnd < body.Len() && body.At(stmtEnd).Kind != token.Colon {
			stmtEnd++
		}
		if stmtEnd == i {
			i++
			continue
		}
		consumedLine := false
		ctx := stmtContext{rest: func() tokens {
			consumedLine = true
			return body.From(i)
		}}
		stmt, err := p.parseStatement(body.Slice(i, stmtEnd-i), ctx)
		if err != nil {
			return nil, err
		}
		line.Statements = append(line.Statements, stmt)
		if consumedLine {
			break
		}
		i = stmtEnd + 1
	}
	return line, nil
}

// comment returns the text of a comment token, canonicalizing metacommands
// when enabled.
func (p *Parser) comment(t token.Token) (string, error) {
	if !p.opts.NormalizeMetacommands {
		return t.Text, nil
	}
	text, err := metacommand.Normalize(t.Text)
	if err != nil {
		return "", &SyntaxError{Token: t, Message: msgMetacommand, Err: err}
	}
	return text, nil
}

// isLineNumber reports whether t is an unsigned integer literal usable as a
// line number.
func isLineNumber(t token.Token) bool {
	if t.Kind != token.Number || t.Text == "" {
		return false
	}
	for i := range len(t.Text) {
		if t.Text[i] < '0' || t.Text[i] > '9' {
			return false
		}
	}
	return true
}
