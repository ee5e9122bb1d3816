// Package parser builds the syntax tree of QuickBASIC source from a token
// stream.
//
// A Parser holds only its options, so one value may be shared by any number
// of goroutines. Syntax errors are returned as *SyntaxError values; in
// tolerant mode a line that fails to parse becomes a line holding a single
// ast.UnparsedStatement instead, and parsing never fails.
package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/listrange"
	"github.com/yaklabco/gobasic/pkg/token"
)

// Options configures a Parser.
type Options struct {
	// Tolerant turns malformed lines into unparsed lines instead of errors.
	Tolerant bool
	// NormalizeMetacommands canonicalizes $STATIC, $DYNAMIC and $INCLUDE
	// spacing in comments and rejects malformed directives.
	NormalizeMetacommands bool
}

// Parser parses token streams. The zero value is a strict parser that leaves
// comments untouched.
type Parser struct {
	opts Options
}

// New returns a parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Options returns the parser configuration.
func (p *Parser) Options() Options { return p.opts }

// ParseLines splits a token stream into lines and parses each one. In strict
// mode the first syntax error is returned. In tolerant mode the error is
// always nil. A SUB, FUNCTION or DECLARE inside an open procedure or block
// is a syntax error.
func (p *Parser) ParseLines(toks []token.Token) ([]*ast.CodeLine, error) {
	all := listrange.New(toks)
	var lines []*ast.CodeLine
	var blocks blockTracker
	start := 0
	for start < all.Len() {
		end := start
		for end < all.Len() && !all.At(end).Is(token.NewLine, token.EOF) {
			end++
		}
		line, err := p.parseModuleLine(all.Slice(start, end-start), &blocks)
		if err != nil {
			return nil, err
		}
		if end < all.Len() && all.At(end).Kind == token.EOF {
			if !line.IsEmpty() {
				lines = append(lines, line)
			}
			break
		}
		lines = append(lines, line)
		start = end + 1
	}
	return lines, nil
}

// ParseLine parses the tokens of a single line. A trailing NewLine or EOF
// token is ignored.
func (p *Parser) ParseLine(toks []token.Token) (*ast.CodeLine, error) {
	return p.parseLineRange(stripLayout(listrange.New(toks)))
}

// ParseStatement parses the tokens of exactly one statement.
func (p *Parser) ParseStatement(toks []token.Token) (ast.Statement, error) {
	r := stripLayout(listrange.New(toks))
	return p.parseStatement(r, stmtContext{})
}

// ParseExpression parses the tokens of exactly one expression.
func (p *Parser) ParseExpression(toks []token.Token) (ast.Expression, error) {
	return parseExpression(stripLayout(listrange.New(toks)))
}

// stripLayout drops trailing NewLine and EOF tokens.
func stripLayout(r tokens) tokens {
	for !r.Empty() && r.Last().Is(token.NewLine, token.EOF) {
		r = r.To(r.Len() - 1)
	}
	return r
}

func (p *Parser) parseLineRange(r tokens) (*ast.CodeLine, error) {
	return p.parseModuleLine(r, nil)
}

// parseModuleLine parses one line of a module. blocks, when set, carries
// block nesting from the previous lines.
func (p *Parser) parseModuleLine(r tokens, blocks *blockTracker) (*ast.CodeLine, error) {
	r = foldWhitespace(r)
	line, err := p.parseLine(r)
	if err == nil && blocks != nil {
		err = blocks.advance(r, line)
	}
	if err == nil {
		return line, nil
	}
	if !p.opts.Tolerant {
		return nil, err
	}
	return unparsedLine(r, err), nil
}

// unparsedLine keeps the raw text of a line that failed to parse.
func unparsedLine(r tokens, err error) *ast.CodeLine {
	var sb strings.Builder
	for _, t := range r.All() {
		sb.WriteString(t.Space)
		sb.WriteString(t.Text)
	}
	return &ast.CodeLine{Statements: []ast.Statement{&ast.UnparsedStatement{Text: sb.String(), Err: err}}}
}

// foldWhitespace moves explicit Whitespace tokens, which some lexers emit,
// into the Space field of the following token.
func foldWhitespace(r tokens) tokens {
	hasSpace := false
	for _, t := range r.All() {
		if t.Kind == token.Whitespace {
			hasSpace = true
			break
		}
	}
	if !hasSpace {
		return r
	}
	out := make([]token.Token, 0, r.Len())
	pending := ""
	for _, t := range r.All() {
		if t.Kind == token.Whitespace {
			pending += t.Text
			continue
		}
		t.Space = pending + t.Space
		pending = ""
		out = append(out, t)
	}
	return listrange.New(out)
}
