// Package document is the editor-facing model of one BASIC source file: its
// parsed lines in source order, line-level re-parsing on commit, and
// rendering with a caller-chosen line terminator.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/lexer"
	"github.com/yaklabco/gobasic/pkg/parser"
)

// ErrLineOutOfRange is returned for a line index outside the document.
var ErrLineOutOfRange = errors.New("line index out of range")

// ErrMultipleLines is returned when committed text contains a line break.
var ErrMultipleLines = errors.New("text spans more than one line")

// Document holds parsed lines. It is not safe for concurrent mutation.
type Document struct {
	parser *parser.Parser
	lines  []*ast.CodeLine
}

// Parse lexes and parses src. In strict mode the first syntax error is
// returned; in tolerant mode the error is always nil.
func Parse(src string, p *parser.Parser) (*Document, error) {
	lines, err := p.ParseLines(lexer.Tokenize(src))
	if err != nil {
		return nil, err
	}
	return &Document{parser: p, lines: lines}, nil
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Line returns the line at index i.
func (d *Document) Line(i int) (*ast.CodeLine, error) {
	if i < 0 || i >= len(d.lines) {
		return nil, fmt.Errorf("line %d: %w", i, ErrLineOutOfRange)
	}
	return d.lines[i], nil
}

// Lines returns the lines in source order. The slice is a copy; the lines
// are shared.
func (d *Document) Lines() []*ast.CodeLine {
	out := make([]*ast.CodeLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// CommitLine re-parses the edited text of line i and replaces it. In strict
// mode a syntax error leaves the old line in place and is returned. In
// tolerant mode an invalid line is stored as an unparsed statement holding
// the raw text, and the error is nil.
func (d *Document) CommitLine(i int, text string) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("commit line %d: %w", i, ErrLineOutOfRange)
	}
	line, err := d.parseLine(i, text)
	if err != nil {
		return err
	}
	d.lines[i] = line
	return nil
}

// InsertLine parses text and inserts it before index i. i may equal Len to
// append.
func (d *Document) InsertLine(i int, text string) error {
	if i < 0 || i > len(d.lines) {
		return fmt.Errorf("insert line %d: %w", i, ErrLineOutOfRange)
	}
	line, err := d.parseLine(i, text)
	if err != nil {
		return err
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = line
	return nil
}

// DeleteLine removes line i.
func (d *Document) DeleteLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("delete line %d: %w", i, ErrLineOutOfRange)
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

func (d *Document) parseLine(i int, text string) (*ast.CodeLine, error) {
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("line %d: %w", i, ErrMultipleLines)
	}
	return d.parser.ParseLine(lexer.TokenizeAt(text, i+1))
}

// Unit groups the lines into a compilation unit for the compiler.
func (d *Document) Unit() *ast.CompilationUnit {
	return parser.GroupLines(d.Lines())
}

// Render writes every line in source order, each followed by the terminator
// selected in opts.
func (d *Document) Render(opts ast.RenderOptions) string {
	var sb strings.Builder
	nl := "\n"
	if opts.CRLF {
		nl = "\r\n"
	}
	for _, l := range d.lines {
		l.Render(&sb)
		sb.WriteString(nl)
	}
	return sb.String()
}

// Diagnostics returns the errors of every unparsed line, in line order.
func (d *Document) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for i, l := range d.lines {
		for _, s := range l.Statements {
			u, ok := s.(*ast.UnparsedStatement)
			if !ok || u.Err == nil {
				continue
			}
			diag := Diagnostic{Index: i, Text: u.Text, Err: u.Err}
			if se, ok := parser.AsSyntaxError(u.Err); ok {
				diag.Line, diag.Column, diag.Message = se.Line(), se.Column(), se.Message
			}
			out = append(out, diag)
		}
	}
	return out
}

// Diagnostic describes one line that failed to parse in tolerant mode.
type Diagnostic struct {
	// Index is the 0-based line index in the document.
	Index int
	// Line and Column locate the blamed token, 1-based.
	Line    int
	Column  int
	Message string
	// Text is the raw line text that was kept.
	Text string
	Err  error
}
