// Package engine runs one BASIC source file through the lexer, the parser and
// the canonical renderer, and writes the result back safely.
package engine

import (
	"bytes"
	"context"
	"strings"

	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/document"
	"github.com/yaklabco/gobasic/pkg/parser"
)

// Engine parses and renders source text. It holds only a Parser, so one
// value may be shared by every worker of a run.
type Engine struct {
	Parser *parser.Parser
}

// New creates an engine around p.
func New(p *parser.Parser) *Engine {
	return &Engine{Parser: p}
}

// FromConfig creates an engine whose parser follows cfg.
func FromConfig(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return New(parser.New(parser.Options{
		Tolerant:              cfg.Tolerant,
		NormalizeMetacommands: cfg.NormalizeMetacommands,
	}))
}

// Analysis is the outcome of parsing and rendering one source text.
type Analysis struct {
	// Document is nil when a strict parse failed.
	Document *document.Document

	// Diagnostics lists the syntax errors found: at most one in strict mode,
	// one per unparsed line in tolerant mode.
	Diagnostics []document.Diagnostic

	// Formatted is the canonical text, nil when a strict parse failed.
	Formatted []byte

	Lines      int
	Statements int
}

// Analyze parses content and renders it canonically. A syntax error is a
// finding, not a failure: it is reported in the diagnostics and the error
// is nil.
func (e *Engine) Analyze(ctx context.Context, path string, content []byte, endings config.LineEndings) *Analysis {
	logger := logging.ForFile(ctx, path)
	src := string(content)

	doc, err := document.Parse(src, e.Parser)
	if err != nil {
		diag := document.Diagnostic{Err: err, Message: err.Error()}
		if se, ok := parser.AsSyntaxError(err); ok {
			diag.Index = se.Line() - 1
			diag.Line, diag.Column, diag.Message = se.Line(), se.Column(), se.Message
			diag.Text = sourceLine(src, se.Line())
		}
		logger.Debug("syntax error", logging.FieldLine, diag.Line, logging.FieldColumn, diag.Column)
		return &Analysis{Diagnostics: []document.Diagnostic{diag}}
	}

	a := &Analysis{
		Document:    doc,
		Diagnostics: doc.Diagnostics(),
		Formatted:   []byte(doc.Render(ast.RenderOptions{CRLF: UseCRLF(endings, content)})),
		Lines:       doc.Len(),
	}
	for _, line := range doc.Lines() {
		a.Statements += len(line.Statements)
	}
	logger.Debug("parsed",
		logging.FieldLines, a.Lines,
		logging.FieldStatements, a.Statements,
		logging.FieldUnparsed, len(a.Diagnostics))
	return a
}

// UseCRLF resolves the line ending setting for content. Auto follows the
// terminator of the first line and defaults to LF.
func UseCRLF(endings config.LineEndings, content []byte) bool {
	switch endings {
	case config.LineEndingsCRLF:
		return true
	case config.LineEndingsLF:
		return false
	default:
		i := bytes.IndexByte(content, '\n')
		return i > 0 && content[i-1] == '\r'
	}
}

// sourceLine returns the 1-based line n of src without its terminator.
func sourceLine(src string, n int) string {
	for i := 1; i < n; i++ {
		j := strings.IndexByte(src, '\n')
		if j < 0 {
			return ""
		}
		src = src[j+1:]
	}
	if j := strings.IndexByte(src, '\n'); j >= 0 {
		src = src[:j]
	}
	return strings.TrimSuffix(src, "\r")
}
