package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// blockTracker follows block nesting across the lines of one module. SUB,
// FUNCTION and DECLARE are only valid at module scope, outside any open
// procedure or executable block.
type blockTracker struct {
	inProcedure bool
	depth       int
}

// advance moves the tracker past line, whose tokens are r. A procedure
// header or DECLARE found inside another block is an error blamed on its
// keyword, and leaves the tracker unchanged.
func (b *blockTracker) advance(r tokens, line *ast.CodeLine) error {
	next := *b
	headers := 0
	for _, s := range line.Statements {
		switch s := s.(type) {
		case *ast.DeclareStatement, *ast.ProcedureStatement:
			if next.inProcedure || next.depth > 0 {
				return newError(headerToken(r, headers), msgNestedProcedure)
			}
			headers++
			if _, ok := s.(*ast.ProcedureStatement); ok {
				next.inProcedure = true
			}
		case *ast.IfBlockStatement, *ast.ForStatement, *ast.DoStatement,
			*ast.WhileStatement, *ast.SelectCaseStatement:
			next.depth++
		case *ast.DefFnStatement:
			if s.Body == nil {
				next.depth++
			}
		case *ast.NextStatement:
			next.close(max(1, len(s.Counters)))
		case *ast.LoopStatement:
			next.close(1)
		case *ast.ArgumentStatement:
			if s.Keyword == token.WEND {
				next.close(1)
			}
		case *ast.EndStatement:
			switch s.Block {
			case token.SUB, token.FUNCTION:
				next = blockTracker{}
			case token.IF, token.SELECT, token.DEF:
				next.close(1)
			}
		}
	}
	*b = next
	return nil
}

func (b *blockTracker) close(n int) {
	b.depth = max(0, b.depth-n)
}

// headerToken returns the keyword of the nth procedure header or DECLARE on
// the line. Keywords that follow END, EXIT or DECLARE do not start one.
func headerToken(r tokens, n int) token.Token {
	for i, t := range r.All() {
		if !t.Is(token.DECLARE, token.SUB, token.FUNCTION) {
			continue
		}
		if i > 0 && r.At(i-1).Is(token.END, token.EXIT, token.DECLARE) {
			continue
		}
		if n == 0 {
			return t
		}
		n--
	}
	return r.At(0)
}
