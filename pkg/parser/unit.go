package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// ParseUnit parses a whole module and groups its lines into compilation
// elements: the main body first, then one element per SUB or FUNCTION in
// source order. A procedure runs from its header line through its END SUB or
// END FUNCTION line; everything else belongs to the main body.
func (p *Parser) ParseUnit(toks []token.Token) (*ast.CompilationUnit, error) {
	lines, err := p.ParseLines(toks)
	if err != nil {
		return nil, err
	}
	return GroupLines(lines), nil
}

// GroupLines builds a compilation unit from parsed lines. An unterminated
// procedure extends to the end of the module.
func GroupLines(lines []*ast.CodeLine) *ast.CompilationUnit {
	main := &ast.CompilationElement{Kind: ast.Main}
	unit := &ast.CompilationUnit{Elements: []*ast.CompilationElement{main}}
	var current *ast.CompilationElement
	for _, line := range lines {
		if current == nil {
			if proc := procedureHeader(line); proc != nil {
				kind := ast.Sub
				if proc.Keyword == token.FUNCTION {
					kind = ast.Function
				}
				current = &ast.CompilationElement{Kind: kind, Name: proc.Name.Text}
				unit.Elements = append(unit.Elements, current)
			}
		}
		if current == nil {
			main.Lines = append(main.Lines, line)
			continue
		}
		current.Lines = append(current.Lines, line)
		if endsProcedure(line) {
			current = nil
		}
	}
	return unit
}

func procedureHeader(line *ast.CodeLine) *ast.ProcedureStatement {
	for _, s := range line.Statements {
		if proc, ok := s.(*ast.ProcedureStatement); ok {
			return proc
		}
	}
	return nil
}

func endsProcedure(line *ast.CodeLine) bool {
	for _, s := range line.Statements {
		if end, ok := s.(*ast.EndStatement); ok && (end.Block == token.SUB || end.Block == token.FUNCTION) {
			return true
		}
	}
	return false
}
