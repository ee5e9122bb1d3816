package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

func (p *Parser) parseDim(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	_, shared := h.Accept(token.SHARED)
	vars, err := parseDeclarators(h.TakeRest(), declVariable)
	if err != nil {
		return nil, err
	}
	return &ast.DimStatement{Keyword: keyword, Shared: shared, Vars: vars}, nil
}

// parseVariableList handles COMMON [SHARED], SHARED and STATIC.
func (p *Parser) parseVariableList(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.VariableListStatement{Keyword: keyword}
	if keyword == token.COMMON {
		_, stmt.Shared = h.Accept(token.SHARED)
	}
	vars, err := parseDeclarators(h.TakeRest(), declList)
	if err != nil {
		return nil, err
	}
	stmt.Vars = vars
	return stmt, nil
}

func (p *Parser) parseConst(h *TokenHandler) (ast.Statement, error) {
	r := h.TakeRest()
	if r.Empty() {
		return nil, newError(blameAfter(r), msgIdentifier)
	}
	stmt := &ast.ConstStatement{}
	for _, part := range splitUnparenthesized(r, token.Comma) {
		ph := NewTokenHandler(part)
		name, err := ph.ExpectIdentifier(true)
		if err != nil {
			return nil, err
		}
		if _, err := ph.Expect(token.Equal); err != nil {
			return nil, err
		}
		value, err := parseExpression(ph.TakeRest())
		if err != nil {
			return nil, err
		}
		stmt.Defs = append(stmt.Defs, ast.ConstDef{Name: name, Value: value})
	}
	return stmt, nil
}

func (p *Parser) parseDeclare(h *TokenHandler) (ast.Statement, error) {
	proc, err := h.ExpectOneOf(token.SUB, token.FUNCTION)
	if err != nil {
		return nil, err
	}
	name, err := h.ExpectIdentifier(proc.Kind == token.FUNCTION)
	if err != nil {
		return nil, err
	}
	hasParams, params, err := parseParams(h)
	if err != nil {
		return nil, err
	}
	return &ast.DeclareStatement{Procedure: proc.Kind, Name: name, HasParams: hasParams, Params: params}, nil
}

// parseProcedure handles SUB and FUNCTION headers. Only FUNCTION names may
// carry a type sigil.
func (p *Parser) parseProcedure(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	name, err := h.ExpectIdentifier(keyword == token.FUNCTION)
	if err != nil {
		return nil, err
	}
	hasParams, params, err := parseParams(h)
	if err != nil {
		return nil, err
	}
	_, static := h.Accept(token.STATIC)
	return &ast.ProcedureStatement{
		Keyword:   keyword,
		Name:      name,
		HasParams: hasParams,
		Params:    params,
		Static:    static,
	}, nil
}

// parseDef handles DEF SEG [= address] and DEF FNname[(params)] [= body].
func (p *Parser) parseDef(h *TokenHandler) (ast.Statement, error) {
	if _, ok := h.Accept(token.SEG); ok {
		stmt := &ast.DefSegStatement{}
		if _, ok := h.Accept(token.Equal); ok {
			address, err := parseExpression(h.TakeRest())
			if err != nil {
				return nil, err
			}
			stmt.Address = address
		}
		return stmt, nil
	}

	name, err := h.ExpectIdentifier(true)
	if err != nil {
		return nil, err
	}
	if len(name.Text) < len("FN") || !strings.EqualFold(name.Text[:len("FN")], "FN") {
		return nil, expected(name, "FN name")
	}
	hasParams, params, err := parseParams(h)
	if err != nil {
		return nil, err
	}
	stmt := &ast.DefFnStatement{Name: name, HasParams: hasParams, Params: params}
	if _, ok := h.Accept(token.Equal); ok {
		if stmt.Body, err = parseExpression(h.TakeRest()); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseDefType parses letter ranges such as A-C, x, M-Q. Letters are
// upper-cased and the ranges merged.
func (p *Parser) parseDefType(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	r := h.TakeRest()
	if r.Empty() {
		return nil, expected(blameAfter(r), "letter")
	}
	stmt := &ast.DefTypeStatement{Keyword: keyword}
	for _, part := range splitUnparenthesized(r, token.Comma) {
		ph := NewTokenHandler(part)
		start, err := expectLetter(ph)
		if err != nil {
			return nil, err
		}
		end := start
		if _, ok := ph.Accept(token.Minus); ok {
			if end, err = expectLetter(ph); err != nil {
				return nil, err
			}
		}
		if err := ph.ExpectEnd(); err != nil {
			return nil, err
		}
		if end < start {
			start, end = end, start
		}
		stmt.Ranges.Insert(ast.LetterRange{Start: start, End: end})
	}
	return stmt, nil
}

// expectLetter consumes a one-letter identifier and returns it upper-cased.
func expectLetter(h *TokenHandler) (byte, error) {
	t := h.Current()
	if t.Kind != token.Identifier || len(t.Text) != 1 {
		return 0, expected(t, "letter")
	}
	h.Advance(1)
	c := t.Text[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c, nil
}

func (p *Parser) parseOptionBase(h *TokenHandler) (ast.Statement, error) {
	if _, err := h.Expect(token.BASE); err != nil {
		return nil, err
	}
	base := h.Current()
	if base.Kind != token.Number || (base.Text != "0" && base.Text != "1") {
		return nil, expected(base, "0 or 1")
	}
	h.Advance(1)
	return &ast.OptionBaseStatement{Base: base}, nil
}
