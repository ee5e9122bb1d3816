package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// parsePrint handles PRINT and LPRINT: [#file,] [USING format;] items.
func (p *Parser) parsePrint(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.PrintStatement{Keyword: keyword}
	if keyword == token.PRINT && h.Kind(0) == token.Hash {
		file, err := parseFileNumber(h)
		if err != nil {
			return nil, err
		}
		stmt.FileNumber = file
	}
	if _, ok := h.Accept(token.USING); ok {
		format, err := parseExpression(h.TakeUntil(token.Semicolon))
		if err != nil {
			return nil, err
		}
		if _, err := h.Expect(token.Semicolon); err != nil {
			return nil, err
		}
		stmt.Using = format
	}
	for !h.Done() {
		var item ast.PrintItem
		if part := h.TakeUntil(token.Semicolon, token.Comma); !part.Empty() {
			expr, err := parseExpression(part)
			if err != nil {
				return nil, err
			}
			item.Expr = expr
		}
		if sep, ok := h.Accept(token.Semicolon); ok {
			item.Separator = sep.Kind
		} else if sep, ok := h.Accept(token.Comma); ok {
			item.Separator = sep.Kind
		}
		stmt.Items = append(stmt.Items, item)
	}
	return stmt, nil
}

// parseInput handles INPUT and LINE INPUT. LINE INPUT reads exactly one
// variable.
func (p *Parser) parseInput(h *TokenHandler, line bool) (ast.Statement, error) {
	stmt := &ast.InputStatement{Line: line}
	if h.Kind(0) == token.Hash {
		file, err := parseFileNumber(h)
		if err != nil {
			return nil, err
		}
		stmt.FileNumber = file
	} else {
		_, stmt.SameLine = h.Accept(token.Semicolon)
		if h.Kind(0) == token.String && (h.Kind(1) == token.Semicolon || h.Kind(1) == token.Comma) {
			prompt := h.Current()
			stmt.Prompt = &prompt
			stmt.PromptSeparator = h.Kind(1)
			h.Advance(2)
		}
	}
	r := h.TakeRest()
	vars, err := variableList(r)
	if err != nil {
		return nil, err
	}
	if line && len(vars) > 1 {
		comma := r.At(findUnparenthesized(r, token.Comma))
		return nil, newError(comma, msgEndOfStatement)
	}
	stmt.Vars = vars
	return stmt, nil
}

func (p *Parser) parseWrite(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.WriteStatement{}
	if h.Kind(0) == token.Hash {
		file, err := parseFileNumber(h)
		if err != nil {
			return nil, err
		}
		stmt.FileNumber = file
	}
	args, err := argList(h.TakeRest(), false)
	if err != nil {
		return nil, err
	}
	stmt.Args = args
	return stmt, nil
}

//nolint:gochecknoglobals // Read-only lookup table.
var openModes = []token.Kind{token.INPUT, token.OUTPUT, token.APPEND, token.RANDOM, token.BINARY}

// parseOpen distinguishes the legacy form by a comma that appears before any
// FOR or AS keyword.
func (p *Parser) parseOpen(h *TokenHandler) (ast.Statement, error) {
	comma := h.FindNextUnparenthesizedOf(token.Comma)
	clause := h.FindNextUnparenthesizedOf(token.FOR, token.AS)
	if comma >= 0 && (clause < 0 || comma < clause) {
		return p.parseLegacyOpen(h)
	}

	r := h.TakeRest()
	stmt := &ast.OpenStatement{}

	if i := findLenClause(r); i >= 0 {
		length, err := parseExpression(r.From(i + 2))
		if err != nil {
			return nil, err
		}
		stmt.RecordLength = length
		r = r.To(i)
	}

	as := lastUnparenthesized(r, token.AS)
	if as < 0 {
		return nil, expected(blameAfter(r), "AS")
	}
	file, err := parseExpression(r.From(as + 1))
	if err != nil {
		return nil, err
	}
	stmt.FileNumber = file
	r = r.To(as)

	r, stmt.Lock = peelLock(r)
	r, stmt.Access = peelAccess(r)
	if n := r.Len(); n >= 2 && r.At(n-2).Kind == token.FOR && r.At(n-1).Is(openModes...) {
		stmt.Mode = r.At(n - 1).Kind
		r = r.To(n - 2)
	}

	if i := findUnparenthesized(r, token.FOR, token.ACCESS, token.LOCK, token.SHARED); i >= 0 {
		if r.At(i).Kind == token.FOR {
			return nil, expected(blameAfter(r.To(i+1)), "INPUT, OUTPUT, APPEND, RANDOM or BINARY")
		}
		return nil, newError(r.At(i), msgEndOfStatement)
	}
	if stmt.File, err = parseExpression(r); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseLegacyOpen parses OPEN mode, [#]n, file[, reclen].
func (p *Parser) parseLegacyOpen(h *TokenHandler) (ast.Statement, error) {
	r := h.TakeRest()
	parts := splitUnparenthesized(r, token.Comma)
	if len(parts) < 3 {
		return nil, expected(blameAfter(r), ",")
	}
	if len(parts) > 4 {
		comma, _ := parts[4].Preceding()
		return nil, newError(comma, msgEndOfStatement)
	}
	args, err := parseParts(parts, false)
	if err != nil {
		return nil, err
	}
	stmt := &ast.OpenStatement{Legacy: true, LegacyMode: args[0], FileNumber: args[1], File: args[2]}
	if len(args) == 4 {
		stmt.RecordLength = args[3]
	}
	return stmt, nil
}

// findLenClause returns the index of a depth-0 LEN that is followed by =,
// which distinguishes the clause from the LEN function.
func findLenClause(r tokens) int {
	depth := 0
	for i, t := range r.All() {
		switch t.Kind {
		case token.LeftParen:
			depth++
		case token.RightParen:
			depth--
		case token.LEN:
			if depth == 0 && i+1 < r.Len() && r.At(i+1).Kind == token.Equal {
				return i
			}
		}
	}
	return -1
}

// lastUnparenthesized returns the index of the last depth-0 token of kind,
// or -1.
func lastUnparenthesized(r tokens, kind token.Kind) int {
	depth := 0
	for i := r.Len() - 1; i >= 0; i-- {
		switch r.At(i).Kind {
		case token.RightParen:
			depth++
		case token.LeftParen:
			depth--
		case kind:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// peelLock removes a trailing SHARED or LOCK READ|WRITE|READ WRITE clause.
func peelLock(r tokens) (tokens, []token.Kind) {
	n := r.Len()
	switch {
	case n >= 1 && r.At(n-1).Kind == token.SHARED:
		return r.To(n - 1), []token.Kind{token.SHARED}
	case n >= 3 && r.At(n-3).Kind == token.LOCK && r.At(n-2).Kind == token.READ && r.At(n-1).Kind == token.WRITE:
		return r.To(n - 3), []token.Kind{token.LOCK, token.READ, token.WRITE}
	case n >= 2 && r.At(n-2).Kind == token.LOCK && r.At(n-1).Is(token.READ, token.WRITE):
		return r.To(n - 2), []token.Kind{token.LOCK, r.At(n - 1).Kind}
	}
	return r, nil
}

// peelAccess removes a trailing ACCESS READ|WRITE|READ WRITE clause.
func peelAccess(r tokens) (tokens, []token.Kind) {
	n := r.Len()
	switch {
	case n >= 3 && r.At(n-3).Kind == token.ACCESS && r.At(n-2).Kind == token.READ && r.At(n-1).Kind == token.WRITE:
		return r.To(n - 3), []token.Kind{token.READ, token.WRITE}
	case n >= 2 && r.At(n-2).Kind == token.ACCESS && r.At(n-1).Is(token.READ, token.WRITE):
		return r.To(n - 2), []token.Kind{r.At(n - 1).Kind}
	}
	return r, nil
}

// parseField parses FIELD #file, width AS var, ...
func (p *Parser) parseField(h *TokenHandler) (ast.Statement, error) {
	file, err := parseFileNumber(h)
	if err != nil {
		return nil, err
	}
	stmt := &ast.FieldStatement{FileNumber: file}
	for _, part := range splitUnparenthesized(h.TakeRest(), token.Comma) {
		as := findUnparenthesized(part, token.AS)
		if as < 0 {
			return nil, expected(blameAfter(part), "AS")
		}
		width, err := parseExpression(part.To(as))
		if err != nil {
			return nil, err
		}
		v, err := variable(part.From(as + 1))
		if err != nil {
			return nil, err
		}
		stmt.Fields = append(stmt.Fields, ast.FieldDef{Width: width, Var: v})
	}
	return stmt, nil
}

// parseLock handles LOCK and UNLOCK #file[, [start] [TO end]].
func (p *Parser) parseLock(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.LockStatement{Keyword: keyword}
	file, err := parseExpression(h.TakeUntil(token.Comma))
	if err != nil {
		return nil, err
	}
	stmt.FileNumber = file
	if _, ok := h.Accept(token.Comma); !ok {
		return stmt, nil
	}
	r := h.TakeRest()
	if r.Empty() {
		return nil, newError(blameAfter(r), msgExpression)
	}
	to := findUnparenthesized(r, token.TO)
	if to < 0 {
		stmt.Start, err = parseExpression(r)
		return stmt, err
	}
	if to > 0 {
		if stmt.Start, err = parseExpression(r.To(to)); err != nil {
			return nil, err
		}
	}
	if stmt.End, err = parseExpression(r.From(to + 1)); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseName(h *TokenHandler) (ast.Statement, error) {
	as := h.FindNextUnparenthesizedOf(token.AS)
	if as < 0 {
		return nil, expected(blameAfter(h.Rest()), "AS")
	}
	old, err := parseExpression(h.Take(as))
	if err != nil {
		return nil, err
	}
	h.Advance(1)
	newName, err := parseExpression(h.TakeRest())
	if err != nil {
		return nil, err
	}
	return &ast.NameStatement{Old: old, New: newName}, nil
}

// parseWidth handles WIDTH [LPRINT] args; either of two positions may be
// omitted.
func (p *Parser) parseWidth(h *TokenHandler) (ast.Statement, error) {
	_, lprint := h.Accept(token.LPRINT)
	r := h.TakeRest()
	if r.Empty() {
		return nil, newError(blameAfter(r), msgExpression)
	}
	parts := splitUnparenthesized(r, token.Comma)
	if len(parts) > 2 {
		comma, _ := parts[2].Preceding()
		return nil, newError(comma, msgEndOfStatement)
	}
	args, err := parseParts(parts, true)
	if err != nil {
		return nil, err
	}
	return &ast.WidthStatement{LPrint: lprint, Args: args}, nil
}

// parseData takes the raw payload token the lexer produced after DATA.
func (p *Parser) parseData(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.DataStatement{}
	if t, ok := h.Accept(token.DataText); ok {
		stmt.Text = t.Text
	}
	return stmt, nil
}
