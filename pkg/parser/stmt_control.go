package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// parseIf handles block IF, single-line IF ... THEN ... ELSE and the legacy
// IF cond GOTO target. A single-line IF owns the rest of its line, colons
// included, so the routine pulls the remaining tokens through ctx.rest.
func (p *Parser) parseIf(h *TokenHandler, ctx stmtContext) (ast.Statement, error) {
	if ctx.rest != nil {
		consumed := h.pos
		*h = *NewTokenHandler(ctx.rest())
		h.Advance(consumed)
	}

	split := h.FindNextUnparenthesizedOf(token.THEN, token.GOTO)
	if split < 0 {
		return nil, expected(blameAfter(h.Rest()), "THEN")
	}
	condTokens := h.Take(split)
	cond, err := parseExpression(condTokens)
	if err != nil {
		return nil, err
	}
	keyword, _ := h.Next()

	stmt := &ast.IfStatement{Condition: cond}
	var thenTokens, elseTokens tokens
	hasElse := false
	rest := h.TakeRest()
	if elseAt := matchingElse(rest); elseAt >= 0 {
		thenTokens, elseTokens = rest.To(elseAt), rest.From(elseAt+1)
		hasElse = true
	} else {
		thenTokens = rest
	}

	if keyword.Kind == token.GOTO {
		th := NewTokenHandler(thenTokens)
		target, err := parseTarget(th)
		if err != nil {
			return nil, err
		}
		if err := th.ExpectEnd(); err != nil {
			return nil, err
		}
		stmt.GotoForm = true
		stmt.Then = []ast.Statement{&ast.JumpStatement{Keyword: token.GOTO, Target: target}}
	} else {
		if thenTokens.Empty() && !hasElse {
			return &ast.IfBlockStatement{Condition: cond}, nil
		}
		if stmt.Then, err = p.parseBody(thenTokens); err != nil {
			return nil, err
		}
	}
	if hasElse {
		if stmt.Else, err = p.parseBody(elseTokens); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// matchingElse returns the index of the ELSE that belongs to the IF whose
// body r is, skipping ELSEs claimed by nested single-line IFs, or -1.
func matchingElse(r tokens) int {
	depth := 0
	for i, t := range r.All() {
		switch t.Kind {
		case token.IF:
			depth++
		case token.ELSE:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// parseBody parses the colon-separated statements of a THEN or ELSE body.
// A body statement that is a bare line number is an implicit GOTO, and a
// nested IF takes everything that follows it.
func (p *Parser) parseBody(r tokens) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !r.Empty() {
		var seg tokens
		switch {
		case r.At(0).Kind == token.IF:
			seg, r = r, r.From(r.Len())
		default:
			colon := findUnparenthesized(r, token.Colon)
			if colon < 0 {
				seg, r = r, r.From(r.Len())
			} else {
				seg, r = r.To(colon), r.From(colon+1)
			}
		}
		if seg.Empty() {
			continue
		}
		if seg.Len() == 1 && isLineNumber(seg.At(0)) {
			jump := &ast.JumpStatement{Keyword: token.GOTO, Target: seg.At(0), Implicit: true}
			jump.SetIndentation(seg.At(0).Space)
			stmts = append(stmts, jump)
			continue
		}
		stmt, err := p.parseStatement(seg, stmtContext{nested: true})
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if len(stmts) == 0 {
		return nil, newError(blameAfter(r), msgStatement)
	}
	return stmts, nil
}

func (p *Parser) parseElseIf(h *TokenHandler) (ast.Statement, error) {
	then := h.FindNextUnparenthesizedOf(token.THEN)
	if then < 0 {
		return nil, expected(blameAfter(h.Rest()), "THEN")
	}
	cond, err := parseExpression(h.Take(then))
	if err != nil {
		return nil, err
	}
	h.Advance(1)
	return &ast.ElseIfStatement{Condition: cond}, nil
}

func (p *Parser) parseEnd(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.EndStatement{}
	if h.Done() {
		return stmt, nil
	}
	block, err := h.ExpectOneOf(token.IF, token.SELECT, token.SUB, token.FUNCTION, token.TYPE, token.DEF)
	if err != nil {
		return nil, err
	}
	stmt.Block = block.Kind
	return stmt, nil
}

func (p *Parser) parseExit(h *TokenHandler) (ast.Statement, error) {
	block, err := h.ExpectOneOf(token.DO, token.FOR, token.SUB, token.FUNCTION, token.DEF)
	if err != nil {
		return nil, err
	}
	return &ast.ExitStatement{Block: block.Kind}, nil
}

// parseFor splits on STEP first and then on TO.
func (p *Parser) parseFor(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.ForStatement{}
	head := h.Rest()
	if step := findUnparenthesized(head, token.STEP); step >= 0 {
		stepExpr, err := parseExpression(head.From(step + 1))
		if err != nil {
			return nil, err
		}
		stmt.Step = stepExpr
		head = head.To(step)
	}
	h.TakeRest()

	eq := findUnparenthesized(head, token.Equal)
	if eq < 0 {
		return nil, expected(blameAfter(head), "=")
	}
	counter, err := variable(head.To(eq))
	if err != nil {
		return nil, err
	}
	stmt.Counter = counter

	bounds := head.From(eq + 1)
	to := findUnparenthesized(bounds, token.TO)
	if to < 0 {
		return nil, newError(blameAfter(bounds), msgTo)
	}
	if stmt.Start, err = parseExpression(bounds.To(to)); err != nil {
		return nil, err
	}
	if stmt.End, err = parseExpression(bounds.From(to + 1)); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseNext(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.NextStatement{}
	if h.Done() {
		return stmt, nil
	}
	counters, err := variableList(h.TakeRest())
	if err != nil {
		return nil, err
	}
	stmt.Counters = counters
	return stmt, nil
}

func (p *Parser) parseLoopCondition(h *TokenHandler) (ast.LoopCondition, error) {
	var c ast.LoopCondition
	if h.Done() {
		return c, nil
	}
	kw, err := h.ExpectOneOf(token.WHILE, token.UNTIL)
	if err != nil {
		return c, err
	}
	cond, err := parseExpression(h.TakeRest())
	if err != nil {
		return c, err
	}
	c.Kind, c.Condition = kw.Kind, cond
	return c, nil
}

func (p *Parser) parseSelect(h *TokenHandler) (ast.Statement, error) {
	if _, err := h.Expect(token.CASE); err != nil {
		return nil, err
	}
	subject, err := parseExpression(h.TakeRest())
	if err != nil {
		return nil, err
	}
	return &ast.SelectCaseStatement{Subject: subject}, nil
}

// parseCase handles CASE ELSE and CASE clause lists. A clause that starts
// with a relational operator is read as IS op value.
func (p *Parser) parseCase(h *TokenHandler) (ast.Statement, error) {
	if _, ok := h.Accept(token.ELSE); ok {
		return &ast.CaseStatement{Else: true}, nil
	}
	if h.Done() {
		return nil, newError(h.Current(), msgExpression)
	}
	stmt := &ast.CaseStatement{}
	for _, part := range splitUnparenthesized(h.TakeRest(), token.Comma) {
		clause, err := parseCaseClause(part)
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}
	return stmt, nil
}

func parseCaseClause(r tokens) (ast.CaseClause, error) {
	var c ast.CaseClause
	if r.Empty() {
		return c, newError(blameAfter(r), msgExpression)
	}
	if r.At(0).Kind == token.IS {
		r = r.From(1)
		if r.Empty() || !r.At(0).Kind.IsRelational() {
			return c, expected(blameAfter(r.To(0)), "relational operator")
		}
	}
	if r.At(0).Kind.IsRelational() {
		c.Relational = r.At(0).Kind
		value, err := parseExpression(r.From(1))
		if err != nil {
			return c, err
		}
		c.Value = value
		return c, nil
	}
	if to := findUnparenthesized(r, token.TO); to >= 0 {
		low, err := parseExpression(r.To(to))
		if err != nil {
			return c, err
		}
		high, err := parseExpression(r.From(to + 1))
		if err != nil {
			return c, err
		}
		c.Value, c.To = low, high
		return c, nil
	}
	value, err := parseExpression(r)
	if err != nil {
		return c, err
	}
	c.Value = value
	return c, nil
}

func (p *Parser) parseOptionalTarget(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.TargetStatement{Keyword: keyword}
	if h.Done() {
		return stmt, nil
	}
	target, err := parseTarget(h)
	if err != nil {
		return nil, err
	}
	stmt.Target = &target
	return stmt, nil
}

func (p *Parser) parseResume(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.ResumeStatement{}
	if _, ok := h.Accept(token.NEXT); ok {
		stmt.Next = true
		return stmt, nil
	}
	if h.Done() {
		return stmt, nil
	}
	target, err := parseTarget(h)
	if err != nil {
		return nil, err
	}
	stmt.Target = &target
	return stmt, nil
}

// eventKinds are the sources usable in ON event GOSUB and event control
// statements.
//
//nolint:gochecknoglobals // Read-only lookup table.
var eventKinds = []token.Kind{token.TIMER, token.KEY, token.PEN, token.PLAY, token.STRIG, token.COM}

// isOnEvent reports whether the cursor is at event[(arg)] GOSUB.
func isOnEvent(h *TokenHandler) bool {
	if !h.Current().Is(eventKinds...) {
		return false
	}
	gosub := h.FindNextUnparenthesizedOf(token.GOSUB)
	switch {
	case gosub == 1:
		return true
	case gosub > 3:
		group := h.Rest().Slice(1, gosub-1)
		return group.At(0).Kind == token.LeftParen && group.Last().Kind == token.RightParen &&
			matchingOpen(group) == 0
	default:
		return false
	}
}

// parseOn handles ON ERROR, ON event GOSUB and ON n GOTO|GOSUB.
func (p *Parser) parseOn(h *TokenHandler) (ast.Statement, error) {
	if _, ok := h.Accept(token.ERROR); ok {
		if _, ok := h.Accept(token.RESUME); ok {
			if _, err := h.Expect(token.NEXT); err != nil {
				return nil, err
			}
			return &ast.OnErrorStatement{ResumeNext: true}, nil
		}
		if _, err := h.Expect(token.GOTO); err != nil {
			return nil, err
		}
		target, err := parseTarget(h)
		if err != nil {
			return nil, err
		}
		return &ast.OnErrorStatement{Target: target}, nil
	}

	if isOnEvent(h) {
		t, _ := h.Next()
		stmt := &ast.OnEventStatement{Event: t.Kind}
		if h.Kind(0) == token.LeftParen {
			inner, err := h.ExpectParenthesizedTokens()
			if err != nil {
				return nil, err
			}
			if stmt.Arg, err = parseExpression(inner); err != nil {
				return nil, err
			}
		}
		if _, err := h.Expect(token.GOSUB); err != nil {
			return nil, err
		}
		target, err := parseTarget(h)
		if err != nil {
			return nil, err
		}
		stmt.Target = target
		return stmt, nil
	}

	jump := h.FindNextUnparenthesizedOf(token.GOTO, token.GOSUB)
	if jump < 0 {
		return nil, expected(blameAfter(h.Rest()), "GOTO or GOSUB")
	}
	selector, err := parseExpression(h.Take(jump))
	if err != nil {
		return nil, err
	}
	keyword, _ := h.Next()
	stmt := &ast.OnJumpStatement{Selector: selector, Keyword: keyword.Kind}
	for {
		target, err := parseTarget(h)
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)
		if _, ok := h.Accept(token.Comma); !ok {
			break
		}
	}
	return stmt, nil
}
