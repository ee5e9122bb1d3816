package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// parseStatement parses one statement range. The range must hold the whole
// statement: leftover tokens are an error.
func (p *Parser) parseStatement(r tokens, ctx stmtContext) (ast.Statement, error) {
	if r.Empty() {
		return nil, newError(blameAfter(r), msgStatement)
	}
	first := r.At(0)
	h := NewTokenHandler(r)
	stmt, err := p.dispatch(first, h, ctx)
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		panic(ast.InvariantError{Node: "statement " + first.Kind.String(), Field: "result"})
	}
	if err := h.ExpectEnd(); err != nil {
		return nil, err
	}
	stmt.SetIndentation(first.Space)
	return stmt, nil
}

// dispatch selects the statement routine from the leading token. The
// handler is positioned on that token.
//
//nolint:gocyclo,cyclop,funlen // One case per statement keyword.
func (p *Parser) dispatch(first token.Token, h *TokenHandler, ctx stmtContext) (ast.Statement, error) {
	switch first.Kind {
	case token.Identifier:
		return p.parseImplicit(h)
	case token.Comment:
		h.Advance(1)
		return p.parseRem(first)
	}

	h.Advance(1)
	switch first.Kind {
	case token.LET:
		return p.parseAssignment(h, true)
	case token.CALL:
		return p.parseCall(h)
	case token.PRINT, token.LPRINT:
		return p.parsePrint(first.Kind, h)
	case token.IF:
		return p.parseIf(h, ctx)
	case token.ELSEIF:
		return p.parseElseIf(h)
	case token.ELSE:
		return &ast.ElseStatement{}, nil
	case token.END:
		return p.parseEnd(h)
	case token.FOR:
		return p.parseFor(h)
	case token.NEXT:
		return p.parseNext(h)
	case token.DO:
		cond, err := p.parseLoopCondition(h)
		return &ast.DoStatement{LoopCondition: cond}, err
	case token.LOOP:
		cond, err := p.parseLoopCondition(h)
		return &ast.LoopStatement{LoopCondition: cond}, err
	case token.WHILE:
		cond, err := parseExpression(h.TakeRest())
		return &ast.WhileStatement{Condition: cond}, err
	case token.SELECT:
		return p.parseSelect(h)
	case token.CASE:
		return p.parseCase(h)
	case token.GOTO, token.GOSUB:
		target, err := parseTarget(h)
		return &ast.JumpStatement{Keyword: first.Kind, Target: target}, err
	case token.RETURN, token.RESTORE:
		return p.parseOptionalTarget(first.Kind, h)
	case token.RESUME:
		return p.parseResume(h)
	case token.ON:
		return p.parseOn(h)
	case token.EXIT:
		return p.parseExit(h)
	case token.DIM, token.REDIM:
		return p.parseDim(first.Kind, h)
	case token.COMMON, token.SHARED, token.STATIC:
		return p.parseVariableList(first.Kind, h)
	case token.CONST:
		return p.parseConst(h)
	case token.DECLARE, token.SUB, token.FUNCTION:
		if ctx.nested {
			return nil, newError(first, msgNestedProcedure)
		}
		if first.Kind == token.DECLARE {
			return p.parseDeclare(h)
		}
		return p.parseProcedure(first.Kind, h)
	case token.DEF:
		return p.parseDef(h)
	case token.DEFINT, token.DEFLNG, token.DEFSNG, token.DEFDBL, token.DEFSTR:
		return p.parseDefType(first.Kind, h)
	case token.TYPE:
		name, err := h.ExpectIdentifier(false)
		return &ast.TypeStatement{Name: name}, err
	case token.OPTION:
		return p.parseOptionBase(h)
	case token.INPUT:
		return p.parseInput(h, false)
	case token.LINE:
		if _, ok := h.Accept(token.INPUT); ok {
			return p.parseInput(h, true)
		}
		return p.parseGraphicsLine(h)
	case token.WRITE:
		return p.parseWrite(h)
	case token.OPEN:
		return p.parseOpen(h)
	case token.FIELD:
		return p.parseField(h)
	case token.LOCK, token.UNLOCK:
		return p.parseLock(first.Kind, h)
	case token.NAME:
		return p.parseName(h)
	case token.WIDTH:
		return p.parseWidth(h)
	case token.DATA:
		return p.parseData(h)
	case token.GET, token.PUT:
		if h.Kind(0) == token.LeftParen || h.Kind(0) == token.STEP {
			return p.parseGraphicsGetPut(first.Kind, h)
		}
	case token.CIRCLE:
		return p.parseCircle(h)
	case token.PSET, token.PRESET:
		return p.parsePset(first.Kind, h)
	case token.PAINT:
		return p.parsePaint(h)
	case token.PALETTE:
		return p.parsePalette(h)
	case token.VIEW:
		return p.parseView(h)
	case token.WINDOW:
		return p.parseWindow(h)
	case token.KEY:
		return p.parseKey(h)
	case token.TIMER, token.PEN, token.STRIG, token.COM:
		return p.parseEventControl(first.Kind, h)
	case token.PLAY:
		if isEventAction(h.Kind(0)) && h.Remaining() == 1 {
			return p.parseEventControl(first.Kind, h)
		}
	case token.MidStr:
		return p.parseMid(h)
	case token.LSET, token.RSET:
		return p.parseFieldAssign(first.Kind, h)
	case token.DateStr, token.TimeStr:
		if _, err := h.Expect(token.Equal); err != nil {
			return nil, err
		}
		value, err := parseExpression(h.TakeRest())
		return &ast.ClockStatement{Keyword: first.Kind, Value: value}, err
	}

	if rule, ok := argumentRules[first.Kind]; ok {
		return p.parseArguments(first.Kind, rule, h)
	}
	return nil, newError(first, msgStatement)
}

func (p *Parser) parseRem(t token.Token) (ast.Statement, error) {
	if len(t.Text) < len("REM") || !strings.EqualFold(t.Text[:len("REM")], "REM") {
		return nil, newError(t, msgStatement)
	}
	text, err := p.comment(t)
	if err != nil {
		return nil, err
	}
	return &ast.RemStatement{Text: text}, nil
}

// parseImplicit handles statements that start with a name: assignment,
// TYPE element declaration, or a CALL without the CALL keyword.
func (p *Parser) parseImplicit(h *TokenHandler) (ast.Statement, error) {
	if eq := h.FindNextUnparenthesizedOf(token.Equal); eq > 0 {
		if target, ok := tryExpression(h.Rest().To(eq)); ok && ast.IsAssignable(target) {
			h.Advance(eq + 1)
			value, err := parseExpression(h.TakeRest())
			if err != nil {
				return nil, err
			}
			return &ast.AssignmentStatement{Target: target, Value: value}, nil
		}
	}
	if as := h.FindNextUnparenthesizedOf(token.AS); as > 0 {
		decl, err := parseDeclarator(h.TakeRest(), declTypeElement)
		if err != nil {
			return nil, err
		}
		return &ast.TypeElementStatement{Element: decl}, nil
	}
	name, err := h.ExpectIdentifier(true)
	if err != nil {
		return nil, err
	}
	args, err := argList(h.TakeRest(), false)
	if err != nil {
		return nil, err
	}
	return &ast.CallStatement{Name: name, Args: args}, nil
}

func (p *Parser) parseAssignment(h *TokenHandler, let bool) (ast.Statement, error) {
	eq := h.FindNextUnparenthesizedOf(token.Equal)
	if eq < 0 {
		return nil, expected(blameAfter(h.Rest()), "=")
	}
	targetTokens := h.Take(eq)
	target, err := parseExpression(targetTokens)
	if err != nil {
		return nil, err
	}
	if !ast.IsAssignable(target) {
		return nil, newError(targetTokens.At(0), msgVariable)
	}
	h.Advance(1)
	value, err := parseExpression(h.TakeRest())
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentStatement{Let: let, Target: target, Value: value}, nil
}

func (p *Parser) parseCall(h *TokenHandler) (ast.Statement, error) {
	var name token.Token
	if t, ok := h.Accept(token.ABSOLUTE); ok {
		name = t
	} else {
		t, err := h.ExpectIdentifier(false)
		if err != nil {
			return nil, err
		}
		name = t
	}
	stmt := &ast.CallStatement{Explicit: true, Name: name}
	if h.Kind(0) == token.LeftParen {
		inner, err := h.ExpectParenthesizedTokens()
		if err != nil {
			return nil, err
		}
		if stmt.Args, err = argList(inner, false); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
