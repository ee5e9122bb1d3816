package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// parseKey handles KEY ON|OFF|LIST, KEY n, text and the event form
// KEY(n) ON|OFF|STOP.
func (p *Parser) parseKey(h *TokenHandler) (ast.Statement, error) {
	if h.Kind(0) == token.LeftParen {
		return p.parseEventControl(token.KEY, h)
	}
	for _, action := range []token.Kind{token.ON, token.OFF, token.LIST} {
		if _, ok := h.Accept(action); ok {
			return &ast.KeyStatement{Action: action}, nil
		}
	}
	number, err := parseExpression(h.TakeUntil(token.Comma))
	if err != nil {
		return nil, err
	}
	if _, err := h.Expect(token.Comma); err != nil {
		return nil, err
	}
	text, err := parseExpression(h.TakeRest())
	if err != nil {
		return nil, err
	}
	return &ast.KeyStatement{Number: number, Text: text}, nil
}

// eventTakesArgument reports whether the event names a device number, as in
// COM(1) ON.
func eventTakesArgument(event token.Kind) bool {
	return event == token.KEY || event == token.STRIG || event == token.COM
}

// parseEventControl parses the ON, OFF or STOP that follows an event name.
func (p *Parser) parseEventControl(event token.Kind, h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.EventControlStatement{Event: event}
	if eventTakesArgument(event) {
		inner, err := h.ExpectParenthesizedTokens()
		if err != nil {
			return nil, err
		}
		if stmt.Arg, err = parseExpression(inner); err != nil {
			return nil, err
		}
	}
	action, err := h.ExpectOneOf(token.ON, token.OFF, token.STOP)
	if err != nil {
		return nil, err
	}
	stmt.Action = action.Kind
	return stmt, nil
}

// parseMid parses MID$(target, start[, length]) = value.
func (p *Parser) parseMid(h *TokenHandler) (ast.Statement, error) {
	inner, err := h.ExpectParenthesizedTokens()
	if err != nil {
		return nil, err
	}
	parts := splitUnparenthesized(inner, token.Comma)
	switch {
	case len(parts) < 2:
		return nil, expected(blameAfter(inner), ",")
	case len(parts) > 3:
		comma, _ := parts[3].Preceding()
		return nil, expected(comma, ")")
	}
	stmt := &ast.MidStatement{}
	if stmt.Target, err = variable(parts[0]); err != nil {
		return nil, err
	}
	if stmt.Start, err = parseExpression(parts[1]); err != nil {
		return nil, err
	}
	if len(parts) == 3 {
		if stmt.Length, err = parseExpression(parts[2]); err != nil {
			return nil, err
		}
	}
	if _, err := h.Expect(token.Equal); err != nil {
		return nil, err
	}
	if stmt.Value, err = parseExpression(h.TakeRest()); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFieldAssign handles LSET and RSET target = value.
func (p *Parser) parseFieldAssign(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	eq := h.FindNextUnparenthesizedOf(token.Equal)
	if eq < 0 {
		return nil, expected(blameAfter(h.Rest()), "=")
	}
	target, err := variable(h.Take(eq))
	if err != nil {
		return nil, err
	}
	h.Advance(1)
	value, err := parseExpression(h.TakeRest())
	if err != nil {
		return nil, err
	}
	return &ast.FieldAssignStatement{Keyword: keyword, Target: target, Value: value}, nil
}
