package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// parseGraphicsGetPut handles the screen forms of GET and PUT.
func (p *Parser) parseGraphicsGetPut(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	from, err := parsePoint(h, true)
	if err != nil {
		return nil, err
	}
	stmt := &ast.GraphicsStatement{Keyword: keyword, From: from}
	if keyword == token.GET {
		if _, err := h.Expect(token.Minus); err != nil {
			return nil, err
		}
		to, err := parsePoint(h, true)
		if err != nil {
			return nil, err
		}
		stmt.To = &to
	}
	if _, err := h.Expect(token.Comma); err != nil {
		return nil, err
	}
	if stmt.Array, err = variable(h.TakeUntil(token.Comma)); err != nil {
		return nil, err
	}
	if keyword == token.PUT {
		if _, ok := h.Accept(token.Comma); ok {
			action, err := h.ExpectOneOf(token.PSET, token.PRESET, token.AND, token.OR, token.XOR)
			if err != nil {
				return nil, err
			}
			stmt.Action = action.Kind
		}
	}
	return stmt, nil
}

// parseCircle parses CIRCLE [STEP](x, y), radius[, color[, start[, end[, aspect]]]].
func (p *Parser) parseCircle(h *TokenHandler) (ast.Statement, error) {
	center, err := parsePoint(h, true)
	if err != nil {
		return nil, err
	}
	if _, err := h.Expect(token.Comma); err != nil {
		return nil, err
	}
	r := h.TakeRest()
	parts := splitUnparenthesized(r, token.Comma)
	if len(parts) > 5 {
		comma, _ := parts[5].Preceding()
		return nil, newError(comma, msgEndOfStatement)
	}
	if parts[0].Empty() {
		return nil, newError(blameAfter(parts[0]), msgExpression)
	}
	args, err := parseParts(parts, true)
	if err != nil {
		return nil, err
	}
	return &ast.CircleStatement{Center: center, Radius: args[0], Options: args[1:]}, nil
}

// parseGraphicsLine parses LINE [[STEP](x1, y1)]-[STEP](x2, y2)[, [color][, [B|BF][, style]]].
func (p *Parser) parseGraphicsLine(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.LineStatement{}
	if h.Kind(0) != token.Minus {
		from, err := parsePoint(h, true)
		if err != nil {
			return nil, err
		}
		stmt.From = &from
	}
	if _, err := h.Expect(token.Minus); err != nil {
		return nil, err
	}
	to, err := parsePoint(h, true)
	if err != nil {
		return nil, err
	}
	stmt.To = to

	boxAt := h.Rest()
	options, err := optionalTail(h, 3)
	if err != nil {
		return nil, err
	}
	if len(options) >= 2 && options[1] != nil {
		box, ok := options[1].(*ast.Identifier)
		if !ok || (!strings.EqualFold(box.Name(), "B") && !strings.EqualFold(box.Name(), "BF")) {
			parts := splitUnparenthesized(boxAt.From(1), token.Comma)
			return nil, expected(parts[1].At(0), "B or BF")
		}
		t := box.Token
		t.Text = strings.ToUpper(t.Text)
		options[1] = &ast.Identifier{Token: t}
	}
	stmt.Options = options
	return stmt, nil
}

// parsePset handles PSET and PRESET [STEP](x, y)[, color].
func (p *Parser) parsePset(keyword token.Kind, h *TokenHandler) (ast.Statement, error) {
	pt, err := parsePoint(h, true)
	if err != nil {
		return nil, err
	}
	stmt := &ast.PsetStatement{Keyword: keyword, Point: pt}
	if _, ok := h.Accept(token.Comma); ok {
		if stmt.Color, err = parseExpression(h.TakeRest()); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parsePaint(h *TokenHandler) (ast.Statement, error) {
	pt, err := parsePoint(h, true)
	if err != nil {
		return nil, err
	}
	options, err := optionalTail(h, 3)
	if err != nil {
		return nil, err
	}
	return &ast.PaintStatement{Point: pt, Options: options}, nil
}

// parsePalette handles PALETTE, PALETTE attribute, color and PALETTE USING
// array.
func (p *Parser) parsePalette(h *TokenHandler) (ast.Statement, error) {
	if _, ok := h.Accept(token.USING); ok {
		arr, err := variable(h.TakeRest())
		if err != nil {
			return nil, err
		}
		return &ast.PaletteStatement{Using: true, Args: []ast.Expression{arr}}, nil
	}
	r := h.TakeRest()
	if r.Empty() {
		return &ast.PaletteStatement{}, nil
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
	return &ast.PaletteStatement{Args: args}, nil
}

// parseView handles VIEW, VIEW [SCREEN] (x1, y1)-(x2, y2)[, [color][, border]]
// and VIEW PRINT [top TO bottom].
func (p *Parser) parseView(h *TokenHandler) (ast.Statement, error) {
	if _, ok := h.Accept(token.PRINT); ok {
		stmt := &ast.ViewPrintStatement{}
		if h.Done() {
			return stmt, nil
		}
		top := h.TakeUntil(token.TO)
		if h.Done() {
			return nil, newError(blameAfter(top), msgTo)
		}
		h.Advance(1)
		var err error
		if stmt.Top, err = parseExpression(top); err != nil {
			return nil, err
		}
		if stmt.Bottom, err = parseExpression(h.TakeRest()); err != nil {
			return nil, err
		}
		return stmt, nil
	}

	stmt := &ast.ViewStatement{}
	if h.Done() {
		return stmt, nil
	}
	_, stmt.Screen = h.Accept(token.SCREEN)
	from, to, err := parseRectangle(h)
	if err != nil {
		return nil, err
	}
	stmt.From, stmt.To = from, to
	if stmt.Options, err = optionalTail(h, 2); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseWindow handles WINDOW and WINDOW [SCREEN] (x1, y1)-(x2, y2).
func (p *Parser) parseWindow(h *TokenHandler) (ast.Statement, error) {
	stmt := &ast.WindowStatement{}
	if h.Done() {
		return stmt, nil
	}
	_, stmt.Screen = h.Accept(token.SCREEN)
	from, to, err := parseRectangle(h)
	if err != nil {
		return nil, err
	}
	stmt.From, stmt.To = from, to
	return stmt, nil
}

// parseRectangle parses (x1, y1)-(x2, y2) without STEP.
func parseRectangle(h *TokenHandler) (*ast.Point, *ast.Point, error) {
	from, err := parsePoint(h, false)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.Expect(token.Minus); err != nil {
		return nil, nil, err
	}
	to, err := parsePoint(h, false)
	if err != nil {
		return nil, nil, err
	}
	return &from, &to, nil
}
