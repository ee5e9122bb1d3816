package parser

import (
	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/token"
)

// argumentRule describes a statement whose grammar is a keyword followed by
// a comma-separated argument list.
type argumentRule struct {
	min, max int // max < 0 means unbounded
	// optional allows omitted positions, as in LOCATE , 5.
	optional bool
	// variables requires every argument to be assignable.
	variables bool
}

//nolint:gochecknoglobals // Read-only lookup table.
var argumentRules = map[token.Kind]argumentRule{
	token.BEEP:      {min: 0, max: 0},
	token.BLOAD:     {min: 1, max: 2},
	token.BSAVE:     {min: 3, max: 3},
	token.CHAIN:     {min: 1, max: 1},
	token.CHDIR:     {min: 1, max: 1},
	token.CLEAR:     {min: 0, max: 3, optional: true},
	token.CLOSE:     {min: 0, max: -1},
	token.CLS:       {min: 0, max: 1},
	token.COLOR:     {min: 0, max: 3, optional: true},
	token.DRAW:      {min: 1, max: 1},
	token.ENVIRON:   {min: 1, max: 1},
	token.ERASE:     {min: 1, max: -1, variables: true},
	token.ERROR:     {min: 1, max: 1},
	token.FILES:     {min: 0, max: 1},
	token.GET:       {min: 1, max: 3, optional: true},
	token.KILL:      {min: 1, max: 1},
	token.LOCATE:    {min: 0, max: 5, optional: true},
	token.MKDIR:     {min: 1, max: 1},
	token.OUT:       {min: 2, max: 2},
	token.PCOPY:     {min: 2, max: 2},
	token.PLAY:      {min: 1, max: 1},
	token.POKE:      {min: 2, max: 2},
	token.PUT:       {min: 1, max: 3, optional: true},
	token.RANDOMIZE: {min: 0, max: 1},
	token.READ:      {min: 1, max: -1, variables: true},
	token.RESET:     {min: 0, max: 0},
	token.RMDIR:     {min: 1, max: 1},
	token.RUN:       {min: 0, max: 1},
	token.SCREEN:    {min: 0, max: 4, optional: true},
	token.SEEK:      {min: 2, max: 2},
	token.SHELL:     {min: 0, max: 1},
	token.SLEEP:     {min: 0, max: 1},
	token.SOUND:     {min: 2, max: 2},
	token.STOP:      {min: 0, max: 0},
	token.SWAP:      {min: 2, max: 2, variables: true},
	token.SYSTEM:    {min: 0, max: 0},
	token.TROFF:     {min: 0, max: 0},
	token.TRON:      {min: 0, max: 0},
	token.WAIT:      {min: 2, max: 3},
	token.WEND:      {min: 0, max: 0},
}

func (p *Parser) parseArguments(keyword token.Kind, rule argumentRule, h *TokenHandler) (ast.Statement, error) {
	r := h.TakeRest()
	var parts []tokens
	if !r.Empty() {
		parts = splitUnparenthesized(r, token.Comma)
	}
	if rule.max >= 0 && len(parts) > rule.max {
		if rule.max == 0 {
			return nil, newError(r.At(0), msgEndOfStatement)
		}
		comma, _ := parts[rule.max].Preceding()
		return nil, newError(comma, msgEndOfStatement)
	}
	if len(parts) < rule.min {
		if len(parts) == 0 {
			return nil, newError(blameAfter(r), msgExpression)
		}
		return nil, expected(blameAfter(r), ",")
	}
	args, err := parseParts(parts, rule.optional)
	if err != nil {
		return nil, err
	}
	if rule.variables {
		for i, arg := range args {
			if !ast.IsAssignable(arg) {
				return nil, newError(parts[i].At(0), msgVariable)
			}
		}
	}
	return &ast.ArgumentStatement{Keyword: keyword, Args: args}, nil
}

// argList parses a comma-separated expression list. When optional is set,
// empty positions become nil; otherwise they are errors.
func argList(r tokens, optional bool) ([]ast.Expression, error) {
	if r.Empty() {
		return nil, nil
	}
	return parseParts(splitUnparenthesized(r, token.Comma), optional)
}

func parseParts(parts []tokens, optional bool) ([]ast.Expression, error) {
	args := make([]ast.Expression, 0, len(parts))
	for _, part := range parts {
		if part.Empty() {
			if !optional {
				return nil, newError(blameAfter(part), msgExpression)
			}
			args = append(args, nil)
			continue
		}
		arg, err := parseExpression(part)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// variableList parses a comma-separated list of assignable expressions.
func variableList(r tokens) ([]ast.Expression, error) {
	if r.Empty() {
		return nil, newError(blameAfter(r), msgVariable)
	}
	parts := splitUnparenthesized(r, token.Comma)
	vars := make([]ast.Expression, 0, len(parts))
	for _, part := range parts {
		v, err := variable(part)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func variable(r tokens) (ast.Expression, error) {
	if r.Empty() {
		return nil, newError(blameAfter(r), msgVariable)
	}
	v, err := parseExpression(r)
	if err != nil {
		return nil, err
	}
	if !ast.IsAssignable(v) {
		return nil, newError(r.At(0), msgVariable)
	}
	return v, nil
}

// optionalTail parses the comma-separated optional arguments after a
// mandatory part, allowing at most limit positions.
func optionalTail(h *TokenHandler, limit int) ([]ast.Expression, error) {
	if _, ok := h.Accept(token.Comma); !ok {
		return nil, nil
	}
	r := h.TakeRest()
	parts := splitUnparenthesized(r, token.Comma)
	if len(parts) > limit {
		comma, _ := parts[limit].Preceding()
		return nil, newError(comma, msgEndOfStatement)
	}
	return parseParts(parts, true)
}

// parseTarget consumes a line number or label.
func parseTarget(h *TokenHandler) (token.Token, error) {
	t := h.Current()
	if isLineNumber(t) || t.Kind == token.Identifier {
		h.Advance(1)
		return t, nil
	}
	return token.Token{}, newError(t, msgLineOrLabel)
}

// parseFileNumber consumes an expression up to the next unparenthesized
// comma, and the comma itself.
func parseFileNumber(h *TokenHandler) (ast.Expression, error) {
	comma := h.FindNextUnparenthesizedOf(token.Comma)
	if comma < 0 {
		return nil, expected(blameAfter(h.Rest()), ",")
	}
	file, err := parseExpression(h.Take(comma))
	if err != nil {
		return nil, err
	}
	h.Advance(1)
	return file, nil
}

// parsePoint consumes [STEP](x, y). STEP is rejected unless allowStep is set.
func parsePoint(h *TokenHandler, allowStep bool) (ast.Point, error) {
	var pt ast.Point
	if allowStep {
		_, pt.Step = h.Accept(token.STEP)
	}
	inner, err := h.ExpectParenthesizedTokens()
	if err != nil {
		return pt, err
	}
	comma := findUnparenthesized(inner, token.Comma)
	if comma < 0 {
		return pt, expected(blameAfter(inner), ",")
	}
	if pt.X, err = parseExpression(inner.To(comma)); err != nil {
		return pt, err
	}
	if pt.Y, err = parseExpression(inner.From(comma + 1)); err != nil {
		return pt, err
	}
	return pt, nil
}

// declMode selects what a declarator may contain.
type declMode int

const (
	// declVariable is a DIM or REDIM entry: bounds and AS type allowed.
	declVariable declMode = iota
	// declList is a COMMON, SHARED or STATIC entry: empty () allowed.
	declList
	// declParam is a procedure parameter: empty (), AS type, BYVAL for
	// DECLARE.
	declParam
	// declTypeElement is a TYPE body element: AS type required.
	declTypeElement
)

// parseDeclarator parses name[(bounds)][ AS type].
func parseDeclarator(r tokens, mode declMode) (*ast.Declarator, error) {
	h := NewTokenHandler(r)
	d := &ast.Declarator{}
	if mode == declParam {
		_, d.ByVal = h.Accept(token.BYVAL)
	}
	name, err := h.ExpectIdentifier(true)
	if err != nil {
		return nil, err
	}
	d.Name = name

	if h.Kind(0) == token.LeftParen {
		d.Parens = true
		inner, err := h.ExpectParenthesizedTokens()
		if err != nil {
			return nil, err
		}
		if !inner.Empty() {
			if mode != declVariable && mode != declTypeElement {
				return nil, expected(inner.At(0), ")")
			}
			if d.Bounds, err = parseBounds(inner); err != nil {
				return nil, err
			}
		}
	}

	if _, ok := h.Accept(token.AS); ok {
		if d.Type, err = parseTypeSpec(h); err != nil {
			return nil, err
		}
	} else if mode == declTypeElement {
		return nil, expected(h.Current(), "AS")
	}
	if err := h.ExpectEnd(); err != nil {
		return nil, err
	}
	return d, nil
}

func parseBounds(r tokens) ([]ast.Bound, error) {
	parts := splitUnparenthesized(r, token.Comma)
	bounds := make([]ast.Bound, 0, len(parts))
	for _, part := range parts {
		var b ast.Bound
		upper := part
		if to := findUnparenthesized(part, token.TO); to >= 0 {
			lower, err := parseExpression(part.To(to))
			if err != nil {
				return nil, err
			}
			b.Lower = lower
			upper = part.From(to + 1)
		}
		u, err := parseExpression(upper)
		if err != nil {
			return nil, err
		}
		b.Upper = u
		bounds = append(bounds, b)
	}
	return bounds, nil
}

// typeKeywords are the keywords that may follow AS.
//
//nolint:gochecknoglobals // Read-only lookup table.
var typeKeywords = []token.Kind{
	token.INTEGER, token.LONG, token.SINGLE, token.DOUBLE, token.STRING, token.ANY,
}

// parseTypeSpec parses the type after AS: a type keyword, STRING * n, or a
// user TYPE name.
func parseTypeSpec(h *TokenHandler) (*ast.TypeSpec, error) {
	t := h.Current()
	switch {
	case t.Kind == token.Identifier && !token.HasTypeSigil(t.Text):
		h.Advance(1)
		return &ast.TypeSpec{Type: t}, nil
	case t.Is(typeKeywords...):
		h.Advance(1)
	default:
		return nil, newError(t, "Expected: type")
	}
	spec := &ast.TypeSpec{Type: t}
	if t.Kind == token.STRING {
		if _, ok := h.Accept(token.Star); ok {
			length, err := parseExpression(h.TakeRest())
			if err != nil {
				return nil, err
			}
			spec.Length = length
		}
	}
	return spec, nil
}

// parseDeclarators parses a comma-separated declarator list.
func parseDeclarators(r tokens, mode declMode) ([]*ast.Declarator, error) {
	if r.Empty() {
		return nil, newError(blameAfter(r), msgIdentifier)
	}
	parts := splitUnparenthesized(r, token.Comma)
	decls := make([]*ast.Declarator, 0, len(parts))
	for _, part := range parts {
		if part.Empty() {
			return nil, newError(blameAfter(part), msgIdentifier)
		}
		d, err := parseDeclarator(part, mode)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// parseParams parses an optional parenthesized parameter list.
func parseParams(h *TokenHandler) (bool, []*ast.Declarator, error) {
	if h.Kind(0) != token.LeftParen {
		return false, nil, nil
	}
	inner, err := h.ExpectParenthesizedTokens()
	if err != nil {
		return true, nil, err
	}
	if inner.Empty() {
		return true, nil, nil
	}
	params, err := parseDeclarators(inner, declParam)
	return true, params, err
}

func isEventAction(k token.Kind) bool {
	return k == token.ON || k == token.OFF || k == token.STOP
}
