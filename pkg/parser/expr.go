package parser

import (
	"math"
	"slices"
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/listrange"
	"github.com/yaklabco/gobasic/pkg/token"
)

// exprParser parses one expression range. In trial mode every failure is
// reported as errTrial, which carries no position and costs no allocation.
type exprParser struct {
	trial bool
}

func (e exprParser) fail(t token.Token, message string) error {
	if e.trial {
		return errTrial
	}
	return newError(t, message)
}

// parseExpression parses r as one expression. When the first attempt fails,
// each negative literal in turn, right to left, is split into a minus and a
// positive literal and the parse is retried with only that split applied.
// If no retry succeeds the first error is returned.
func parseExpression(r tokens) (ast.Expression, error) {
	return exprParser{}.parseWithRetry(r)
}

// tryExpression is parseExpression for disambiguation: it reports failure
// instead of returning an error.
func tryExpression(r tokens) (ast.Expression, bool) {
	expr, err := exprParser{trial: true}.parseWithRetry(r)
	return expr, err == nil
}

func (e exprParser) parseWithRetry(r tokens) (ast.Expression, error) {
	expr, err := e.parse(r)
	if err == nil {
		return expr, nil
	}
	for i := r.Len() - 1; i >= 0; i-- {
		t := r.At(i)
		if t.Kind != token.Number || !strings.HasPrefix(t.Text, "-") {
			continue
		}
		minus, positive := splitNegative(t)
		work := slices.Clone(r.Items())
		work[i] = minus
		work = slices.Insert(work, i+1, positive)
		if expr, retryErr := e.parse(listrange.New(work)); retryErr == nil {
			return expr, nil
		}
	}
	return nil, err
}

func splitNegative(t token.Token) (token.Token, token.Token) {
	minus := token.Token{Kind: token.Minus, Text: "-", Line: t.Line, Column: t.Column, Space: t.Space}
	positive := token.Token{
		Kind:   token.Number,
		Text:   t.Text[1:],
		Line:   t.Line,
		Column: t.Column + 1,
		Value:  negate(t.Value),
	}
	return minus, positive
}

func negate(v any) any {
	switch n := v.(type) {
	case int64:
		return -n
	case float64:
		return -n
	default:
		return nil
	}
}

func (e exprParser) parse(r tokens) (ast.Expression, error) {
	n := r.Len()
	switch n {
	case 0:
		return nil, e.fail(blameAfter(r), msgExpression)
	case 1:
		return e.single(r)
	}

	if r.Last().Kind == token.RightParen {
		open := matchingOpen(r)
		switch {
		case open < 0:
			return nil, e.fail(r.Last(), msgEndOfStatement)
		case open == 0:
			inner, err := e.parse(r.Slice(1, n-2))
			if err != nil {
				return nil, err
			}
			return &ast.Paren{Inner: inner}, nil
		case open == 1 && isFunction(r.At(0).Kind):
			return e.keywordFunction(r.At(0), r.Slice(2, n-3), r.Last())
		default:
			if expr, matched, err := e.callOrIndex(r, open); matched {
				return expr, err
			}
		}
	}

	if n == 2 && r.At(0).Kind == token.Minus && r.At(1).Kind == token.Number &&
		!strings.HasPrefix(r.At(1).Text, "-") {
		return &ast.Literal{Token: foldNegative(r.At(0), r.At(1))}, nil
	}

	return e.operators(r)
}

func foldNegative(minus, num token.Token) token.Token {
	return token.Token{
		Kind:   token.Number,
		Text:   "-" + num.Text,
		Line:   minus.Line,
		Column: minus.Column,
		Value:  negate(num.Value),
		Space:  minus.Space,
	}
}

func (e exprParser) single(r tokens) (ast.Expression, error) {
	t := r.At(0)
	switch t.Kind {
	case token.Number, token.String:
		return &ast.Literal{Token: t}, nil
	case token.Identifier:
		return &ast.Identifier{Token: t}, nil
	}
	if info, ok := token.LookupFunction(t.Kind); ok {
		if info.Parameterless {
			return &ast.KeywordFunction{Function: t}, nil
		}
		return nil, e.fail(blameAfter(r), "Expected: (")
	}
	return nil, e.fail(t, msgExpression)
}

func isFunction(k token.Kind) bool {
	_, ok := token.Functions[k]
	return ok
}

// matchingOpen returns the index of the ( that matches the final ) of r,
// or -1 when the parentheses are unbalanced.
func matchingOpen(r tokens) int {
	depth := 0
	for i := r.Len() - 1; i >= 0; i-- {
		switch r.At(i).Kind {
		case token.RightParen:
			depth++
		case token.LeftParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (e exprParser) keywordFunction(fn token.Token, inner tokens, closing token.Token) (ast.Expression, error) {
	info := token.Functions[fn.Kind]
	if !info.AcceptsArguments() {
		open, _ := inner.Preceding()
		return nil, e.fail(open, msgEndOfStatement)
	}
	var parts []tokens
	if !inner.Empty() {
		parts = splitUnparenthesized(inner, token.Comma)
	}
	if len(parts) > info.MaxArgs {
		comma, _ := parts[info.MaxArgs].Preceding()
		return nil, e.fail(comma, "Expected: )")
	}
	if len(parts) < info.MinArgs {
		if len(parts) == 0 {
			return nil, e.fail(closing, msgExpression)
		}
		return nil, e.fail(closing, "Expected: ,")
	}
	args, err := e.args(parts)
	if err != nil {
		return nil, err
	}
	return &ast.KeywordFunction{Function: fn, Args: args, Parenthesized: true}, nil
}

// callOrIndex handles subject(args). matched is false when the tokens before
// the parentheses are not a valid subject, so the caller falls through to
// the operator scan.
func (e exprParser) callOrIndex(r tokens, open int) (ast.Expression, bool, error) {
	subject, err := exprParser{trial: true}.parse(r.To(open))
	if err != nil || !ast.IsIndexSubject(subject) {
		return nil, false, nil
	}
	inner := r.Slice(open+1, r.Len()-open-2)
	var args []ast.Expression
	if !inner.Empty() {
		args, err = e.args(splitUnparenthesized(inner, token.Comma))
		if err != nil {
			return nil, true, err
		}
	}
	return &ast.CallOrIndex{Subject: subject, Args: args}, true, nil
}

func (e exprParser) args(parts []tokens) ([]ast.Expression, error) {
	args := make([]ast.Expression, 0, len(parts))
	for _, part := range parts {
		arg, err := e.parse(part)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func isPrefix(k token.Kind) bool {
	switch k {
	case token.Minus, token.Plus, token.NOT, token.Hash:
		return true
	default:
		return false
	}
}

func prefixPrecedence(k token.Kind) int {
	if k == token.NOT {
		return token.PrecUnaryNot
	}
	return token.PrecUnaryMinus
}

// unaryPosition reports whether the token at i has no left operand.
func unaryPosition(r tokens, i int) bool {
	if i == 0 {
		return true
	}
	prev := r.At(i - 1).Kind
	return prev.IsOperator() || isPrefix(prev)
}

// operators splits r at its lowest-precedence depth-0 operator, preferring
// the rightmost of equals, or applies a leading prefix operator.
func (e exprParser) operators(r tokens) (ast.Expression, error) {
	best, bestPrec := -1, math.MaxInt
	depth := 0
	for i, t := range r.All() {
		switch t.Kind {
		case token.LeftParen:
			depth++
			continue
		case token.RightParen:
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		prec := token.Precedence(t.Kind)
		if prec == token.PrecNone || (isPrefix(t.Kind) && unaryPosition(r, i)) {
			continue
		}
		if prec <= bestPrec {
			best, bestPrec = i, prec
		}
	}

	first := r.At(0)
	if isPrefix(first.Kind) && (best < 0 || bestPrec > prefixPrecedence(first.Kind)) {
		operand, err := e.parse(r.From(1))
		if err != nil {
			return nil, err
		}
		if first.Kind == token.Plus {
			return operand, nil
		}
		return &ast.Unary{Op: first.Kind, Operand: operand}, nil
	}
	if best < 0 {
		return nil, e.fail(r.At(primaryEnd(r)), msgEndOfStatement)
	}

	left, err := e.parse(r.To(best))
	if err != nil {
		return nil, err
	}
	right, err := e.parse(r.From(best + 1))
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: r.At(best).Kind, Left: left, Right: right}, nil
}

// primaryEnd returns the index just past the first operand of r, skipping a
// parenthesized group and a subscript that follows a name. It is the token to
// blame when two operands are adjacent.
func primaryEnd(r tokens) int {
	i := 0
	if r.At(0).Kind != token.LeftParen {
		i = 1
	}
	if i < r.Len() && r.At(i).Kind == token.LeftParen {
		depth := 0
		for ; i < r.Len(); i++ {
			switch r.At(i).Kind {
			case token.LeftParen:
				depth++
			case token.RightParen:
				depth--
			}
			if depth == 0 {
				i++
				break
			}
		}
	}
	return min(max(i, 1), r.Len()-1)
}
