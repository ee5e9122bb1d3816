package parser

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/listrange"
	"github.com/yaklabco/gobasic/pkg/token"
)

// tokens is a copy-free view over the token stream.
type tokens = listrange.Range[token.Token]

// TokenHandler is a cursor over one statement's tokens. Every failing
// operation returns a *SyntaxError blamed on the offending token, or on the
// token that follows the range when the range is exhausted.
type TokenHandler struct {
	tokens tokens
	pos    int
}

// NewTokenHandler returns a cursor at the start of r.
func NewTokenHandler(r tokens) *TokenHandler {
	return &TokenHandler{tokens: r}
}

// Remaining returns the number of unconsumed tokens.
func (h *TokenHandler) Remaining() int { return h.tokens.Len() - h.pos }

// Done reports whether every token has been consumed.
func (h *TokenHandler) Done() bool { return h.pos >= h.tokens.Len() }

// Kind returns the kind of the token i positions ahead, or EOF past the end.
func (h *TokenHandler) Kind(i int) token.Kind {
	if h.pos+i < h.tokens.Len() {
		return h.tokens.At(h.pos + i).Kind
	}
	return token.EOF
}

// Current returns the token at the cursor, or the end token when exhausted.
// It is the token to blame for an error found at the cursor.
func (h *TokenHandler) Current() token.Token {
	if h.Done() {
		return blameAfter(h.tokens)
	}
	return h.tokens.At(h.pos)
}

// Peek returns the token i positions ahead.
func (h *TokenHandler) Peek(i int) (token.Token, error) {
	if h.pos+i >= h.tokens.Len() {
		return token.Token{}, newError(blameAfter(h.tokens), msgStatement)
	}
	return h.tokens.At(h.pos + i), nil
}

// Next consumes and returns the token at the cursor.
func (h *TokenHandler) Next() (token.Token, error) {
	t, err := h.Peek(0)
	if err != nil {
		return t, err
	}
	h.pos++
	return t, nil
}

// Advance skips n tokens.
func (h *TokenHandler) Advance(n int) {
	h.pos = min(h.pos+n, h.tokens.Len())
}

// Accept consumes the token at the cursor if it has the given kind.
func (h *TokenHandler) Accept(kind token.Kind) (token.Token, bool) {
	if h.Kind(0) != kind {
		return token.Token{}, false
	}
	t := h.tokens.At(h.pos)
	h.pos++
	return t, true
}

// Expect consumes a token of the given kind.
func (h *TokenHandler) Expect(kind token.Kind) (token.Token, error) {
	if t, ok := h.Accept(kind); ok {
		return t, nil
	}
	return token.Token{}, expected(h.Current(), kind.String())
}

// ExpectOneOf consumes a token of any of the given kinds.
func (h *TokenHandler) ExpectOneOf(kinds ...token.Kind) (token.Token, error) {
	for _, k := range kinds {
		if t, ok := h.Accept(k); ok {
			return t, nil
		}
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return token.Token{}, expected(h.Current(), strings.Join(names, " or "))
}

// ExpectIdentifier consumes an identifier. Unless allowTypeCharacter is set,
// names ending in a type sigil are rejected.
func (h *TokenHandler) ExpectIdentifier(allowTypeCharacter bool) (token.Token, error) {
	if h.Kind(0) != token.Identifier {
		return token.Token{}, newError(h.Current(), msgIdentifier)
	}
	t := h.tokens.At(h.pos)
	if !allowTypeCharacter && token.HasTypeSigil(t.Text) {
		return token.Token{}, newError(t, msgTypeCharacter)
	}
	h.pos++
	return t, nil
}

// ExpectParenthesizedTokens consumes a balanced ( ... ) group and returns
// the tokens between the parentheses.
func (h *TokenHandler) ExpectParenthesizedTokens() (tokens, error) {
	if _, err := h.Expect(token.LeftParen); err != nil {
		return tokens{}, err
	}
	start := h.pos
	depth := 1
	for i := start; i < h.tokens.Len(); i++ {
		switch h.tokens.At(i).Kind {
		case token.LeftParen:
			depth++
		case token.RightParen:
			depth--
			if depth == 0 {
				h.pos = i + 1
				return h.tokens.Slice(start, i-start), nil
			}
		}
	}
	return tokens{}, expected(blameAfter(h.tokens), ")")
}

// FindNextUnparenthesizedOf returns the offset from the cursor of the first
// token of any given kind at nesting depth 0, or -1.
func (h *TokenHandler) FindNextUnparenthesizedOf(kinds ...token.Kind) int {
	return findUnparenthesized(h.tokens.From(h.pos), kinds...)
}

// Rest returns the unconsumed tokens without consuming them.
func (h *TokenHandler) Rest() tokens { return h.tokens.From(h.pos) }

// Take consumes and returns the next n tokens.
func (h *TokenHandler) Take(n int) tokens {
	r := h.tokens.Slice(h.pos, n)
	h.pos += n
	return r
}

// TakeRest consumes and returns every remaining token.
func (h *TokenHandler) TakeRest() tokens { return h.Take(h.Remaining()) }

// TakeUntil consumes tokens up to the first unparenthesized token of any
// given kind, or to the end, and returns them. The delimiter is not consumed.
func (h *TokenHandler) TakeUntil(kinds ...token.Kind) tokens {
	n := h.FindNextUnparenthesizedOf(kinds...)
	if n < 0 {
		return h.TakeRest()
	}
	return h.Take(n)
}

// ExpectEnd fails unless every token has been consumed.
func (h *TokenHandler) ExpectEnd() error {
	if h.Done() {
		return nil
	}
	return newError(h.Current(), msgEndOfStatement)
}

// findUnparenthesized returns the index of the first token in r of any given
// kind at nesting depth 0, or -1.
func findUnparenthesized(r tokens, kinds ...token.Kind) int {
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
		if depth == 0 && t.Is(kinds...) {
			return i
		}
	}
	return -1
}

// splitUnparenthesized splits r at every depth-0 token of the given kind.
// n delimiters yield n+1 ranges, some of which may be empty.
func splitUnparenthesized(r tokens, kind token.Kind) []tokens {
	var parts []tokens
	for {
		i := findUnparenthesized(r, kind)
		if i < 0 {
			return append(parts, r)
		}
		parts = append(parts, r.To(i))
		r = r.From(i + 1)
	}
}

// blameAfter returns the token that follows r in the backing stream, or a
// synthesized end-of-line token just past the last token.
func blameAfter(r tokens) token.Token {
	if t, ok := r.Following(); ok && t.Kind != token.EOF {
		return t
	}
	var last token.Token
	switch {
	case !r.Empty():
		last = r.Last()
	default:
		if t, ok := r.Preceding(); ok {
			last = t
		} else {
			return token.EndOfLine(1, 1)
		}
	}
	if last.Kind == token.NewLine {
		return last
	}
	return token.EndOfLine(last.Line, last.End())
}
