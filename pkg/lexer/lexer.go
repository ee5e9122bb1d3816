// Package lexer turns QuickBASIC source text into the token stream consumed by
// the parser.
//
// The lexer is total: every byte of input ends up in some token, characters
// it does not understand become Illegal tokens and the parser reports them.
// Whitespace is never emitted as a token; it is attached to the Space field of
// the token that follows it so the parser can preserve indentation.
package lexer

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// Lexer scans one source text.
type Lexer struct {
	src    string
	pos    int
	line   int
	col    int
	tokens []token.Token

	// afterData is set once DATA has been emitted on the current statement;
	// the rest of the statement is then captured as raw text.
	afterData bool
}

// Tokenize scans src and returns its tokens, terminated by an EOF token.
func Tokenize(src string) []token.Token {
	return TokenizeAt(src, 1)
}

// TokenizeAt scans src as if it started on the given 1-based line. Editors
// use it to re-lex a single committed line in place.
func TokenizeAt(src string, line int) []token.Token {
	l := &Lexer{src: src, line: line, col: 1}
	return l.run()
}

func (l *Lexer) run() []token.Token {
	for {
		space := l.skipSpace()
		if l.pos >= len(l.src) {
			l.emit(token.Token{Kind: token.EOF, Line: l.line, Column: l.col, Space: space})
			return l.tokens
		}
		if l.afterData {
			l.afterData = false
			if l.lexDataText(space) {
				continue
			}
		}
		l.lexToken(space)
	}
}

func (l *Lexer) emit(t token.Token) {
	l.tokens = append(l.tokens, t)
}

// skipSpace consumes blanks and tabs and returns them.
func (l *Lexer) skipSpace() string {
	start := l.pos
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	l.col += l.pos - start
	return l.src[start:l.pos]
}

// take consumes n bytes and returns a token of the given kind.
func (l *Lexer) take(kind token.Kind, n int, space string) token.Token {
	t := token.Token{Kind: kind, Text: l.src[l.pos : l.pos+n], Line: l.line, Column: l.col, Space: space}
	l.pos += n
	l.col += n
	return t
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset < len(l.src) {
		return l.src[l.pos+offset]
	}
	return 0
}

func (l *Lexer) lexToken(space string) {
	c := l.src[l.pos]
	switch {
	case c == '\r' || c == '\n':
		n := 1
		if c == '\r' && l.peekByte(1) == '\n' {
			n = 2
		}
		t := l.take(token.NewLine, n, space)
		l.line++
		l.col = 1
		l.emit(t)
	case c == '\'':
		l.emit(l.take(token.Comment, l.restOfLine(), space))
	case c == '"':
		l.lexString(space)
	case isDigit(c) || (c == '.' && isDigit(l.peekByte(1))):
		l.lexNumber(space, false)
	case c == '&':
		l.lexRadix(space)
	case c == '-' && l.startsNegativeLiteral():
		l.lexNumber(space, true)
	case isLetter(c):
		l.lexWord(space)
	default:
		l.lexPunct(space)
	}
}

// restOfLine returns the byte count up to, not including, the line break.
func (l *Lexer) restOfLine() int {
	n := strings.IndexAny(l.src[l.pos:], "\r\n")
	if n < 0 {
		return len(l.src) - l.pos
	}
	return n
}

// startsNegativeLiteral reports whether a minus at the cursor begins a
// negative literal: it must be followed by a digit and must not follow an
// operand, so A-1 stays a subtraction while A(-1) gets a literal.
func (l *Lexer) startsNegativeLiteral() bool {
	next := l.peekByte(1)
	if !isDigit(next) && (next != '.' || !isDigit(l.peekByte(2))) {
		return false
	}
	if len(l.tokens) == 0 {
		return true
	}
	prev := l.tokens[len(l.tokens)-1]
	switch prev.Kind {
	case token.Identifier, token.Number, token.String, token.RightParen:
		return false
	}
	if _, isFunc := token.Functions[prev.Kind]; isFunc {
		return false
	}
	return true
}

func (l *Lexer) lexString(space string) {
	end := l.pos + 1
	for end < len(l.src) && l.src[end] != '"' && l.src[end] != '\r' && l.src[end] != '\n' {
		end++
	}
	body := l.src[l.pos+1 : end]
	if end < len(l.src) && l.src[end] == '"' {
		end++
	}
	t := l.take(token.String, end-l.pos, space)
	t.Value = body
	l.emit(t)
}

func (l *Lexer) lexNumber(space string, negative bool) {
	end := l.pos
	if negative {
		end++
	}
	for end < len(l.src) && isDigit(l.src[end]) {
		end++
	}
	isFloat := false
	if end < len(l.src) && l.src[end] == '.' {
		isFloat = true
		end++
		for end < len(l.src) && isDigit(l.src[end]) {
			end++
		}
	}
	if end < len(l.src) && strings.IndexByte("eEdD", l.src[end]) >= 0 {
		exp := end + 1
		if exp < len(l.src) && (l.src[exp] == '+' || l.src[exp] == '-') {
			exp++
		}
		if exp < len(l.src) && isDigit(l.src[exp]) {
			isFloat = true
			end = exp
			for end < len(l.src) && isDigit(l.src[end]) {
				end++
			}
		}
	}
	digits := l.src[l.pos:end]
	if end < len(l.src) && strings.IndexByte("%&!#", l.src[end]) >= 0 {
		if l.src[end] == '!' || l.src[end] == '#' {
			isFloat = true
		}
		end++
	}
	t := l.take(token.Number, end-l.pos, space)
	t.Value = numberValue(digits, isFloat)
	l.emit(t)
}

func numberValue(digits string, isFloat bool) any {
	if !isFloat {
		if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return v
		}
	}
	normalized := strings.NewReplacer("d", "e", "D", "e").Replace(digits)
	if v, err := strconv.ParseFloat(normalized, 64); err == nil {
		return v
	}
	return nil
}

// lexRadix scans &H and &O literals. A lone & is illegal.
func (l *Lexer) lexRadix(space string) {
	base := 0
	prefix := 2
	switch l.peekByte(1) {
	case 'h', 'H':
		base = 16
	case 'o', 'O':
		base = 8
	default:
		if isDigit(l.peekByte(1)) {
			base, prefix = 8, 1
		}
	}
	if base == 0 {
		l.emit(l.take(token.Illegal, 1, space))
		return
	}
	end := l.pos + prefix
	for end < len(l.src) && isRadixDigit(l.src[end], base) {
		end++
	}
	digits := l.src[l.pos+prefix : end]
	if end < len(l.src) && (l.src[end] == '%' || l.src[end] == '&') {
		end++
	}
	t := l.take(token.Number, end-l.pos, space)
	if v, err := strconv.ParseInt(digits, base, 64); err == nil {
		t.Value = v
	}
	l.emit(t)
}

func (l *Lexer) lexWord(space string) {
	end := l.pos
	for end < len(l.src) && (isLetter(l.src[end]) || isDigit(l.src[end]) || (l.src[end] == '.' && l.periodInName(end))) {
		end++
	}
	if end < len(l.src) && strings.IndexByte(token.TypeSigils, l.src[end]) >= 0 {
		end++
	}
	word := l.src[l.pos:end]

	kind, isKeyword := token.LookupKeyword(word)
	if !isKeyword {
		l.emit(l.take(token.Identifier, end-l.pos, space))
		return
	}
	if kind == token.REM {
		l.emit(l.take(token.Comment, l.restOfLine(), space))
		return
	}
	t := l.take(kind, end-l.pos, space)
	l.emit(t)
	if kind == token.DATA {
		l.afterData = true
	}
}

// periodInName reports whether the period at i continues a name. Periods are
// legal inside names, so p.x is one identifier; a period after a subscript,
// as in a(1).x, is lexed as the field access operator.
func (l *Lexer) periodInName(i int) bool {
	return i+1 < len(l.src) && (isLetter(l.src[i+1]) || isDigit(l.src[i+1]))
}

// lexDataText captures everything after DATA up to an unquoted colon or the
// end of the line. It reports false when the payload is empty.
func (l *Lexer) lexDataText(space string) bool {
	end := l.pos
	quoted := false
	for end < len(l.src) {
		c := l.src[end]
		if c == '\r' || c == '\n' || (c == ':' && !quoted) {
			break
		}
		if c == '"' {
			quoted = !quoted
		}
		end++
	}
	if end == l.pos {
		return false
	}
	l.emit(l.take(token.DataText, end-l.pos, space))
	return true
}

//nolint:gochecknoglobals // Read-only lookup table.
var punctuation = map[string]token.Kind{
	"(": token.LeftParen, ")": token.RightParen, ",": token.Comma, ":": token.Colon,
	";": token.Semicolon, "#": token.Hash, ".": token.Period, "+": token.Plus,
	"-": token.Minus, "*": token.Star, "/": token.Slash, "\\": token.Backslash,
	"^": token.Caret, "=": token.Equal, "<>": token.NotEqual, "<=": token.LessEqual,
	">=": token.GreaterEqual, "<": token.Less, ">": token.Greater,
}

func (l *Lexer) lexPunct(space string) {
	if l.src[l.pos] == '?' {
		l.emit(l.take(token.PRINT, 1, space))
		return
	}
	if l.pos+1 < len(l.src) {
		if kind, ok := punctuation[l.src[l.pos:l.pos+2]]; ok {
			l.emit(l.take(kind, 2, space))
			return
		}
	}
	if kind, ok := punctuation[l.src[l.pos:l.pos+1]]; ok {
		l.emit(l.take(kind, 1, space))
		return
	}
	l.emit(l.take(token.Illegal, 1, space))
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isRadixDigit(c byte, base int) bool {
	if base == 8 {
		return c >= '0' && c <= '7'
	}
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
