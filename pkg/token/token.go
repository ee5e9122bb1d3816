package token

import "fmt"

// Token is one lexical element. Tokens are immutable once produced.
type Token struct {
	// Kind classifies the token.
	Kind Kind

	// Text is the raw source text of the token.
	Text string

	// Line and Column are the 1-based position of the first byte of Text.
	Line   int
	Column int

	// Value holds the decoded literal payload: int64 or float64 for numbers,
	// the unquoted contents for strings. Nil for every other kind.
	Value any

	// Space is the whitespace that preceded the token on its line.
	Space string
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case EOF, NewLine:
		return t.Kind.String()
	default:
		if t.Text == "" {
			return t.Kind.String()
		}
		return t.Text
	}
}

// Position formats the token location as line:column.
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// End returns the column just past the token text.
func (t Token) End() int {
	return t.Column + len(t.Text)
}

// EndOfLine synthesizes the end-of-line token used to blame errors found
// after the last real token of a line.
func EndOfLine(line, column int) Token {
	return Token{Kind: NewLine, Line: line, Column: column}
}
