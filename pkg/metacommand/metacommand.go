// Package metacommand canonicalizes the $STATIC, $DYNAMIC and $INCLUDE
// directives that QuickBASIC reads out of comments.
package metacommand

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMetacommand reports a malformed directive, such as $INCLUDE without a
// quoted file name.
var ErrMetacommand = errors.New("metacommand error")

// Directive names, upper case, without the $.
const (
	Static  = "STATIC"
	Dynamic = "DYNAMIC"
	Include = "INCLUDE"
)

// Directive is one metacommand found in a comment.
type Directive struct {
	Name string
	// File is the quoted file name of $INCLUDE, without quotes.
	File string
}

// Normalize rewrites the spacing around every directive in a comment to a
// single blank before the directive and, for $INCLUDE, the form
// $INCLUDE: 'file'. Directive names are upper-cased. All other text is left
// unchanged, so applying Normalize to its own output is a no-op.
func Normalize(comment string) (string, error) {
	out, _, err := scan(comment)
	return out, err
}

// Directives returns the directives present in a comment.
func Directives(comment string) ([]Directive, error) {
	_, found, err := scan(comment)
	return found, err
}

func scan(comment string) (string, []Directive, error) {
	if !strings.Contains(comment, "$") {
		return comment, nil, nil
	}

	var (
		sb    strings.Builder
		found []Directive
	)
	pos := 0
	for pos < len(comment) {
		dollar := strings.IndexByte(comment[pos:], '$')
		if dollar < 0 {
			break
		}
		at := pos + dollar
		name, nameEnd := directiveAt(comment, at)
		if name == "" {
			sb.WriteString(comment[pos : at+1])
			pos = at + 1
			continue
		}

		// Collapse the blanks before the directive to one. A directive that
		// touches the comment quote gets a blank inserted.
		before := strings.TrimRight(comment[pos:at], " \t")
		sb.WriteString(before)
		if at > 0 && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		sb.WriteByte('$')
		sb.WriteString(name)

		d := Directive{Name: name}
		end := nameEnd
		if name == Include {
			file, fileEnd, err := includeTarget(comment, nameEnd)
			if err != nil {
				return "", nil, err
			}
			d.File = file
			sb.WriteString(": '")
			sb.WriteString(file)
			sb.WriteByte('\'')
			end = fileEnd
		}
		found = append(found, d)

		// Collapse the blanks after the directive; drop them at the end.
		rest := strings.TrimLeft(comment[end:], " \t")
		if rest != "" && len(rest) != len(comment)-end {
			sb.WriteByte(' ')
		}
		pos = len(comment) - len(rest)
	}
	sb.WriteString(comment[pos:])
	return sb.String(), found, nil
}

// directiveAt returns the directive name starting at the $ at index at, and
// the index just past it. The $ must start a word and the name must be
// followed by a non-letter.
func directiveAt(s string, at int) (string, int) {
	if at > 0 {
		prev := s[at-1]
		if prev != ' ' && prev != '\t' && prev != '\'' {
			return "", 0
		}
	}
	end := at + 1
	for end < len(s) && isLetter(s[end]) {
		end++
	}
	word := strings.ToUpper(s[at+1 : end])
	switch word {
	case Static, Dynamic, Include:
		return word, end
	default:
		return "", 0
	}
}

// includeTarget parses ": 'file'" after $INCLUDE.
func includeTarget(s string, pos int) (string, int, error) {
	pos = skipBlanks(s, pos)
	if pos >= len(s) || s[pos] != ':' {
		return "", 0, fmt.Errorf("%w: $INCLUDE must be followed by ':'", ErrMetacommand)
	}
	pos = skipBlanks(s, pos+1)
	if pos >= len(s) || s[pos] != '\'' {
		return "", 0, fmt.Errorf("%w: $INCLUDE file name must be quoted with '", ErrMetacommand)
	}
	closing := strings.IndexByte(s[pos+1:], '\'')
	if closing < 0 {
		return "", 0, fmt.Errorf("%w: unterminated $INCLUDE file name", ErrMetacommand)
	}
	file := s[pos+1 : pos+1+closing]
	if file == "" {
		return "", 0, fmt.Errorf("%w: empty $INCLUDE file name", ErrMetacommand)
	}
	return file, pos + closing + 2, nil
}

func skipBlanks(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
