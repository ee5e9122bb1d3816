// Package langdetect decides whether a file holds BASIC source. Discovery
// uses it for files whose extension is not one of the configured BASIC
// extensions, such as extensionless listings or .txt exports.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gobasic/pkg/lexer"
	"github.com/yaklabco/gobasic/pkg/token"
)

// Basic is the name returned for content recognized as BASIC by the keyword
// heuristic.
const Basic = "QuickBASIC"

// Unknown is returned when nothing matches.
const Unknown = "text"

//nolint:gochecknoglobals // Read-only lookup table.
var basicDialects = map[string]bool{
	"QuickBASIC":        true,
	"BASIC":             true,
	"FreeBasic":         true,
	"Visual Basic 6.0":  true,
	"VBA":               true,
	"Visual Basic .NET": true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"QuickBASIC", "BASIC", "FreeBasic", "Visual Basic 6.0",
	"Shell", "Python", "C", "Text", "Markdown", "Batchfile",
}

// Detect names the language of content. The shebang wins, then an
// unambiguous extension, then the keyword heuristic, then the classifier.
func Detect(path string, content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}
	if looksLikeBasic(content) {
		return Basic
	}
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return lang
	}
	return Unknown
}

// IsBasic reports whether lang is a BASIC dialect gobasic can read.
func IsBasic(lang string) bool {
	return basicDialects[lang]
}

// sampleLines bounds how much of a file the heuristic looks at.
const sampleLines = 200

// looksLikeBasic reports whether most non-blank lines start, after an
// optional line number or label, with a BASIC statement keyword, an
// assignment or a comment.
func looksLikeBasic(content []byte) bool {
	lines := strings.Split(string(content), "\n")
	if len(lines) > sampleLines {
		lines = lines[:sampleLines]
	}
	total, hits := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if startsLikeBasic(lexer.Tokenize(line)) {
			hits++
		}
	}
	return total > 0 && hits*3 >= total*2
}

func startsLikeBasic(toks []token.Token) bool {
	i := 0
	if i < len(toks) && toks[i].Kind == token.Number {
		i++
	}
	if i+1 < len(toks) && toks[i].Kind == token.Identifier && toks[i+1].Kind == token.Colon {
		i += 2
	}
	if i >= len(toks) {
		return false
	}
	first := toks[i]
	switch {
	case first.Kind == token.Comment:
		return true
	case first.Kind.IsKeyword():
		return !first.Kind.IsOperator()
	case first.Kind == token.Identifier:
		return i+1 < len(toks) && toks[i+1].Kind == token.Equal
	default:
		return false
	}
}
