package ast

import (
	"strings"
)

// Label is a line label such as "Retry:" at the start of a line.
type Label struct {
	Name        string
	Indentation string
}

// CodeLine is one source line: an optional line number, an optional label,
// colon-separated statements and an optional trailing ' comment.
type CodeLine struct {
	LineNumber string
	Label      *Label
	Statements []Statement
	// Comment is the trailing comment including its leading quote.
	Comment string
	// CommentSpace is the whitespace before Comment.
	CommentSpace string
}

// IsEmpty reports whether the line holds nothing at all.
func (l *CodeLine) IsEmpty() bool {
	return l.LineNumber == "" && l.Label == nil && len(l.Statements) == 0 && l.Comment == ""
}

// Render writes the line without a terminator.
func (l *CodeLine) Render(sb *strings.Builder) {
	header := false
	if l.LineNumber != "" {
		sb.WriteString(l.LineNumber)
		header = true
	}
	if l.Label != nil {
		require(l.Label.Name != "", "Label", "name")
		if header && l.Label.Indentation == "" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(l.Label.Indentation)
		}
		sb.WriteString(l.Label.Name)
		sb.WriteByte(':')
		header = true
	}
	for i, s := range l.Statements {
		if i == 0 {
			indent := s.Indentation()
			if header && indent == "" {
				indent = " "
			}
			sb.WriteString(indent)
		} else {
			sb.WriteString(": ")
		}
		s.Render(sb)
	}
	if l.Comment != "" {
		space := l.CommentSpace
		if space == "" && (header || len(l.Statements) > 0) {
			space = " "
		}
		sb.WriteString(space)
		sb.WriteString(l.Comment)
	}
}

// String renders the line.
func (l *CodeLine) String() string {
	var sb strings.Builder
	l.Render(&sb)
	return sb.String()
}

// RenderOptions controls how lines are joined into a file.
type RenderOptions struct {
	// CRLF terminates lines with "\r\n" instead of "\n".
	CRLF bool
}

func (o RenderOptions) newline() string {
	if o.CRLF {
		return "\r\n"
	}
	return "\n"
}

// ElementKind tells module code apart from procedures.
type ElementKind int

const (
	// Main is the module-level code.
	Main ElementKind = iota
	// Sub is a SUB ... END SUB procedure.
	Sub
	// Function is a FUNCTION ... END FUNCTION procedure.
	Function
)

// MarshalText encodes the kind by name.
func (k ElementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k ElementKind) String() string {
	switch k {
	case Main:
		return "main"
	case Sub:
		return "sub"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// CompilationElement is one scope of a module: the main body or one
// procedure, as an ordered list of lines.
type CompilationElement struct {
	Kind  ElementKind
	Name  string
	Lines []*CodeLine
}

// Render writes every line followed by a terminator.
func (e *CompilationElement) Render(sb *strings.Builder, opts RenderOptions) {
	nl := opts.newline()
	for _, l := range e.Lines {
		l.Render(sb)
		sb.WriteString(nl)
	}
}

// CompilationUnit is one source module. The main element comes first,
// procedures follow in source order.
type CompilationUnit struct {
	Elements []*CompilationElement
}

// Main returns the module-level element.
func (u *CompilationUnit) Main() *CompilationElement {
	for _, e := range u.Elements {
		if e.Kind == Main {
			return e
		}
	}
	return nil
}

// Procedure returns the SUB or FUNCTION element with the given name, compared
// case-insensitively.
func (u *CompilationUnit) Procedure(name string) *CompilationElement {
	for _, e := range u.Elements {
		if e.Kind != Main && strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// Render writes the whole module.
func (u *CompilationUnit) Render(sb *strings.Builder, opts RenderOptions) {
	for _, e := range u.Elements {
		e.Render(sb, opts)
	}
}

// String renders the module with LF line endings.
func (u *CompilationUnit) String() string {
	var sb strings.Builder
	u.Render(&sb, RenderOptions{})
	return sb.String()
}
