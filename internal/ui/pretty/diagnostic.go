package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gobasic/pkg/document"
)

// Severity labels used in diagnostic output. A strict parse stops at its
// error; a tolerant parse keeps the line and reports a warning.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// FormatDiagnostic formats a single syntax error for terminal output.
func (s *Styles) FormatDiagnostic(path string, diag *document.Diagnostic, severity string, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), diag.Line, diag.Column)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.FormatSeverity(severity),
		s.Message.Render(diag.Message),
	))

	if showContext && diag.Text != "" {
		builder.WriteString(s.FormatSourceContext(diag.Text, diag.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(severity string) string {
	switch severity {
	case SeverityError:
		return s.Error.Render(severity)
	case SeverityWarning:
		return s.Warning.Render(severity)
	default:
		return s.Info.Render(severity)
	}
}

// FormatSourceContext formats the source line with a caret marker. Tabs
// before the column are kept so the caret lines up.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		var pad strings.Builder
		for i := 0; i < column-1; i++ {
			if i < len(line) && line[i] == '\t' {
				pad.WriteByte('\t')
			} else {
				pad.WriteByte(' ')
			}
		}
		builder.WriteString(indent + pad.String() + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case errorCount == 1:
		header += s.Dim.Render(" (1 syntax error)")
	case errorCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d syntax errors)", errorCount))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render(fmt.Sprintf("error: %v", err)))
}
