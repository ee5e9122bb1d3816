package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/engine"
)

// FormatOutline formats the structure of a parsed module.
func (s *Styles) FormatOutline(path string, outline *engine.Outline) string {
	var builder strings.Builder

	builder.WriteString(s.FilePath.Render(path))
	if outline.Dynamic {
		builder.WriteString(s.Dim.Render(" ($DYNAMIC)"))
	}
	builder.WriteString("\n")

	for _, el := range outline.Elements {
		name := el.Name
		kind := strings.ToUpper(el.Kind.String())
		if el.Kind == ast.Main {
			name = "(module)"
			kind = "MAIN"
		}
		builder.WriteString(fmt.Sprintf("  %s %s %s\n",
			s.Keyword.Render(fmt.Sprintf("%-8s", kind)),
			s.Name.Render(name),
			s.Dim.Render(fmt.Sprintf("%d lines, %d statements", el.Lines, el.Statements)),
		))
	}

	for _, inc := range outline.Includes {
		builder.WriteString(fmt.Sprintf("  %s %s %s\n",
			s.Keyword.Render(fmt.Sprintf("%-8s", "INCLUDE")),
			s.Name.Render(inc.File),
			s.Dim.Render(fmt.Sprintf("line %d", inc.Line)),
		))
	}

	return builder.String()
}
