package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gobasic/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 syntax errors in 1 file, 3 files need formatting (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.SyntaxErrors > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s in %d %s",
			stats.SyntaxErrors, plural(stats.SyntaxErrors, "syntax error", "syntax errors"),
			stats.FilesWithErrors, plural(stats.FilesWithErrors, wordFile, wordFiles))))
	} else {
		parts = append(parts, s.Success.Render("No syntax errors"))
	}

	if pending := stats.FilesChanged - stats.FilesWritten; pending > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s need%s formatting",
			pending, plural(pending, wordFile, wordFiles), plural(pending, "s", ""))))
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d formatted", stats.FilesWritten)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") +
		s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))) +
		"\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", style(strconv.Itoa(value))))
	}

	row("Files checked", stats.FilesProcessed, s.SummaryValue.Render)
	if stats.FilesSkipped > 0 {
		row("Files skipped", stats.FilesSkipped, s.Warning.Render)
	}
	if stats.FilesErrored > 0 {
		row("Files unreadable", stats.FilesErrored, s.Error.Render)
	}
	row("Lines", stats.Lines, s.SummaryValue.Render)
	row("Statements", stats.Statements, s.SummaryValue.Render)

	builder.WriteString("\n")

	if stats.SyntaxErrors > 0 {
		row("Syntax errors", stats.SyntaxErrors, s.Error.Render)
		row("Files with errors", stats.FilesWithErrors, s.Failure.Render)
	}
	if stats.FilesChanged > 0 {
		row("Not canonical", stats.FilesChanged, s.Warning.Render)
	}
	if stats.FilesWritten > 0 {
		row("Files formatted", stats.FilesWritten, s.Success.Render)
	}

	builder.WriteString("\n")

	switch {
	case stats.SyntaxErrors > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed"))
	case stats.FilesChanged > stats.FilesWritten:
		builder.WriteString(s.Warning.Render("Some files are not formatted"))
	default:
		builder.WriteString(s.Success.Render("All files are canonical"))
	}
	builder.WriteString("\n")

	return builder.String()
}
