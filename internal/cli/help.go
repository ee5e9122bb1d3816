package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
)

// HelpFormatter renders Cobra help and usage with the terminal styles.
type HelpFormatter struct {
	styles  *pretty.Styles
	command lipgloss.Style
	heading lipgloss.Style
	flag    lipgloss.Style
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	colorEnabled := pretty.IsColorEnabled(colorMode, writer)
	h := &HelpFormatter{
		styles:  pretty.NewStyles(colorEnabled),
		command: lipgloss.NewStyle(),
		heading: lipgloss.NewStyle(),
		flag:    lipgloss.NewStyle(),
	}
	if colorEnabled {
		h.command = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
		h.heading = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		h.flag = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	}
	return h
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ keyword (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command":      h.command.Render,
		"heading":      h.heading.Render,
		"keyword":      h.styles.Keyword.Render,
		"dim":          h.styles.Dim.Render,
		"flags":        h.styleFlags,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespaces,
	}
}

var flagNamePattern = regexp.MustCompile(`--?[A-Za-z][\w-]*`)

// styleFlags colors flag names in pflag usage text. The description column
// is left alone.
func (h *HelpFormatter) styleFlags(usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		def, desc, found := strings.Cut(strings.TrimLeft(line, " "), "   ")
		if !found {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		def = flagNamePattern.ReplaceAllStringFunc(def, func(s string) string { return h.flag.Render(s) })
		lines[i] = indent + def + "   " + strings.TrimLeft(desc, " ")
	}
	return strings.Join(lines, "\n")
}

// ApplyToCommand installs the styled templates on cmd; subcommands inherit
// them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(usageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(c.OutOrStdout(), c)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(helpTemplate)
		if err != nil {
			c.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
