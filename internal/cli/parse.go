package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

type parseFlags struct {
	unit     bool
	jsonOut  bool
	tolerant bool
}

func newParseCommand(info BuildInfo) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <paths...>",
		Short: "Print the structure of BASIC modules",
		Long: `Parse BASIC modules and print their structure: the module-level code,
each SUB and FUNCTION with its size, and the files named by $INCLUDE
metacommands.

With --unit the module is printed as a compilation unit instead: the
module-level code first, then every procedure in source order.

Examples:
  gobasic parse GAME.BAS
  gobasic parse --unit GAME.BAS
  gobasic parse --json SRC/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, info, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.unit, "unit", false, "print the module grouped into its compilation unit")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "print the outline as JSON")
	cmd.Flags().BoolVar(&flags.tolerant, "tolerant", false, "keep going past syntax errors")

	return cmd
}

// parseOutput is one file of parse --json output.
type parseOutput struct {
	Path     string          `json:"path"`
	Outline  *engine.Outline `json:"outline,omitempty"`
	Errors   []string        `json:"errors,omitempty"`
	Failed   bool            `json:"failed,omitempty"`
	Unparsed int             `json:"unparsed,omitempty"`
}

func runParse(cmd *cobra.Command, info BuildInfo, args []string, flags *parseFlags) error {
	s, err := newSession(cmd, info, &config.Config{Tolerant: flags.tolerant}, nil)
	if err != nil {
		return err
	}

	files, err := runner.Discover(s.ctx, s.runOptions(args))
	if err != nil {
		return errors.Join(errors.New("parse failed"), err)
	}

	colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // defined on the root command
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	eng := engine.FromConfig(s.cfg)
	out := cmd.OutOrStdout()

	var outputs []parseOutput
	var failed bool
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		a := eng.Analyze(s.ctx, path, content, s.cfg.LineEndings)

		po := parseOutput{Path: path, Unparsed: len(a.Diagnostics)}
		for _, d := range a.Diagnostics {
			po.Errors = append(po.Errors, fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message))
		}
		if len(a.Diagnostics) > 0 {
			failed = true
		}
		if a.Document == nil {
			po.Failed = true
			po.Unparsed = 0
		} else {
			po.Outline = engine.BuildOutline(a.Document)
		}

		if flags.jsonOut {
			outputs = append(outputs, po)
			continue
		}
		if err := writeParseText(out, cmd.ErrOrStderr(), styles, a, po, flags.unit); err != nil {
			return err
		}
	}

	if flags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	}

	if failed {
		return ErrSyntaxErrorsFound
	}
	return nil
}

func writeParseText(out, errOut io.Writer, styles *pretty.Styles, a *engine.Analysis, po parseOutput, unit bool) error {
	severity := pretty.SeverityWarning
	if a.Document == nil {
		severity = pretty.SeverityError
	}
	for i := range a.Diagnostics {
		fmt.Fprint(errOut, styles.FormatDiagnostic(po.Path, &a.Diagnostics[i], severity, true))
	}
	if a.Document == nil {
		return nil
	}

	if unit {
		if _, err := io.WriteString(out, a.Document.Unit().String()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(out, styles.FormatOutline(po.Path, po.Outline))
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
