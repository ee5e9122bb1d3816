package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// stdinPath is the argument that makes fmt read standard input.
const stdinPath = "-"

type fmtFlags struct {
	runFlags
	diff bool
}

func newFmtCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Render BASIC sources in canonical form",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, info, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, &flags.runFlags)
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "write the canonical text back to the files")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a unified diff instead of the canonical text")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show what --write would change without writing")
	cmd.Flags().BoolVar(&cfg.Backups.Enabled, "backup", false, "keep a .bak copy of each rewritten file")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backups even when configured")

	return cmd
}

const fmtLongDescription = `Render BASIC sources in canonical form.

Without flags the canonical text of every file is printed to standard
output. With --write each file that changes is rewritten atomically,
after an optional backup. Files with syntax errors are never rewritten;
in tolerant mode broken lines are kept as they are.

Use - as the only path to format standard input.

Examples:
  gobasic fmt GAME.BAS             # Print the canonical text
  gobasic fmt -w .                 # Rewrite every source in place
  gobasic fmt -w --backup SRC/     # Rewrite, keeping .bak copies
  gobasic fmt -d                   # Show what would change
  gobasic fmt - < OLD.BAS          # Format standard input`

func runFmt(cmd *cobra.Command, info BuildInfo, args []string, cfg *config.Config, flags *fmtFlags) error {
	if flags.diff && flags.format == "" {
		flags.format = string(config.FormatDiff)
	}

	s, err := newSession(cmd, info, cfg, &flags.runFlags)
	if err != nil {
		return err
	}

	colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // defined on the root command
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
	eng := engine.FromConfig(s.cfg)

	if len(args) == 1 && args[0] == stdinPath {
		return formatStdin(s, eng, styles, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	opts := s.runOptions(args)
	s.logger.Debug("starting fmt",
		logging.FieldPaths, opts.Paths,
		logging.FieldWrite, opts.Engine.Write,
		logging.FieldDryRun, opts.Engine.DryRun,
	)

	result, err := runner.New(eng).Run(s.ctx, opts)
	if err != nil {
		return errors.Join(errors.New("fmt failed"), err)
	}

	if s.cfg.Write || s.cfg.DryRun || flags.format != "" {
		if err := s.report(cmd, &flags.runFlags, result); err != nil {
			return err
		}
		return ResultError(result, false)
	}

	return printCanonical(s, styles, result, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// printCanonical writes the canonical text of every file to out, and the
// syntax errors of files that have none to errOut.
func printCanonical(s *session, styles *pretty.Styles, result *runner.Result, out, errOut io.Writer) error {
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(errOut, styles.FormatFileError(file.Path, file.Error))
			continue
		}
		res := file.Result
		if res.Formatted == nil {
			for i := range res.Diagnostics {
				fmt.Fprint(errOut, styles.FormatDiagnostic(file.Path, &res.Diagnostics[i], pretty.SeverityError, true))
			}
			continue
		}
		if _, err := out.Write(res.Formatted); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	s.logger.Debug("printed canonical text", logging.FieldFiles, len(result.Files))
	return ResultError(result, false)
}

// formatStdin formats standard input to standard output.
func formatStdin(s *session, eng *engine.Engine, styles *pretty.Styles, in io.Reader, out, errOut io.Writer) error {
	content, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read standard input: %w", err)
	}

	res, err := eng.ProcessContent(s.ctx, "<stdin>", content, engine.Options{LineEndings: s.cfg.LineEndings})
	if err != nil {
		return err
	}
	severity := pretty.SeverityWarning
	if res.Formatted == nil {
		severity = pretty.SeverityError
	}
	for i := range res.Diagnostics {
		fmt.Fprint(errOut, styles.FormatDiagnostic("<stdin>", &res.Diagnostics[i], severity, true))
	}
	if res.Formatted == nil {
		return ErrSyntaxErrorsFound
	}
	if _, err := out.Write(res.Formatted); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if res.HasErrors() {
		return ErrSyntaxErrorsFound
	}
	return nil
}
