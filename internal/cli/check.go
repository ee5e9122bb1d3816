package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

type checkFlags struct {
	runFlags
	syntaxOnly bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report syntax errors and files that are not canonical",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, info, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, &flags.runFlags)
	cmd.Flags().BoolVar(&flags.syntaxOnly, "syntax-only", false, "only report syntax errors, not formatting")

	return cmd
}

const checkLongDescription = `Parse BASIC sources and report syntax errors and files whose text
differs from its canonical rendering. Files are never modified.

By default, checks all .bas, .bi and .bm files in the current directory
and subdirectories.

Exit status is 1 when a file has syntax errors, 2 when a file is not
canonical and 0 otherwise.

Examples:
  gobasic check                    # Check current directory
  gobasic check SRC/ GAME.BAS      # Check a directory and a file
  gobasic check --tolerant         # Report every broken line, not the first
  gobasic check --format sarif     # Output SARIF for code scanning
  gobasic check --syntax-only      # Ignore formatting`

func runCheck(cmd *cobra.Command, info BuildInfo, args []string, cfg *config.Config, flags *checkFlags) error {
	s, err := newSession(cmd, info, cfg, &flags.runFlags)
	if err != nil {
		return err
	}

	opts := s.runOptions(args)
	opts.Engine.Write = false
	opts.Engine.Diff = s.cfg.Format == config.FormatDiff

	s.logger.Debug("starting check",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := runner.New(engine.FromConfig(s.cfg)).Run(s.ctx, opts)
	if err != nil {
		return errors.Join(errors.New("check failed"), err)
	}

	if err := s.report(cmd, &flags.runFlags, result); err != nil {
		return err
	}

	return ResultError(result, !flags.syntaxOnly)
}
