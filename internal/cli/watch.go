package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

func newWatchCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-check BASIC sources whenever they change",
		Long: `Check BASIC sources, then keep watching them and re-check each file
that is created or saved. Parsing is tolerant, so every broken line is
reported. Files are never modified. Stop with Ctrl-C.

Examples:
  gobasic watch
  gobasic watch SRC/ --ignore 'OLD/**'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, info, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, flags)

	return cmd
}

func runWatch(cmd *cobra.Command, info BuildInfo, args []string, cfg *config.Config, flags *runFlags) error {
	cfg.Tolerant = true

	s, err := newSession(cmd, info, cfg, flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := s.runOptions(args)
	opts.Engine.Diff = s.cfg.Format == config.FormatDiff

	handle := func(result *runner.Result) {
		fmt.Fprintln(cmd.OutOrStdout(), time.Now().Format("15:04:05"))
		// report logs its own failures; the watch goes on.
		_ = s.report(cmd, flags, result) //nolint:errcheck // logged by report
	}

	if err := runner.New(engine.FromConfig(s.cfg)).Watch(ctx, opts, handle); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
