package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/configloader"
	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/reporter"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// runFlags are the flags shared by the commands that process files.
type runFlags struct {
	format      string
	lineEndings string
	ignore      []string
	noContext   bool
	compact     bool
}

func addRunFlags(cmd *cobra.Command, cfg *config.Config, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, sarif, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.Tolerant, "tolerant", false, "keep going past syntax errors, leaving broken lines as they are")
	cmd.Flags().BoolVar(&cfg.Detect, "detect", false, "also process files whose content looks like BASIC")
	cmd.Flags().StringVar(&flags.lineEndings, "line-endings", "", "line endings of formatted text: lf, crlf, auto")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON and SARIF output")
}

// session is the resolved configuration of one command invocation.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	loaded  *configloader.LoadResult
	workDir string
	logger  *log.Logger
	info    BuildInfo
}

// newSession loads configuration for cmd, layering cliCfg on top.
func newSession(cmd *cobra.Command, info BuildInfo, cliCfg *config.Config, flags *runFlags) (*session, error) {
	logger := logging.Default()

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	if flags != nil {
		cliCfg.Format = config.OutputFormat(flags.format)
		cliCfg.LineEndings = config.LineEndings(flags.lineEndings)
		cliCfg.Ignore = flags.ignore
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Version:      info.Version,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loaded.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldTolerant, loaded.Config.Tolerant,
		logging.FieldWrite, loaded.Config.Write,
		logging.FieldDryRun, loaded.Config.DryRun,
		logging.FieldJobs, loaded.Config.Jobs,
	)

	return &session{
		ctx:     logging.WithLogger(ctx, logger),
		cfg:     loaded.Config,
		loaded:  loaded,
		workDir: workDir,
		logger:  logger,
		info:    info,
	}, nil
}

// runOptions builds runner options for the given paths.
func (s *session) runOptions(paths []string) runner.Options {
	opts := runner.OptionsFromConfig(s.cfg, paths)
	opts.WorkingDir = s.workDir
	return opts
}

// reporter creates the reporter selected by the configured format.
func (s *session) reporter(cmd *cobra.Command, flags *runFlags) (reporter.Reporter, error) {
	format, err := reporter.ParseFormat(string(s.cfg.Format))
	if err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	opts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		Version:     s.info.Version,
		WorkingDir:  s.workDir,
	}
	if flags != nil {
		opts.ShowContext = !flags.noContext
		opts.Compact = flags.compact
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}

// report writes result with the configured reporter.
func (s *session) report(cmd *cobra.Command, flags *runFlags, result *runner.Result) error {
	rep, err := s.reporter(cmd, flags)
	if err != nil {
		return err
	}
	if _, err := rep.Report(s.ctx, result); err != nil {
		s.logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}
