// Package cli provides the Cobra command structure for gobasic.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gobasic command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gobasic",
		Short: "A parser and canonical formatter for QuickBASIC sources",
		Long: `gobasic parses QuickBASIC and QBasic source files and renders them in
canonical form: upper-case keywords, uniform spacing, normalized
metacommands and intact comments and DATA.

It checks whole trees for syntax errors, rewrites files in place with
backups, prints the structure of a module, and can watch a directory and
re-check files as they change.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newFmtCommand(info))
	rootCmd.AddCommand(newParseCommand(info))
	rootCmd.AddCommand(newWatchCommand(info))
	rootCmd.AddCommand(newConfigCommand(info))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
