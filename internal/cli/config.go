package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/configloader"
	"github.com/yaklabco/gobasic/internal/ui/pretty"
)

func newConfigCommand(info BuildInfo) *cobra.Command {
	var env bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration in effect",
		Long: `Print the configuration that results from the defaults, the system,
user and project files, --config and GOBASIC_* environment variables,
followed by the files it was read from.

With --env the supported environment variables are listed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env {
				return printEnvVars(cmd)
			}
			return printConfig(cmd, info)
		},
	}

	cmd.Flags().BoolVar(&env, "env", false, "list the supported environment variables")

	return cmd
}

func printConfig(cmd *cobra.Command, info BuildInfo) error {
	s, err := newSession(cmd, info, nil, nil)
	if err != nil {
		return err
	}

	data, err := s.cfg.ToYAML()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // defined on the root command
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	if len(s.loaded.LoadedFrom) == 0 {
		fmt.Fprintln(out, styles.Dim.Render("# no configuration files found; using defaults"))
	}
	for _, path := range s.loaded.LoadedFrom {
		fmt.Fprintln(out, styles.Dim.Render("# loaded from "+path))
	}
	return nil
}

func printEnvVars(cmd *cobra.Command) error {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%-32s %s\n", name, vars[name]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
