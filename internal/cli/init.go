package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobasic/internal/configloader"
	"github.com/yaklabco/gobasic/internal/logging"
)

type initFlags struct {
	force  bool
	toml   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gobasic configuration file",
		Long: `Create a .gobasic.yml configuration file in the current directory with
the default settings, each one documented.

When the file already exists and a terminal is attached you are asked
before it is replaced.

Examples:
  gobasic init                     Create .gobasic.yml
  gobasic init --toml              Create .gobasic.toml instead
  gobasic init -o CI/GOBASIC.YML   Write to a custom path
  gobasic init --force             Replace an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.toml, "toml", false, "write TOML instead of YAML")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .gobasic.yml or .gobasic.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gobasic.yml"
		if flags.toml {
			outputPath = ".gobasic.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	err = configloader.WriteConfig(configloader.WriteOptions{
		Path:  absPath,
		Force: flags.force,
		In:    cmd.InOrStdin(),
		Out:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gobasic config' to see the settings in effect")

	return nil
}
