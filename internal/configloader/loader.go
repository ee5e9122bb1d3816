// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered decoding of
// YAML and TOML files, environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gobasic/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// Version is the running gobasic version, checked against
	// required_version. Empty or "dev" skips the check.
	Version string

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by layering all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOBASIC_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gobasic.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gobasic/config.yaml)
//  6. System config (/etc/gobasic/config.yaml)
//  7. Defaults
//
// Each file is decoded onto the result of the layers below it, so a file
// only changes the keys it sets, and it can switch a default off.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}
	result := &LoadResult{Paths: paths}

	cfg := config.NewConfig()
	layers := []struct {
		name    string
		path    string
		skipped bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skipped || layer.path == "" {
			continue
		}
		if err := loadConfigFile(cfg, layer.path); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if err := checkRequiredVersion(cfg.RequiredVersion, opts.Version); err != nil {
		validation.Errors = append(validation.Errors, *err)
	}
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile decodes the file at path onto cfg, choosing the codec by
// extension.
func loadConfigFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if IsTOMLConfig(path) {
		err = cfg.DecodeTOML(content)
	} else {
		err = cfg.DecodeYAML(content)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
