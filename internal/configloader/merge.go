package configloader

import "github.com/yaklabco/gobasic/pkg/config"

// merge applies command-line overrides on top of base.
//   - Scalars: override wins when it is non-zero
//   - Booleans: override can only switch a setting on
//   - Slices: override replaces base when non-nil
//
// Flags cannot switch a setting off; files and environment variables can.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.LineEndings != "" {
		result.LineEndings = override.LineEndings
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.RequiredVersion != "" {
		result.RequiredVersion = override.RequiredVersion
	}

	if override.Tolerant {
		result.Tolerant = true
	}
	if override.Detect {
		result.Detect = true
	}
	if override.Write {
		result.Write = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
