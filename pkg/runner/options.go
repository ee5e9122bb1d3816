// Package runner discovers BASIC sources and processes them concurrently.
package runner

import (
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/engine"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// BASIC source. Matching ignores case, since DOS-era trees are often
	// upper case. Defaults to config.DefaultExtensions().
	Extensions []string

	// Detect also keeps files with other extensions whose content looks
	// like BASIC.
	Detect bool

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Engine holds the per-file pipeline settings.
	Engine engine.Options
}

// OptionsFromConfig builds run options for paths from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		Detect:       cfg.Detect,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Engine:       engine.OptionsFromConfig(cfg),
	}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
