package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/diff"
	"github.com/yaklabco/gobasic/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Options controls what happens after a file is formatted.
type Options struct {
	// Write replaces the file with its canonical text.
	Write bool

	// DryRun computes what Write would do without touching the file.
	DryRun bool

	// Diff attaches a unified diff to results whose text changes.
	Diff bool

	// LineEndings selects the terminator of the rendered text.
	LineEndings config.LineEndings

	// Backups copies the file aside before its first rewrite.
	Backups bool

	// BackupMode selects where backups go.
	BackupMode fsutil.BackupMode
}

// OptionsFromConfig creates Options from config.Config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	mode, err := fsutil.ParseBackupMode(cfg.Backups.Mode)
	if err != nil {
		mode = fsutil.BackupNone
	}
	return Options{
		Write:       cfg.Write,
		DryRun:      cfg.DryRun,
		Diff:        cfg.DryRun || cfg.Format == config.FormatDiff,
		LineEndings: cfg.LineEndings,
		Backups:     cfg.Backups.Enabled && !cfg.NoBackups,
		BackupMode:  mode,
	}
}

// ProcessFile runs the full pipeline for a single file:
//  1. Read and hash the original file.
//  2. Parse and render it canonically.
//  3. Compute the diff (if requested).
//  4. Stop unless writing: dry runs, failed strict parses and unchanged
//     files are never written.
//  5. Check for concurrent modifications.
//  6. Create a backup (if enabled).
//  7. Write the canonical content atomically.
func (e *Engine) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	original, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := e.ProcessContent(ctx, path, original, opts)
	if err != nil {
		return nil, err
	}
	result.Snapshot = snap

	if !opts.Write || opts.DryRun || !result.Changed {
		return result, nil
	}

	modified, err := fsutil.Changed(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		logging.ForFile(ctx, path).Warn("skipping file changed on disk")
		return result, nil
	}

	if opts.Backups {
		created, err := fsutil.CreateBackup(ctx, path, opts.BackupMode)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.Formatted, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true
	logging.ForFile(ctx, path).Debug("formatted")

	return result, nil
}

// ProcessContent parses and renders content without file I/O.
func (e *Engine) ProcessContent(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	a := e.Analyze(ctx, path, content, opts.LineEndings)
	result := &Result{
		Path:     path,
		Analysis: a,
		Original: content,
	}
	if a.Formatted == nil {
		return result, nil
	}
	result.Changed = !bytes.Equal(content, a.Formatted)
	if result.Changed && opts.Diff {
		result.Diff = diff.Compute(path, content, a.Formatted)
	}
	return result, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure)
}
