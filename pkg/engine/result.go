package engine

import (
	"github.com/yaklabco/gobasic/pkg/diff"
	"github.com/yaklabco/gobasic/pkg/fsutil"
)

// Result contains the outcome of processing a single file.
type Result struct {
	*Analysis

	// Path is the file path that was processed.
	Path string

	// Snapshot is the file state before processing (nil for in-memory content).
	Snapshot *fsutil.Snapshot

	// Original is the content that was read.
	Original []byte

	// Changed is true if the canonical text differs from the original.
	Changed bool

	// Diff is the unified diff of the change, when requested.
	Diff *diff.Diff

	// Skipped is true if the file was skipped (e.g., due to concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// HasErrors reports whether the file has syntax errors.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written && r.BackupCreated:
		return "formatted (backup created)"
	case r.Written:
		return "formatted"
	case r.HasErrors() && r.Formatted == nil:
		return "syntax error"
	case r.Changed:
		return "not formatted"
	case r.HasErrors():
		return "unparsed lines"
	default:
		return "ok"
	}
}
