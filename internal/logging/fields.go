// Package logging wraps charmbracelet/log with the defaults the gobasic
// commands share.
package logging

// Structured log keys.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Parse fields.
	FieldLine       = "line"
	FieldColumn     = "column"
	FieldLines      = "lines"
	FieldStatements = "statements"
	FieldUnparsed   = "unparsed"
	FieldTolerant   = "tolerant"

	// Run fields.
	FieldWrite    = "write"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"
	FieldDuration = "duration"
	FieldEvent    = "event"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithErrors = "files_with_errors"
	FieldFilesChanged    = "files_changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
