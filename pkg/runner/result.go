package runner

import "github.com/yaklabco/gobasic/pkg/engine"

// FileOutcome pairs a path with its engine result or error.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil if the file could not be processed.
	Result *engine.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesSkipped counts files left alone because they changed on disk
	// while being processed.
	FilesSkipped int

	// FilesErrored counts files that could not be read or written.
	FilesErrored int

	// FilesWithErrors counts files with at least one syntax error.
	FilesWithErrors int

	// SyntaxErrors is the total number of syntax errors.
	SyntaxErrors int

	// FilesChanged counts files whose canonical text differs from the
	// original, written or not.
	FilesChanged int

	// FilesWritten counts files rewritten on disk.
	FilesWritten int

	Lines      int
	Statements int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per file, sorted by path.
	Files []FileOutcome

	Stats Stats
}

// HasSyntaxErrors reports whether any file failed to parse, fully or in part.
func (r *Result) HasSyntaxErrors() bool {
	return r != nil && r.Stats.SyntaxErrors > 0
}

// HasUnformatted reports whether any file is not in canonical form.
func (r *Result) HasUnformatted() bool {
	return r != nil && r.Stats.FilesChanged > r.Stats.FilesWritten
}

// HasFileErrors reports whether any file could not be processed.
func (r *Result) HasFileErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	res := outcome.Result
	r.Stats.FilesProcessed++
	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if res.Changed {
		r.Stats.FilesChanged++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}
	if n := len(res.Diagnostics); n > 0 {
		r.Stats.FilesWithErrors++
		r.Stats.SyntaxErrors += n
	}
	r.Stats.Lines += res.Lines
	r.Stats.Statements += res.Statements
}
