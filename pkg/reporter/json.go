package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gobasic/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Status      string           `json:"status"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Changed     bool             `json:"changed"`
	Written     bool             `json:"written,omitempty"`
	Backup      bool             `json:"backup,omitempty"`
	Diff        string           `json:"diff,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single syntax error.
type JSONDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Source   string `json:"source,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesWithErrors int `json:"filesWithErrors"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesErrored    int `json:"filesErrored"`
	SyntaxErrors    int `json:"syntaxErrors"`
	Lines           int `json:"lines"`
	Statements      int `json:"statements"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.SyntaxErrors, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: r.opts.Version,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesChecked:    result.Stats.FilesProcessed,
		FilesWithErrors: result.Stats.FilesWithErrors,
		FilesChanged:    result.Stats.FilesChanged,
		FilesWritten:    result.Stats.FilesWritten,
		FilesErrored:    result.Stats.FilesErrored,
		SyntaxErrors:    result.Stats.SyntaxErrors,
		Lines:           result.Stats.Lines,
		Statements:      result.Stats.Statements,
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        r.opts.displayPath(file.Path),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Status = "error"
			fileResult.Error = file.Error.Error()
			output.Files = append(output.Files, fileResult)
			continue
		}

		if res := file.Result; res != nil {
			fileResult.Status = res.Summary()
			fileResult.Changed = res.Changed
			fileResult.Written = res.Written
			fileResult.Backup = res.BackupCreated
			fileResult.Diff = res.Diff.String()

			sev := severity(res)
			for _, diag := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
					Severity: sev,
					Message:  diag.Message,
					Line:     diag.Line,
					Column:   diag.Column,
					Source:   diag.Text,
				})
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
