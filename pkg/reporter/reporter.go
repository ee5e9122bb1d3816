// Package reporter writes the results of a formatting run: syntax errors,
// formatting status and diffs, in text, JSON, SARIF, diff or summary form.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Version == "" {
		opts.Version = DefaultOptions().Version
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// severity is error when the parse failed outright and warning when the
// file was formatted around its unparsed lines.
func severity(res *engine.Result) string {
	if res.Formatted == nil {
		return pretty.SeverityError
	}
	return pretty.SeverityWarning
}
