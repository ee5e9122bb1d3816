package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// SummaryReporter writes one status line per file followed by the
// aggregate summary block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It returns the number of syntax errors.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		if file.Result == nil {
			continue
		}
		status := file.Result.Summary()
		var styled string
		switch status {
		case "ok", "formatted", "formatted (backup created)":
			styled = r.styles.Success.Render(status)
		case "syntax error":
			styled = r.styles.Error.Render(status)
		default:
			styled = r.styles.Warning.Render(status)
		}
		fmt.Fprintf(r.bw, "%-50s %s\n", path, styled)
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	return result.Stats.SyntaxErrors, nil
}
