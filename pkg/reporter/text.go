package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It returns the number of syntax errors.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
		return 0
	}
	res := file.Result
	if res == nil {
		return 0
	}

	switch {
	case res.Skipped:
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Warning.Render("skipped: "+res.SkipReason))
	case res.Written:
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Success.Render(res.Summary()))
	case res.Changed:
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Warning.Render("not formatted"))
	}

	if len(res.Diagnostics) == 0 {
		return 0
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(res.Diagnostics)))
	}
	sev := severity(res)
	for i := range res.Diagnostics {
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, &res.Diagnostics[i], sev, r.opts.ShowContext))
	}
	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}
	return len(res.Diagnostics)
}
