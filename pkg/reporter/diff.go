package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/diff"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// DiffReporter formats results as unified diffs in git style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It returns the number of files with diffs.
// Files that failed to parse have no canonical form; their syntax errors
// are listed instead.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var filesWithDiffs, insertions, deletions int

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		res := file.Result
		if res == nil {
			continue
		}
		if res.Formatted == nil {
			for i := range res.Diagnostics {
				fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, &res.Diagnostics[i], pretty.SeverityError, false))
			}
			continue
		}
		if res.Diff == nil {
			continue
		}

		filesWithDiffs++
		insertions += res.Diff.Insertions
		deletions += res.Diff.Deletions
		r.writeDiff(path, res.Diff)
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, insertions, deletions)
	}

	return filesWithDiffs, nil
}

func (r *DiffReporter) writeDiff(path string, d *diff.Diff) {
	path = filepath.ToSlash(path)

	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

	// Headers come from the display path above.
	lines := strings.Split(d.String(), "\n")
	if len(lines) > 2 {
		lines = lines[2:]
	}
	for _, line := range lines {
		if line == "" {
			continue
		}
		r.writeDiffLine(line)
	}

	fmt.Fprintln(r.bw)
}

func (r *DiffReporter) writeDiffLine(line string) {
	var styled string

	switch {
	case strings.HasPrefix(line, "@@"):
		styled = r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = r.styles.DiffRemove.Render(line)
	default:
		styled = r.styles.DiffContext.Render(line)
	}

	fmt.Fprintln(r.bw, styled)
}

func (r *DiffReporter) writeSummary(files, insertions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if insertions > 0 {
		word := "insertions"
		if insertions == 1 {
			word = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", insertions, word)))
	}

	if deletions > 0 {
		word := "deletions"
		if deletions == 1 {
			word = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, word)))
	}

	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}
