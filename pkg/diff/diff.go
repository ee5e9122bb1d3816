// Package diff renders unified diffs between a source file and its canonical
// rendering, for gobasic fmt --diff.
package diff

import (
	"fmt"
	"strings"
)

// Op is the role of one line in a hunk.
type Op int

const (
	// Equal is a context line present on both sides.
	Equal Op = iota
	// Insert is a line only in the formatted text.
	Insert
	// Delete is a line only in the original text.
	Delete
)

func (o Op) prefix() byte {
	switch o {
	case Insert:
		return '+'
	case Delete:
		return '-'
	default:
		return ' '
	}
}

// Line is one line of a hunk, without its terminator.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a run of changes with surrounding context. Starts are 1-based.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff is the unified diff of one file.
type Diff struct {
	Path       string
	Hunks      []Hunk
	Insertions int
	Deletions  int
}

// Context is the number of unchanged lines kept around each change.
const Context = 3

// Compute returns the diff between before and after, or nil when they have
// the same lines. A carriage return before a newline counts as part of the
// line, so line-ending changes show up as changes.
func Compute(path string, before, after []byte) *Diff {
	a, b := split(before), split(after)
	script := editScript(a, b)

	d := &Diff{Path: path}
	for _, l := range script {
		switch l.Op {
		case Insert:
			d.Insertions++
		case Delete:
			d.Deletions++
		}
	}
	if d.Insertions == 0 && d.Deletions == 0 {
		return nil
	}
	d.Hunks = hunks(script)
	return d
}

func split(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}

// editScript aligns a and b on their longest common subsequence.
func editScript(a, b []string) []Line {
	n, m := len(a), len(b)
	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	script := make([]Line, 0, max(n, m))
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			script = append(script, Line{Equal, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			script = append(script, Line{Delete, a[i]})
			i++
		default:
			script = append(script, Line{Insert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		script = append(script, Line{Delete, a[i]})
	}
	for ; j < m; j++ {
		script = append(script, Line{Insert, b[j]})
	}
	return script
}

// hunks groups the script into hunks; changes separated by at most twice the
// context share one hunk.
func hunks(script []Line) []Hunk {
	var out []Hunk
	oldLine, newLine := 1, 1
	for k := 0; k < len(script); {
		if script[k].Op == Equal {
			oldLine++
			newLine++
			k++
			continue
		}

		start := max(k-Context, 0)
		h := Hunk{OldStart: oldLine - (k - start), NewStart: newLine - (k - start)}
		end := k
		for end < len(script) {
			if script[end].Op != Equal {
				end++
				continue
			}
			run := end
			for run < len(script) && script[run].Op == Equal {
				run++
			}
			if run == len(script) || run-end > 2*Context {
				end = min(end+Context, len(script))
				break
			}
			end = run
		}

		for _, l := range script[start:end] {
			h.Lines = append(h.Lines, l)
			if l.Op != Insert {
				h.OldCount++
			}
			if l.Op != Delete {
				h.NewCount++
			}
		}
		for _, l := range script[k:end] {
			if l.Op != Insert {
				oldLine++
			}
			if l.Op != Delete {
				newLine++
			}
		}
		// An empty side is addressed by the line before it.
		if h.OldCount == 0 {
			h.OldStart--
		}
		if h.NewCount == 0 {
			h.NewStart--
		}
		out = append(out, h)
		k = end
	}
	return out
}

// String renders the diff with --- and +++ headers.
func (d *Diff) String() string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	path := strings.TrimPrefix(d.Path, "/")
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			sb.WriteByte(l.Op.prefix())
			sb.WriteString(strings.TrimSuffix(l.Text, "\r"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
