package ast

import (
	"slices"
	"strings"
)

// LetterRange is an inclusive range of upper-case letters, such as A-D.
type LetterRange struct {
	Start byte
	End   byte
}

// OverlapsWith reports whether r and other overlap or touch: A-C and D-F
// count as overlapping because they can be merged into A-F.
func (r LetterRange) OverlapsWith(other LetterRange) bool {
	return int(r.Start) <= int(other.End)+1 && int(other.Start) <= int(r.End)+1
}

// Merge returns the smallest range covering r and other. It panics when the
// ranges neither overlap nor touch; callers check OverlapsWith first.
func (r LetterRange) Merge(other LetterRange) LetterRange {
	if !r.OverlapsWith(other) {
		panic(InvariantError{Node: "LetterRange " + r.String() + " merged with " + other.String(), Field: "overlap"})
	}
	return LetterRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

// String renders the range as A-D, or a single letter.
func (r LetterRange) String() string {
	if r.Start == r.End {
		return string(r.Start)
	}
	return string(r.Start) + "-" + string(r.End)
}

// LetterRanges is a sorted set of non-overlapping letter ranges.
type LetterRanges []LetterRange

// Insert adds r, merging it with every range it overlaps or touches.
func (rs *LetterRanges) Insert(r LetterRange) {
	list := *rs
	for i := range list {
		if !list[i].OverlapsWith(r) {
			continue
		}
		merged := list[i].Merge(r)
		j := i + 1
		for j < len(list) && list[j].OverlapsWith(merged) {
			merged = merged.Merge(list[j])
			j++
		}
		list[i] = merged
		*rs = slices.Delete(list, i+1, j)
		return
	}
	at, _ := slices.BinarySearchFunc(list, r, func(a, b LetterRange) int {
		return int(a.Start) - int(b.Start)
	})
	*rs = slices.Insert(list, at, r)
}

// Render writes the ranges separated by ", ".
func (rs LetterRanges) Render(sb *strings.Builder) {
	for i, r := range rs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
}
