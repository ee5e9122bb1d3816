package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gobasic/pkg/ast"
)

func letters(spec string) ast.LetterRange {
	if len(spec) == 1 {
		return ast.LetterRange{Start: spec[0], End: spec[0]}
	}
	return ast.LetterRange{Start: spec[0], End: spec[2]}
}

func render(rs ast.LetterRanges) string {
	var sb strings.Builder
	rs.Render(&sb)
	return sb.String()
}

func TestLetterRanges_Insert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		insert []string
		want   string
	}{
		{name: "merges adjacent and keeps order", insert: []string{"M-Q", "A-C", "D"}, want: "A-D, M-Q"},
		{name: "sorted insert", insert: []string{"X", "B", "M"}, want: "B, M, X"},
		{name: "overlap absorbs", insert: []string{"A-F", "C-D"}, want: "A-F"},
		{name: "bridge cascades", insert: []string{"A-B", "F-G", "K-L", "C-J"}, want: "A-L"},
		{name: "touching end", insert: []string{"A-C", "D-F"}, want: "A-F"},
		{name: "gap of one letter stays apart", insert: []string{"A-C", "E-F"}, want: "A-C, E-F"},
		{name: "whole alphabet", insert: []string{"A-Z", "Q"}, want: "A-Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rs ast.LetterRanges
			for _, spec := range tt.insert {
				rs.Insert(letters(spec))
			}
			assert.Equal(t, tt.want, render(rs))
		})
	}
}

func TestLetterRanges_InsertTwoStoredRanges(t *testing.T) {
	t.Parallel()

	var rs ast.LetterRanges
	rs.Insert(letters("M-Q"))
	rs.Insert(letters("A-C"))
	rs.Insert(letters("D"))

	assert.Equal(t, ast.LetterRanges{letters("A-D"), letters("M-Q")}, rs)
}

func TestLetterRange_Merge(t *testing.T) {
	t.Parallel()

	assert.True(t, letters("A-C").OverlapsWith(letters("D")))
	assert.True(t, letters("D").OverlapsWith(letters("A-C")))
	assert.False(t, letters("A-C").OverlapsWith(letters("E")))

	assert.Equal(t, letters("A-D"), letters("A-C").Merge(letters("D")))
	assert.PanicsWithValue(t,
		ast.InvariantError{Node: "LetterRange A merged with Z", Field: "overlap"},
		func() { letters("A").Merge(letters("Z")) })

	assert.Equal(t, "Q", letters("Q").String())
	assert.Equal(t, "A-D", letters("A-D").String())
}
