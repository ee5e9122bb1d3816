package ast_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/ast"
)

func TestDataStatement_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    []string
		wantErr bool
	}{
		{name: "numbers", text: "1, 2,3", want: []string{"1", "2", "3"}},
		{name: "quoted keeps commas and blanks", text: `"a, b" , " c "`, want: []string{"a, b", " c "}},
		{name: "unquoted trims trailing blanks", text: "hello world  ,x", want: []string{"hello world", "x"}},
		{name: "empty fields", text: "1,,3,", want: []string{"1", "", "3", ""}},
		{name: "no escape processing", text: `"a\n"`, want: []string{`a\n`}},
		{name: "unterminated quote", text: `"abc`, want: []string{"abc"}},
		{name: "parentheses are not grouping", text: "f(1,2)", want: []string{"f(1", "2)"}},
		{name: "empty payload", text: "", want: nil},
		{name: "blank payload", text: "   ", want: nil},
		{name: "junk after quote", text: `"a" b, 2`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &ast.DataStatement{Text: tt.text}
			got, err := s.Fields()
			if tt.wantErr {
				require.ErrorIs(t, err, ast.ErrMalformedData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataStatement_ItemsRestart(t *testing.T) {
	t.Parallel()

	s := &ast.DataStatement{Text: `1, "two", 3`}

	var first []string
	for item := range s.Items() {
		first = append(first, item)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "two"}, first)
	assert.Equal(t, []string{"1", "two", "3"}, slices.Collect(s.Items()), "each iteration starts from the top")
}

func TestDataStatement_ItemsStopAtMalformed(t *testing.T) {
	t.Parallel()

	s := &ast.DataStatement{Text: `1, "a" b, 3`}
	assert.Equal(t, []string{"1"}, slices.Collect(s.Items()))
}

func TestDataStatement_Render(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `DATA 1, "x"`, ast.String(&ast.DataStatement{Text: `1, "x"`}))
	assert.Equal(t, "DATA", ast.String(&ast.DataStatement{}))
}
