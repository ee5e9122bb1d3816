package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/document"
	"github.com/yaklabco/gobasic/pkg/parser"
)

func strict() *parser.Parser {
	return parser.New(parser.Options{})
}

func tolerant() *parser.Parser {
	return parser.New(parser.Options{Tolerant: true})
}

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("cls\nprint 1+2\n", strict())
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, "CLS\nPRINT 1 + 2\n", doc.Render(ast.RenderOptions{}))
	assert.Equal(t, "CLS\r\nPRINT 1 + 2\r\n", doc.Render(ast.RenderOptions{CRLF: true}))

	line, err := doc.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "PRINT 1 + 2", line.String())

	_, err = doc.Line(2)
	require.ErrorIs(t, err, document.ErrLineOutOfRange)

	_, err = document.Parse("CLS\nPRINT (\n", strict())
	_, ok := parser.AsSyntaxError(err)
	assert.True(t, ok)
}

func TestCommitLine(t *testing.T) {
	t.Parallel()

	t.Run("strict replaces a valid edit", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\nEND\n", strict())
		require.NoError(t, err)
		require.NoError(t, doc.CommitLine(0, "print x"))
		assert.Equal(t, "PRINT x\nEND\n", doc.Render(ast.RenderOptions{}))
	})

	t.Run("strict keeps the old line on error", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\n", strict())
		require.NoError(t, err)
		err = doc.CommitLine(0, "PRINT (")
		_, ok := parser.AsSyntaxError(err)
		require.True(t, ok)
		assert.Equal(t, "CLS\n", doc.Render(ast.RenderOptions{}))
	})

	t.Run("strict errors report the document line", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\nCLS\nCLS\n", strict())
		require.NoError(t, err)
		se, ok := parser.AsSyntaxError(doc.CommitLine(2, "PRINT ("))
		require.True(t, ok)
		assert.Equal(t, 3, se.Line())
	})

	t.Run("tolerant stores the raw text", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\n", tolerant())
		require.NoError(t, err)
		require.NoError(t, doc.CommitLine(0, "PRINT ("))
		assert.Equal(t, "PRINT (\n", doc.Render(ast.RenderOptions{}))

		diags := doc.Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, 0, diags[0].Index)
		assert.Equal(t, 1, diags[0].Line)
		assert.Equal(t, "PRINT (", diags[0].Text)
		assert.Equal(t, "Expected: expression", diags[0].Message)
	})

	t.Run("rejects line breaks", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\n", strict())
		require.NoError(t, err)
		require.ErrorIs(t, doc.CommitLine(0, "CLS\nEND"), document.ErrMultipleLines)
		require.ErrorIs(t, doc.CommitLine(0, "CLS\r"), document.ErrMultipleLines)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		doc, err := document.Parse("CLS\n", strict())
		require.NoError(t, err)
		require.ErrorIs(t, doc.CommitLine(1, "CLS"), document.ErrLineOutOfRange)
		require.ErrorIs(t, doc.CommitLine(-1, "CLS"), document.ErrLineOutOfRange)
	})
}

func TestInsertAndDeleteLine(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("CLS\nEND\n", strict())
	require.NoError(t, err)

	require.NoError(t, doc.InsertLine(1, "print 1"))
	require.NoError(t, doc.InsertLine(doc.Len(), "' tail"))
	require.NoError(t, doc.InsertLine(0, "' head"))
	assert.Equal(t, "' head\nCLS\nPRINT 1\nEND\n' tail\n", doc.Render(ast.RenderOptions{}))

	require.ErrorIs(t, doc.InsertLine(doc.Len()+1, "CLS"), document.ErrLineOutOfRange)

	require.NoError(t, doc.DeleteLine(0))
	require.NoError(t, doc.DeleteLine(doc.Len()-1))
	assert.Equal(t, "CLS\nPRINT 1\nEND\n", doc.Render(ast.RenderOptions{}))
	require.ErrorIs(t, doc.DeleteLine(3), document.ErrLineOutOfRange)
}

func TestLinesIsACopy(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("CLS\nEND\n", strict())
	require.NoError(t, err)

	lines := doc.Lines()
	lines[0] = nil
	first, err := doc.Line(0)
	require.NoError(t, err)
	assert.NotNil(t, first)
}

func TestUnit(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse("CLS\nSUB Greet\nPRINT 1\nEND SUB\n", strict())
	require.NoError(t, err)

	unit := doc.Unit()
	require.Len(t, unit.Elements, 2)
	assert.Len(t, unit.Main().Lines, 1)
	assert.Len(t, unit.Procedure("Greet").Lines, 3)
	assert.Equal(t, doc.Render(ast.RenderOptions{}), unit.String())
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("CLS\nPRINT 1 + 2\n")
	f.Add("10 IF x THEN 20 ELSE 30\n20 END\n")
	f.Add("SUB Greet (n AS INTEGER)\n  PRINT n\nEND SUB\n")
	f.Add("DATA 1, \"two\", 3\r\nREAD a, b$, c\r\n")
	f.Add("PRINT (\n")

	f.Fuzz(func(t *testing.T, src string) {
		doc, err := document.Parse(src, tolerant())
		if err != nil {
			t.Fatalf("tolerant parse failed: %v", err)
		}
		rendered := doc.Render(ast.RenderOptions{})

		again, err := document.Parse(rendered, tolerant())
		if err != nil {
			t.Fatalf("tolerant reparse failed: %v", err)
		}
		if got := again.Render(ast.RenderOptions{}); got != rendered {
			t.Fatalf("render is not stable:\n%q\n%q", rendered, got)
		}
		if n := strings.Count(rendered, "\n"); n != doc.Len() {
			t.Fatalf("rendered %d lines for %d document lines", n, doc.Len())
		}
	})
}
