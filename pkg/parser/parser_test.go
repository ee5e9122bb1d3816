package parser_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/ast"
	"github.com/yaklabco/gobasic/pkg/lexer"
	"github.com/yaklabco/gobasic/pkg/listrange"
	"github.com/yaklabco/gobasic/pkg/parser"
	"github.com/yaklabco/gobasic/pkg/token"
)

func parseLine(t *testing.T, p *parser.Parser, src string) *ast.CodeLine {
	t.Helper()
	line, err := p.ParseLine(lexer.Tokenize(src))
	require.NoError(t, err, "parse %q", src)
	require.NotNil(t, line)
	return line
}

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	expr, err := parser.New(parser.Options{}).ParseExpression(lexer.Tokenize(src))
	require.NoError(t, err, "parse %q", src)
	return expr
}

//nolint:gochecknoglobals // Shared by the round trip test and the fuzz seeds.
var canonicalLines = []string{
	"PRINT",
	"PRINT 1 + 2",
	`PRINT "a"; b, c;`,
	"PRINT #1, a$",
	`PRINT USING "##.#"; x`,
	"x = 1",
	"LET x = 1",
	"a(1, 2) = b * (c - 1)",
	"p.x = 3",
	`CALL Greet(1, "a")`,
	"Greet 1, 2",
	"IF x THEN y = 1 ELSE y = 2",
	"IF x > 1 THEN",
	"ELSEIF x = 2 THEN",
	"ELSE",
	"END IF",
	"IF x GOTO 10",
	"IF a THEN 100 ELSE 200",
	"FOR i = 1 TO 10 STEP 2",
	"NEXT i",
	"DO WHILE x < 10",
	"LOOP UNTIL done",
	"WHILE x",
	"WEND",
	"SELECT CASE x",
	"CASE 1, 2 TO 3, IS < 5",
	"CASE ELSE",
	"END SELECT",
	"DIM SHARED a(1 TO 10) AS INTEGER",
	"CONST a = 1, b = 2",
	"DECLARE SUB Greet ()",
	"SUB Greet (x AS INTEGER) STATIC",
	"END SUB",
	"EXIT FOR",
	"DEF FNf(x) = x * 2",
	"DEF SEG = 0",
	"DEFINT A-Z",
	"TYPE Coord",
	"x AS INTEGER",
	"OPEN f$ FOR INPUT ACCESS READ LOCK READ AS #1 LEN = 10",
	`OPEN "I", #1, f$, 10`,
	"FIELD #1, 10 AS a$",
	"LOCK #1, 1 TO 2",
	"NAME a$ AS b$",
	"WIDTH LPRINT 80",
	"CIRCLE (x, y), r, , , , 2",
	"LINE (0, 0)-(10, 10), 1, BF",
	"PSET STEP (1, 2), 3",
	"GET (0, 0)-(10, 10), buf",
	"PUT (x, y), buf, XOR",
	"PALETTE USING pal",
	"VIEW PRINT 1 TO 20",
	"KEY ON",
	`KEY 1, "x"`,
	"TIMER ON",
	"KEY(1) STOP",
	"ON TIMER(60) GOSUB Tick",
	"ON ERROR GOTO Handler",
	"ON ERROR RESUME NEXT",
	"ON x GOTO 10, 20",
	"RESUME NEXT",
	"RETURN 10",
	"MID$(a$, 1, 2) = b$",
	"LSET a$ = b$",
	"DATE$ = d$",
	"LOCATE , 5",
	"COLOR 1, , 3",
	"DATA 1, 2, three",
	"REM nothing here",
	"10 PRINT 1",
	"Retry: CLS",
	"CLS: PRINT 1 ' done",
	"    PRINT x",
}

func TestParseLine_CanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.Options{})
	for _, src := range canonicalLines {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			line := parseLine(t, p, src)
			for _, s := range line.Statements {
				_, unparsed := s.(*ast.UnparsedStatement)
				assert.False(t, unparsed)
			}
			assert.Equal(t, src, line.String())
		})
	}
}

func TestParseLine_Canonicalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "print 1+2", want: "PRINT 1 + 2"},
		{input: "? x", want: "PRINT x"},
		{input: "for i=1 to 10", want: "FOR i = 1 TO 10"},
		{input: "if x then 100", want: "IF x THEN 100"},
		{input: "x=a-b", want: "x = a - b"},
		{input: "defint M-Q, A-C, D", want: "DEFINT A-D, M-Q"},
		{input: "cls:print", want: "CLS: PRINT"},
		{input: "circle (1,2),3,,,,2", want: "CIRCLE (1, 2), 3, , , , 2"},
		{input: "  a$ = \"text\"  ", want: "  a$ = \"text\""},
	}

	p := parser.New(parser.Options{})
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, parseLine(t, p, tt.input).String())
		})
	}
}

func TestParseExpression_Precedence(t *testing.T) {
	t.Parallel()

	t.Run("multiplication binds tighter than addition", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "2 + 3 * 4").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Plus, bin.Op)
		right, ok := bin.Right.(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Star, right.Op)
	})

	t.Run("subtraction is left associative", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "A - B - C").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Minus, bin.Op)
		left, ok := bin.Left.(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, "A - B", ast.String(left))
		assert.Equal(t, "C", ast.String(bin.Right))
	})

	t.Run("exponent is left associative", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "2 ^ 3 ^ 2").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Caret, bin.Op)
		assert.Equal(t, "2 ^ 3", ast.String(bin.Left))
	})

	t.Run("NOT binds tighter than AND", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "NOT a AND b").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.AND, bin.Op)
		_, isUnary := bin.Left.(*ast.Unary)
		assert.True(t, isUnary)
	})

	t.Run("relational below additive", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "a + 1 < b * 2").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Less, bin.Op)
	})
}

func TestParseExpression_Shapes(t *testing.T) {
	t.Parallel()

	t.Run("subscript", func(t *testing.T) {
		t.Parallel()

		call, ok := parseExpr(t, "X(1)").(*ast.CallOrIndex)
		require.True(t, ok)
		require.Len(t, call.Args, 1)
		assert.Equal(t, "X", ast.String(call.Subject))
	})

	t.Run("negative literal argument", func(t *testing.T) {
		t.Parallel()

		call, ok := parseExpr(t, "A(-1)").(*ast.CallOrIndex)
		require.True(t, ok)
		require.Len(t, call.Args, 1)
		lit, ok := call.Args[0].(*ast.Literal)
		require.True(t, ok)
		assert.Equal(t, "-1", lit.Token.Text)
	})

	t.Run("binary minus", func(t *testing.T) {
		t.Parallel()

		bin, ok := parseExpr(t, "B - 1").(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Minus, bin.Op)
	})

	t.Run("keyword function", func(t *testing.T) {
		t.Parallel()

		fn, ok := parseExpr(t, `INSTR(1, a$, "x")`).(*ast.KeywordFunction)
		require.True(t, ok)
		assert.Len(t, fn.Args, 3)
		assert.True(t, fn.Parenthesized)
	})

	t.Run("parameterless function", func(t *testing.T) {
		t.Parallel()

		fn, ok := parseExpr(t, "TIMER").(*ast.KeywordFunction)
		require.True(t, ok)
		assert.False(t, fn.Parenthesized)
	})

	t.Run("field of subscript", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a(1).y", ast.String(parseExpr(t, "a(1).y")))
	})
}

func TestParseExpression_SplitsNegativeLiterals(t *testing.T) {
	t.Parallel()

	ident := func(text string, col int) token.Token {
		return token.Token{Kind: token.Identifier, Text: text, Line: 1, Column: col}
	}
	num := func(text string, col int) token.Token {
		v, _ := strconv.ParseInt(text, 10, 64)
		return token.Token{Kind: token.Number, Text: text, Line: 1, Column: col, Space: " ", Value: v}
	}
	star := token.Token{Kind: token.Star, Text: "*", Line: 1, Column: 6, Space: " "}

	p := parser.New(parser.Options{})

	t.Run("operand then negative literal", func(t *testing.T) {
		t.Parallel()

		expr, err := p.ParseExpression([]token.Token{ident("a", 1), num("-1", 3)})
		require.NoError(t, err)
		bin, ok := expr.(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Minus, bin.Op)
		assert.Equal(t, "a", ast.String(bin.Left))
		lit, ok := bin.Right.(*ast.Literal)
		require.True(t, ok)
		assert.Equal(t, "1", lit.Token.Text)
		assert.Equal(t, int64(1), lit.Token.Value)
	})

	t.Run("earlier literal split when the rightmost fails", func(t *testing.T) {
		t.Parallel()

		// a -1 * -2: splitting -2 leaves "a -1" dangling; splitting -1 parses.
		expr, err := p.ParseExpression([]token.Token{ident("a", 1), num("-1", 3), star, num("-2", 8)})
		require.NoError(t, err)
		bin, ok := expr.(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Minus, bin.Op)
		right, ok := bin.Right.(*ast.Binary)
		require.True(t, ok)
		assert.Equal(t, token.Star, right.Op)
		lit, ok := right.Right.(*ast.Literal)
		require.True(t, ok)
		assert.Equal(t, "-2", lit.Token.Text)
	})

	t.Run("splits never combine", func(t *testing.T) {
		t.Parallel()

		_, err := p.ParseExpression([]token.Token{ident("a", 1), num("-1", 3), num("-2", 6)})
		se, ok := parser.AsSyntaxError(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, "Expected: end of statement", se.Message)
		assert.Equal(t, 3, se.Column())
	})
}

func TestParseStatement_PrintParenthesized(t *testing.T) {
	t.Parallel()

	stmt, err := parser.New(parser.Options{}).ParseStatement(lexer.Tokenize("PRINT (1)"))
	require.NoError(t, err)
	ps, ok := stmt.(*ast.PrintStatement)
	require.True(t, ok)
	require.Len(t, ps.Items, 1)
	_, isParen := ps.Items[0].Expr.(*ast.Paren)
	assert.True(t, isParen)
}

func TestParseLine_DefTypeMerge(t *testing.T) {
	t.Parallel()

	line := parseLine(t, parser.New(parser.Options{}), "DEFINT M-Q, A-C, D")
	require.Len(t, line.Statements, 1)
	def, ok := line.Statements[0].(*ast.DefTypeStatement)
	require.True(t, ok)
	assert.Len(t, def.Ranges, 2)
	assert.Equal(t, "DEFINT A-D, M-Q", line.String())
}

func TestParseLine_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		message string
		column  int
	}{
		{name: "FOR without TO", input: "FOR i = 1 10", message: "Expected: TO", column: 13},
		{name: "missing operand", input: "x = 1 +", message: "Expected: expression", column: 8},
		{name: "trailing token", input: "BEEP 1", message: "Expected: end of statement", column: 6},
		{name: "READ needs variables", input: "READ 1", message: "Expected: variable", column: 6},
		{name: "nested procedure", input: "IF x THEN SUB Foo", message: "SUB or FUNCTION not allowed in control statement"},
		{name: "illegal character", input: "PRINT &", message: "Unexpected character", column: 7},
	}

	p := parser.New(parser.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := p.ParseLine(lexer.Tokenize(tt.input))
			require.Error(t, err)
			se, ok := parser.AsSyntaxError(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, se.Message)
			assert.Equal(t, 1, se.Line())
			if tt.column > 0 {
				assert.Equal(t, tt.column, se.Column())
			}
		})
	}
}

func TestParseLine_Tolerant(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.Options{Tolerant: true})
	for _, src := range []string{"PRINT (", "FOR i = 1 10", "IF x THEN SUB Foo", "  x = = 1"} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			line := parseLine(t, p, src)
			require.Len(t, line.Statements, 1)
			unparsed, ok := line.Statements[0].(*ast.UnparsedStatement)
			require.True(t, ok)
			assert.Equal(t, src, unparsed.Text)
			_, isSyntax := parser.AsSyntaxError(unparsed.Err)
			assert.True(t, isSyntax)
			assert.Equal(t, src, line.String())
		})
	}
}

func TestParseLines(t *testing.T) {
	t.Parallel()

	src := "CLS\nPRINT (\nEND\n"

	_, err := parser.New(parser.Options{}).ParseLines(lexer.Tokenize(src))
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, 2, se.Line())

	lines, err := parser.New(parser.Options{Tolerant: true}).ParseLines(lexer.Tokenize(src))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "PRINT (", lines[1].String())

	lines, err = parser.New(parser.Options{}).ParseLines(lexer.Tokenize("CLS\n\nEND"))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.True(t, lines[1].IsEmpty())
}

func TestParseLine_Metacommands(t *testing.T) {
	t.Parallel()

	normalizing := parser.New(parser.Options{NormalizeMetacommands: true})
	assert.Equal(t, "' $INCLUDE: 'QB.BI'", parseLine(t, normalizing, "'$include:'QB.BI'").String())
	assert.Equal(t, "REM $DYNAMIC", parseLine(t, normalizing, "REM   $dynamic").String())

	plain := parser.New(parser.Options{})
	assert.Equal(t, "'$include:'QB.BI'", parseLine(t, plain, "'$include:'QB.BI'").String())

	_, err := normalizing.ParseLine(lexer.Tokenize("' $INCLUDE: A.BI"))
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, "Metacommand error", se.Message)
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"DECLARE SUB Greet ()",
		"CLS",
		"SUB Greet",
		`PRINT "hi"`,
		"END SUB",
		`PRINT "after"`,
		"FUNCTION Twice (n)",
		"Twice = n * 2",
		"END FUNCTION",
		"SUB Idle",
		"PRINT 1",
	}, "\n")

	unit, err := parser.New(parser.Options{}).ParseUnit(lexer.Tokenize(src))
	require.NoError(t, err)
	require.Len(t, unit.Elements, 4)

	main := unit.Main()
	require.NotNil(t, main)
	assert.Same(t, unit.Elements[0], main)
	assert.Len(t, main.Lines, 3)

	greet := unit.Procedure("greet")
	require.NotNil(t, greet)
	assert.Equal(t, ast.Sub, greet.Kind)
	assert.Len(t, greet.Lines, 3)

	twice := unit.Procedure("Twice")
	require.NotNil(t, twice)
	assert.Equal(t, ast.Function, twice.Kind)
	assert.Len(t, twice.Lines, 3)

	idle := unit.Procedure("Idle")
	require.NotNil(t, idle)
	assert.Len(t, idle.Lines, 2, "an unterminated procedure runs to the end")
}

func TestParseUnit_NestedProcedure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{
			name:   "sub inside a loop inside a sub",
			input:  "SUB Outer\nFOR i = 1 TO 2\nSUB Inner\nEND SUB\nNEXT i\nEND SUB\n",
			line:   3,
			column: 1,
		},
		{
			name:   "declare inside a sub",
			input:  "SUB Outer\nDECLARE SUB Z ()\nEND SUB\n",
			line:   2,
			column: 1,
		},
		{
			name:   "function inside a block if",
			input:  "IF x THEN\nFUNCTION F\nEND FUNCTION\nEND IF\n",
			line:   2,
			column: 1,
		},
		{
			name:   "declare after a sub on the same line",
			input:  "SUB Outer: DECLARE SUB Z ()\nEND SUB\n",
			line:   1,
			column: 12,
		},
		{
			name:   "sub inside a while loop",
			input:  "WHILE x\nSUB Inner\nWEND\n",
			line:   2,
			column: 1,
		},
	}

	p := parser.New(parser.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := p.ParseUnit(lexer.Tokenize(tt.input))
			se, ok := parser.AsSyntaxError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, "SUB or FUNCTION not allowed in control statement", se.Message)
			assert.Equal(t, tt.line, se.Line())
			assert.Equal(t, tt.column, se.Column())
		})
	}

	t.Run("closed blocks allow a later header", func(t *testing.T) {
		t.Parallel()

		src := "FOR i = 1 TO 2\nNEXT\nDO\nLOOP\nSELECT CASE x\nEND SELECT\nSUB A\nEND SUB\nDECLARE SUB B ()\n"
		unit, err := p.ParseUnit(lexer.Tokenize(src))
		require.NoError(t, err)
		require.NotNil(t, unit.Procedure("A"))
	})

	t.Run("tolerant keeps the nested lines unparsed", func(t *testing.T) {
		t.Parallel()

		src := "SUB Outer\nFOR i = 1 TO 2\nSUB Inner\nDECLARE SUB Z ()\nEND SUB\n"
		tolerant := parser.New(parser.Options{Tolerant: true})
		lines, err := tolerant.ParseLines(lexer.Tokenize(src))
		require.NoError(t, err)
		require.Len(t, lines, 5)
		for _, i := range []int{2, 3} {
			require.Len(t, lines[i].Statements, 1)
			_, unparsed := lines[i].Statements[0].(*ast.UnparsedStatement)
			assert.True(t, unparsed, "line %d", i+1)
		}

		unit := parser.GroupLines(lines)
		require.Len(t, unit.Elements, 2)
		assert.Nil(t, unit.Procedure("Inner"))
		assert.Len(t, unit.Procedure("Outer").Lines, 5)
	})
}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	handler := func(src string) *parser.TokenHandler {
		toks := lexer.Tokenize(src)
		return parser.NewTokenHandler(listrange.New(toks[:len(toks)-1]))
	}

	t.Run("parenthesized tokens", func(t *testing.T) {
		t.Parallel()

		h := handler("(a, (b)) c")
		inner, err := h.ExpectParenthesizedTokens()
		require.NoError(t, err)
		assert.Equal(t, 5, inner.Len())
		assert.Equal(t, token.Identifier, h.Kind(0))
		assert.Equal(t, 1, h.Remaining())
	})

	t.Run("unbalanced parentheses", func(t *testing.T) {
		t.Parallel()

		_, err := handler("(a, b").ExpectParenthesizedTokens()
		se, ok := parser.AsSyntaxError(err)
		require.True(t, ok)
		assert.Equal(t, "Expected: )", se.Message)
	})

	t.Run("unparenthesized search", func(t *testing.T) {
		t.Parallel()

		h := handler("f(a, b), c")
		assert.Equal(t, 6, h.FindNextUnparenthesizedOf(token.Comma))
		assert.Equal(t, -1, h.FindNextUnparenthesizedOf(token.Semicolon))
	})

	t.Run("identifier sigils", func(t *testing.T) {
		t.Parallel()

		_, err := handler("name$").ExpectIdentifier(false)
		require.Error(t, err)

		tok, err := handler("name$").ExpectIdentifier(true)
		require.NoError(t, err)
		assert.Equal(t, "name$", tok.Text)
	})

	t.Run("expect and accept", func(t *testing.T) {
		t.Parallel()

		h := handler("TO 5")
		_, ok := h.Accept(token.STEP)
		assert.False(t, ok)
		_, err := h.Expect(token.TO)
		require.NoError(t, err)
		require.Error(t, h.ExpectEnd())
		h.Advance(1)
		require.NoError(t, h.ExpectEnd())
		assert.True(t, h.Done())
	})
}

func FuzzParseLine(f *testing.F) {
	for _, src := range canonicalLines {
		f.Add(src)
	}
	f.Add("PRINT (")
	f.Add("IF x THEN IF y THEN 10 ELSE 20 ELSE 30")

	p := parser.New(parser.Options{Tolerant: true})
	f.Fuzz(func(t *testing.T, src string) {
		if strings.ContainsAny(src, "\r\n") {
			t.Skip()
		}
		line, err := p.ParseLine(lexer.Tokenize(src))
		if err != nil {
			t.Fatalf("tolerant parse of %q failed: %v", src, err)
		}
		rendered := line.String()

		again, err := p.ParseLine(lexer.Tokenize(rendered))
		if err != nil {
			t.Fatalf("tolerant parse of %q failed: %v", rendered, err)
		}
		if got := again.String(); got != rendered {
			t.Fatalf("render is not stable: %q became %q", rendered, got)
		}
	})
}
