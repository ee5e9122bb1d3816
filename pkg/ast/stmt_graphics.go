package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// CircleStatement is CIRCLE [STEP](x, y), radius[, color[, start[, end[, aspect]]]].
type CircleStatement struct {
	stmt
	Center Point
	Radius Expression
	// Options holds color, start, end and aspect up to the last one reached;
	// nil entries are omitted positions.
	Options []Expression
}

func (s *CircleStatement) Render(sb *strings.Builder) {
	require(s.Radius != nil, "CircleStatement", "radius")
	sb.WriteString("CIRCLE ")
	s.Center.Render(sb)
	sb.WriteString(", ")
	writeOptionalArgs(sb, append([]Expression{s.Radius}, s.Options...))
}

// LineStatement is LINE [[STEP](x1, y1)]-[STEP](x2, y2)[, color[, B|BF[, style]]].
type LineStatement struct {
	stmt
	From *Point
	To   Point
	// Options holds color, box and style; box is the identifier B or BF.
	Options []Expression
}

func (s *LineStatement) Render(sb *strings.Builder) {
	sb.WriteString("LINE ")
	if s.From != nil {
		s.From.Render(sb)
	}
	sb.WriteByte('-')
	s.To.Render(sb)
	if len(s.Options) > 0 {
		sb.WriteString(", ")
		writeOptionalArgs(sb, s.Options)
	}
}

// PsetStatement is PSET or PRESET [STEP](x, y)[, color].
type PsetStatement struct {
	stmt
	Keyword token.Kind
	Point   Point
	Color   Expression
}

func (s *PsetStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	s.Point.Render(sb)
	if s.Color != nil {
		sb.WriteString(", ")
		s.Color.Render(sb)
	}
}

// PaintStatement is PAINT [STEP](x, y)[, paint[, border[, background]]].
type PaintStatement struct {
	stmt
	Point   Point
	Options []Expression
}

func (s *PaintStatement) Render(sb *strings.Builder) {
	sb.WriteString("PAINT ")
	s.Point.Render(sb)
	if len(s.Options) > 0 {
		sb.WriteString(", ")
		writeOptionalArgs(sb, s.Options)
	}
}

// GraphicsStatement is the screen form of GET and PUT:
//
//	GET [STEP](x1, y1)-[STEP](x2, y2), array
//	PUT [STEP](x, y), array[, action]
type GraphicsStatement struct {
	stmt
	Keyword token.Kind
	From    Point
	To      *Point
	Array   Expression
	// Action is PSET, PRESET, AND, OR or XOR for PUT, zero otherwise.
	Action token.Kind
}

func (s *GraphicsStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	s.From.Render(sb)
	if s.To != nil {
		sb.WriteByte('-')
		s.To.Render(sb)
	}
	sb.WriteString(", ")
	renderExpr(sb, s.Array, "GraphicsStatement", "array")
	if s.Action != 0 {
		sb.WriteString(", ")
		sb.WriteString(s.Action.String())
	}
}

// PaletteStatement is PALETTE [attribute, color] or PALETTE USING array.
type PaletteStatement struct {
	stmt
	Using bool
	Args  []Expression
}

func (s *PaletteStatement) Render(sb *strings.Builder) {
	sb.WriteString("PALETTE")
	if s.Using {
		require(len(s.Args) == 1, "PaletteStatement", "USING array")
		sb.WriteString(" USING ")
		s.Args[0].Render(sb)
		return
	}
	if len(s.Args) > 0 {
		sb.WriteByte(' ')
		writeOptionalArgs(sb, s.Args)
	}
}

// ViewStatement is VIEW [[SCREEN] (x1, y1)-(x2, y2)[, color[, border]]].
type ViewStatement struct {
	stmt
	Screen  bool
	From    *Point
	To      *Point
	Options []Expression
}

func (s *ViewStatement) Render(sb *strings.Builder) {
	sb.WriteString("VIEW")
	if s.From == nil {
		return
	}
	require(s.To != nil, "ViewStatement", "second corner")
	if s.Screen {
		sb.WriteString(" SCREEN")
	}
	sb.WriteByte(' ')
	s.From.Render(sb)
	sb.WriteByte('-')
	s.To.Render(sb)
	if len(s.Options) > 0 {
		sb.WriteString(", ")
		writeOptionalArgs(sb, s.Options)
	}
}

// ViewPrintStatement is VIEW PRINT [top TO bottom].
type ViewPrintStatement struct {
	stmt
	Top    Expression
	Bottom Expression
}

func (s *ViewPrintStatement) Render(sb *strings.Builder) {
	sb.WriteString("VIEW PRINT")
	if s.Top != nil {
		sb.WriteByte(' ')
		s.Top.Render(sb)
		sb.WriteString(" TO ")
		renderExpr(sb, s.Bottom, "ViewPrintStatement", "bottom")
	}
}

// WindowStatement is WINDOW [[SCREEN] (x1, y1)-(x2, y2)].
type WindowStatement struct {
	stmt
	Screen bool
	From   *Point
	To     *Point
}

func (s *WindowStatement) Render(sb *strings.Builder) {
	sb.WriteString("WINDOW")
	if s.From == nil {
		return
	}
	require(s.To != nil, "WindowStatement", "second corner")
	if s.Screen {
		sb.WriteString(" SCREEN")
	}
	sb.WriteByte(' ')
	s.From.Render(sb)
	sb.WriteByte('-')
	s.To.Render(sb)
}
