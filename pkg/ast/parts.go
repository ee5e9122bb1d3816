package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// Point is a graphics coordinate pair, optionally relative (STEP).
type Point struct {
	Step bool
	X, Y Expression
}

// Render writes [STEP ](x, y).
func (p *Point) Render(sb *strings.Builder) {
	if p.Step {
		sb.WriteString("STEP ")
	}
	sb.WriteByte('(')
	renderExpr(sb, p.X, "Point", "x")
	sb.WriteString(", ")
	renderExpr(sb, p.Y, "Point", "y")
	sb.WriteByte(')')
}

// TypeSpec is the AS clause of a declaration.
type TypeSpec struct {
	// Type is a type keyword (INTEGER, STRING, ANY, ...) or a user TYPE name.
	Type token.Token
	// Length is the n of STRING * n, nil otherwise.
	Length Expression
}

// Render writes AS type[ * n].
func (t *TypeSpec) Render(sb *strings.Builder) {
	require(t.Type.Text != "", "TypeSpec", "type")
	sb.WriteString("AS ")
	if t.Type.Kind.IsKeyword() {
		sb.WriteString(t.Type.Kind.String())
	} else {
		sb.WriteString(t.Type.Text)
	}
	if t.Length != nil {
		sb.WriteString(" * ")
		t.Length.Render(sb)
	}
}

// Bound is one array dimension: [lower TO] upper.
type Bound struct {
	Lower Expression
	Upper Expression
}

// Render writes the dimension.
func (b Bound) Render(sb *strings.Builder) {
	if b.Lower != nil {
		b.Lower.Render(sb)
		sb.WriteString(" TO ")
	}
	renderExpr(sb, b.Upper, "Bound", "upper bound")
}

// Declarator names one variable or parameter in DIM, COMMON, SHARED, STATIC,
// TYPE bodies and procedure parameter lists.
type Declarator struct {
	ByVal bool
	Name  token.Token
	// Parens marks name() or name(bounds).
	Parens bool
	Bounds []Bound
	Type   *TypeSpec
}

// Render writes [BYVAL ]name[(bounds)][ AS type].
func (d *Declarator) Render(sb *strings.Builder) {
	require(d.Name.Text != "", "Declarator", "name")
	if d.ByVal {
		sb.WriteString("BYVAL ")
	}
	sb.WriteString(d.Name.Text)
	if d.Parens {
		sb.WriteByte('(')
		for i, b := range d.Bounds {
			if i > 0 {
				sb.WriteString(", ")
			}
			b.Render(sb)
		}
		sb.WriteByte(')')
	}
	if d.Type != nil {
		sb.WriteByte(' ')
		d.Type.Render(sb)
	}
}

func writeDeclarators(sb *strings.Builder, list []*Declarator, node string) {
	require(len(list) > 0, node, "declarator list")
	for i, d := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		d.Render(sb)
	}
}

// writeParams writes a parenthesized parameter list, preceded by a space
// when spaced is set, as QuickBASIC lays out SUB and DECLARE headers.
func writeParams(sb *strings.Builder, params []*Declarator, spaced bool) {
	if spaced {
		sb.WriteByte(' ')
	}
	sb.WriteByte('(')
	for i, d := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		d.Render(sb)
	}
	sb.WriteByte(')')
}
