package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// DimStatement is DIM or REDIM [SHARED] declarator, declarator...
type DimStatement struct {
	stmt
	Keyword token.Kind
	Shared  bool
	Vars    []*Declarator
}

func (s *DimStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	if s.Shared {
		sb.WriteString(" SHARED")
	}
	sb.WriteByte(' ')
	writeDeclarators(sb, s.Vars, "DimStatement")
}

// VariableListStatement is COMMON [SHARED], SHARED or STATIC followed by
// declarators.
type VariableListStatement struct {
	stmt
	Keyword token.Kind
	// Shared marks COMMON SHARED.
	Shared bool
	Vars   []*Declarator
}

func (s *VariableListStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	if s.Shared {
		sb.WriteString(" SHARED")
	}
	sb.WriteByte(' ')
	writeDeclarators(sb, s.Vars, "VariableListStatement")
}

// ConstDef is one name = value pair of a CONST statement.
type ConstDef struct {
	Name  token.Token
	Value Expression
}

// ConstStatement is CONST name = value, name = value...
type ConstStatement struct {
	stmt
	Defs []ConstDef
}

func (s *ConstStatement) Render(sb *strings.Builder) {
	require(len(s.Defs) > 0, "ConstStatement", "definitions")
	sb.WriteString("CONST ")
	for i, d := range s.Defs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Name.Text)
		sb.WriteString(" = ")
		renderExpr(sb, d.Value, "ConstStatement", "value")
	}
}

// DeclareStatement is DECLARE SUB|FUNCTION name [(params)].
type DeclareStatement struct {
	stmt
	Procedure token.Kind
	Name      token.Token
	// HasParams distinguishes name () from name.
	HasParams bool
	Params    []*Declarator
}

func (s *DeclareStatement) Render(sb *strings.Builder) {
	require(s.Name.Text != "", "DeclareStatement", "name")
	sb.WriteString("DECLARE ")
	sb.WriteString(s.Procedure.String())
	sb.WriteByte(' ')
	sb.WriteString(s.Name.Text)
	if s.HasParams {
		writeParams(sb, s.Params, true)
	}
}

// ProcedureStatement opens a SUB or FUNCTION: SUB name [(params)] [STATIC].
type ProcedureStatement struct {
	stmt
	Keyword   token.Kind
	Name      token.Token
	HasParams bool
	Params    []*Declarator
	Static    bool
}

func (s *ProcedureStatement) Render(sb *strings.Builder) {
	require(s.Name.Text != "", "ProcedureStatement", "name")
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	sb.WriteString(s.Name.Text)
	if s.HasParams {
		writeParams(sb, s.Params, true)
	}
	if s.Static {
		sb.WriteString(" STATIC")
	}
}

// DefFnStatement is DEF FNname[(params)] [= body]. A nil Body opens a
// multi-line definition closed by END DEF.
type DefFnStatement struct {
	stmt
	Name      token.Token
	HasParams bool
	Params    []*Declarator
	Body      Expression
}

func (s *DefFnStatement) Render(sb *strings.Builder) {
	require(s.Name.Text != "", "DefFnStatement", "name")
	sb.WriteString("DEF ")
	sb.WriteString(s.Name.Text)
	if s.HasParams {
		writeParams(sb, s.Params, false)
	}
	if s.Body != nil {
		sb.WriteString(" = ")
		s.Body.Render(sb)
	}
}

// DefSegStatement is DEF SEG [= address].
type DefSegStatement struct {
	stmt
	Address Expression
}

func (s *DefSegStatement) Render(sb *strings.Builder) {
	sb.WriteString("DEF SEG")
	if s.Address != nil {
		sb.WriteString(" = ")
		s.Address.Render(sb)
	}
}

// DefTypeStatement is DEFINT, DEFLNG, DEFSNG, DEFDBL or DEFSTR with its
// letter ranges, kept merged and sorted.
type DefTypeStatement struct {
	stmt
	Keyword token.Kind
	Ranges  LetterRanges
}

func (s *DefTypeStatement) Render(sb *strings.Builder) {
	require(len(s.Ranges) > 0, "DefTypeStatement", "letter ranges")
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	s.Ranges.Render(sb)
}

// TypeStatement opens a user-defined type: TYPE name.
type TypeStatement struct {
	stmt
	Name token.Token
}

func (s *TypeStatement) Render(sb *strings.Builder) {
	require(s.Name.Text != "", "TypeStatement", "name")
	sb.WriteString("TYPE ")
	sb.WriteString(s.Name.Text)
}

// TypeElementStatement is one element of a TYPE body: name AS type.
type TypeElementStatement struct {
	stmt
	Element *Declarator
}

func (s *TypeElementStatement) Render(sb *strings.Builder) {
	require(s.Element != nil && s.Element.Type != nil, "TypeElementStatement", "element type")
	s.Element.Render(sb)
}

// OptionBaseStatement is OPTION BASE 0|1.
type OptionBaseStatement struct {
	stmt
	Base token.Token
}

func (s *OptionBaseStatement) Render(sb *strings.Builder) {
	require(s.Base.Text != "", "OptionBaseStatement", "base")
	sb.WriteString("OPTION BASE ")
	sb.WriteString(s.Base.Text)
}
