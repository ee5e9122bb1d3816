package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// PrintItem is one entry of a PRINT list: an optional expression followed
// by an optional ; or , separator.
type PrintItem struct {
	Expr Expression
	// Separator is Semicolon, Comma or zero.
	Separator token.Kind
}

// PrintStatement is PRINT or LPRINT [#file,] [USING format;] items.
type PrintStatement struct {
	stmt
	Keyword    token.Kind
	FileNumber Expression
	Using      Expression
	Items      []PrintItem
}

func (s *PrintStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	if s.FileNumber != nil {
		sb.WriteByte(' ')
		s.FileNumber.Render(sb)
		sb.WriteByte(',')
	}
	if s.Using != nil {
		sb.WriteString(" USING ")
		s.Using.Render(sb)
		sb.WriteByte(';')
	}
	for i, item := range s.Items {
		if item.Expr != nil {
			sb.WriteByte(' ')
			item.Expr.Render(sb)
		} else if i == 0 {
			sb.WriteByte(' ')
		}
		switch item.Separator {
		case token.Semicolon:
			sb.WriteByte(';')
		case token.Comma:
			sb.WriteByte(',')
		case 0:
		default:
			panic(InvariantError{Node: "PrintStatement", Field: "separator"})
		}
	}
}

// WriteStatement is WRITE [#file,] values.
type WriteStatement struct {
	stmt
	FileNumber Expression
	Args       []Expression
}

func (s *WriteStatement) Render(sb *strings.Builder) {
	sb.WriteString("WRITE")
	if s.FileNumber != nil {
		sb.WriteByte(' ')
		s.FileNumber.Render(sb)
		sb.WriteByte(',')
	}
	if len(s.Args) > 0 {
		sb.WriteByte(' ')
		writeList(sb, s.Args, "WriteStatement")
	}
}

// InputStatement is INPUT or LINE INPUT. A leading ; keeps the cursor on the
// line; the prompt is followed by ; (print a question mark) or ,.
type InputStatement struct {
	stmt
	Line            bool
	FileNumber      Expression
	SameLine        bool
	Prompt          *token.Token
	PromptSeparator token.Kind
	Vars            []Expression
}

func (s *InputStatement) Render(sb *strings.Builder) {
	if s.Line {
		sb.WriteString("LINE ")
	}
	sb.WriteString("INPUT")
	if s.FileNumber != nil {
		sb.WriteByte(' ')
		s.FileNumber.Render(sb)
		sb.WriteByte(',')
	}
	if s.SameLine {
		sb.WriteString(" ;")
	}
	if s.Prompt != nil {
		sb.WriteByte(' ')
		sb.WriteString(s.Prompt.Text)
		sb.WriteString(s.PromptSeparator.String())
	}
	require(len(s.Vars) > 0, "InputStatement", "variables")
	sb.WriteByte(' ')
	writeList(sb, s.Vars, "InputStatement")
}

// OpenStatement is either the modern form
//
//	OPEN file [FOR mode] [ACCESS access] [lock] AS [#]n [LEN = reclen]
//
// or the legacy positional form OPEN mode, [#]n, file[, reclen].
type OpenStatement struct {
	stmt
	Legacy bool
	File   Expression
	// Mode is INPUT, OUTPUT, APPEND, RANDOM or BINARY for the modern form.
	Mode token.Kind
	// Access holds READ, WRITE or READ WRITE.
	Access []token.Kind
	// Lock holds SHARED, or LOCK followed by READ, WRITE or READ WRITE.
	Lock         []token.Kind
	FileNumber   Expression
	RecordLength Expression
	// LegacyMode is the mode string expression of the legacy form.
	LegacyMode Expression
}

func writeKinds(sb *strings.Builder, kinds []token.Kind) {
	for i, k := range kinds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k.String())
	}
}

func (s *OpenStatement) Render(sb *strings.Builder) {
	sb.WriteString("OPEN ")
	if s.Legacy {
		renderExpr(sb, s.LegacyMode, "OpenStatement", "mode")
		sb.WriteString(", ")
		renderExpr(sb, s.FileNumber, "OpenStatement", "file number")
		sb.WriteString(", ")
		renderExpr(sb, s.File, "OpenStatement", "file name")
		if s.RecordLength != nil {
			sb.WriteString(", ")
			s.RecordLength.Render(sb)
		}
		return
	}
	renderExpr(sb, s.File, "OpenStatement", "file name")
	if s.Mode != 0 {
		sb.WriteString(" FOR ")
		sb.WriteString(s.Mode.String())
	}
	if len(s.Access) > 0 {
		sb.WriteString(" ACCESS ")
		writeKinds(sb, s.Access)
	}
	if len(s.Lock) > 0 {
		sb.WriteByte(' ')
		writeKinds(sb, s.Lock)
	}
	sb.WriteString(" AS ")
	renderExpr(sb, s.FileNumber, "OpenStatement", "file number")
	if s.RecordLength != nil {
		sb.WriteString(" LEN = ")
		s.RecordLength.Render(sb)
	}
}

// FieldDef is one width AS variable pair of a FIELD statement.
type FieldDef struct {
	Width Expression
	Var   Expression
}

// FieldStatement is FIELD #file, width AS var, ...
type FieldStatement struct {
	stmt
	FileNumber Expression
	Fields     []FieldDef
}

func (s *FieldStatement) Render(sb *strings.Builder) {
	sb.WriteString("FIELD ")
	renderExpr(sb, s.FileNumber, "FieldStatement", "file number")
	require(len(s.Fields) > 0, "FieldStatement", "fields")
	for _, f := range s.Fields {
		sb.WriteString(", ")
		renderExpr(sb, f.Width, "FieldStatement", "width")
		sb.WriteString(" AS ")
		renderExpr(sb, f.Var, "FieldStatement", "variable")
	}
}

// LockStatement is LOCK or UNLOCK #file[, [start] [TO end]].
type LockStatement struct {
	stmt
	Keyword    token.Kind
	FileNumber Expression
	Start      Expression
	End        Expression
}

func (s *LockStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	renderExpr(sb, s.FileNumber, "LockStatement", "file number")
	if s.Start == nil && s.End == nil {
		return
	}
	sb.WriteString(", ")
	if s.Start != nil {
		s.Start.Render(sb)
		if s.End != nil {
			sb.WriteByte(' ')
		}
	}
	if s.End != nil {
		sb.WriteString("TO ")
		s.End.Render(sb)
	}
}

// NameStatement is NAME old AS new.
type NameStatement struct {
	stmt
	Old Expression
	New Expression
}

func (s *NameStatement) Render(sb *strings.Builder) {
	sb.WriteString("NAME ")
	renderExpr(sb, s.Old, "NameStatement", "old name")
	sb.WriteString(" AS ")
	renderExpr(sb, s.New, "NameStatement", "new name")
}

// WidthStatement is WIDTH [LPRINT] args, where args may be a device, a file
// number or screen dimensions.
type WidthStatement struct {
	stmt
	LPrint bool
	Args   []Expression
}

func (s *WidthStatement) Render(sb *strings.Builder) {
	sb.WriteString("WIDTH")
	if s.LPrint {
		sb.WriteString(" LPRINT")
	}
	require(len(s.Args) > 0, "WidthStatement", "arguments")
	sb.WriteByte(' ')
	writeOptionalArgs(sb, s.Args)
}
