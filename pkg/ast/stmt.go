package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// AssignmentStatement is [LET ]target = value.
type AssignmentStatement struct {
	stmt
	Let    bool
	Target Expression
	Value  Expression
}

func (s *AssignmentStatement) Render(sb *strings.Builder) {
	if s.Let {
		sb.WriteString("LET ")
	}
	renderExpr(sb, s.Target, "AssignmentStatement", "target")
	sb.WriteString(" = ")
	renderExpr(sb, s.Value, "AssignmentStatement", "value")
}

// CallStatement invokes a SUB, either with CALL name(args) or implicitly as
// name args.
type CallStatement struct {
	stmt
	Explicit bool
	Name     token.Token
	Args     []Expression
}

func (s *CallStatement) Render(sb *strings.Builder) {
	require(s.Name.Text != "", "CallStatement", "name")
	if s.Explicit {
		sb.WriteString("CALL ")
		sb.WriteString(s.Name.Text)
		if len(s.Args) > 0 {
			sb.WriteByte('(')
			writeList(sb, s.Args, "CallStatement")
			sb.WriteByte(')')
		}
		return
	}
	sb.WriteString(s.Name.Text)
	if len(s.Args) > 0 {
		sb.WriteByte(' ')
		writeList(sb, s.Args, "CallStatement")
	}
}

// ArgumentStatement covers the statements whose grammar is a keyword
// followed by a comma-separated argument list, such as CLS, POKE, LOCATE,
// SCREEN or CLOSE. Nil entries are omitted optional positions.
type ArgumentStatement struct {
	stmt
	Keyword token.Kind
	Args    []Expression
}

func (s *ArgumentStatement) Render(sb *strings.Builder) {
	require(s.Keyword.IsKeyword(), "ArgumentStatement", "keyword")
	sb.WriteString(s.Keyword.String())
	if len(s.Args) > 0 {
		sb.WriteByte(' ')
		writeOptionalArgs(sb, s.Args)
	}
}

// RemStatement is a REM comment. Text holds everything from the REM keyword
// to the end of the line.
type RemStatement struct {
	stmt
	Text string
}

func (s *RemStatement) Render(sb *strings.Builder) {
	require(len(s.Text) >= len("REM"), "RemStatement", "text")
	sb.WriteString("REM")
	sb.WriteString(s.Text[len("REM"):])
}

// UnparsedStatement keeps the raw text of a line that failed to parse in
// tolerant mode. Err is the syntax error that caused it.
type UnparsedStatement struct {
	stmt
	Text string
	Err  error
}

func (s *UnparsedStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Text)
}

// JumpStatement is GOTO or GOSUB. Implicit marks a bare line number used as
// a THEN or ELSE body, which renders without the keyword.
type JumpStatement struct {
	stmt
	Keyword  token.Kind
	Target   token.Token
	Implicit bool
}

func (s *JumpStatement) Render(sb *strings.Builder) {
	require(s.Target.Text != "", "JumpStatement", "target")
	if !s.Implicit {
		sb.WriteString(s.Keyword.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(s.Target.Text)
}

// TargetStatement is RETURN or RESTORE with an optional line target.
type TargetStatement struct {
	stmt
	Keyword token.Kind
	Target  *token.Token
}

func (s *TargetStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	if s.Target != nil {
		sb.WriteByte(' ')
		sb.WriteString(s.Target.Text)
	}
}

// ResumeStatement is RESUME, RESUME NEXT or RESUME target.
type ResumeStatement struct {
	stmt
	Next   bool
	Target *token.Token
}

func (s *ResumeStatement) Render(sb *strings.Builder) {
	sb.WriteString("RESUME")
	switch {
	case s.Next:
		sb.WriteString(" NEXT")
	case s.Target != nil:
		sb.WriteByte(' ')
		sb.WriteString(s.Target.Text)
	}
}

// EndStatement is END or END IF, END SELECT, END SUB, END FUNCTION, END
// TYPE, END DEF. Block is zero for a bare END.
type EndStatement struct {
	stmt
	Block token.Kind
}

func (s *EndStatement) Render(sb *strings.Builder) {
	sb.WriteString("END")
	if s.Block != 0 {
		sb.WriteByte(' ')
		sb.WriteString(s.Block.String())
	}
}

// ExitStatement is EXIT DO, EXIT FOR, EXIT SUB, EXIT FUNCTION or EXIT DEF.
type ExitStatement struct {
	stmt
	Block token.Kind
}

func (s *ExitStatement) Render(sb *strings.Builder) {
	require(s.Block != 0, "ExitStatement", "block")
	sb.WriteString("EXIT ")
	sb.WriteString(s.Block.String())
}

// MidStatement is MID$(target, start[, length]) = value.
type MidStatement struct {
	stmt
	Target Expression
	Start  Expression
	Length Expression
	Value  Expression
}

func (s *MidStatement) Render(sb *strings.Builder) {
	sb.WriteString("MID$(")
	renderExpr(sb, s.Target, "MidStatement", "target")
	sb.WriteString(", ")
	renderExpr(sb, s.Start, "MidStatement", "start")
	if s.Length != nil {
		sb.WriteString(", ")
		s.Length.Render(sb)
	}
	sb.WriteString(") = ")
	renderExpr(sb, s.Value, "MidStatement", "value")
}

// FieldAssignStatement is LSET or RSET target = value.
type FieldAssignStatement struct {
	stmt
	Keyword token.Kind
	Target  Expression
	Value   Expression
}

func (s *FieldAssignStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	renderExpr(sb, s.Target, "FieldAssignStatement", "target")
	sb.WriteString(" = ")
	renderExpr(sb, s.Value, "FieldAssignStatement", "value")
}

// ClockStatement sets the system clock: DATE$ = value or TIME$ = value.
type ClockStatement struct {
	stmt
	Keyword token.Kind
	Value   Expression
}

func (s *ClockStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Keyword.String())
	sb.WriteString(" = ")
	renderExpr(sb, s.Value, "ClockStatement", "value")
}

// KeyStatement is KEY ON, KEY OFF, KEY LIST or KEY n, text.
type KeyStatement struct {
	stmt
	// Action is ON, OFF or LIST; zero when Number and Text are set.
	Action token.Kind
	Number Expression
	Text   Expression
}

func (s *KeyStatement) Render(sb *strings.Builder) {
	sb.WriteString("KEY ")
	if s.Action != 0 {
		sb.WriteString(s.Action.String())
		return
	}
	renderExpr(sb, s.Number, "KeyStatement", "key number")
	sb.WriteString(", ")
	renderExpr(sb, s.Text, "KeyStatement", "key text")
}

// EventControlStatement enables or disables event trapping:
// TIMER ON, KEY(n) STOP, STRIG(n) OFF, PEN ON, PLAY ON, COM(n) ON.
type EventControlStatement struct {
	stmt
	Event  token.Kind
	Arg    Expression
	Action token.Kind
}

func (s *EventControlStatement) Render(sb *strings.Builder) {
	sb.WriteString(s.Event.String())
	if s.Arg != nil {
		sb.WriteByte('(')
		s.Arg.Render(sb)
		sb.WriteByte(')')
	}
	require(s.Action != 0, "EventControlStatement", "action")
	sb.WriteByte(' ')
	sb.WriteString(s.Action.String())
}

// OnEventStatement is ON event[(arg)] GOSUB target.
type OnEventStatement struct {
	stmt
	Event  token.Kind
	Arg    Expression
	Target token.Token
}

func (s *OnEventStatement) Render(sb *strings.Builder) {
	sb.WriteString("ON ")
	sb.WriteString(s.Event.String())
	if s.Arg != nil {
		sb.WriteByte('(')
		s.Arg.Render(sb)
		sb.WriteByte(')')
	}
	require(s.Target.Text != "", "OnEventStatement", "target")
	sb.WriteString(" GOSUB ")
	sb.WriteString(s.Target.Text)
}

// OnErrorStatement is ON ERROR GOTO target or ON ERROR RESUME NEXT.
type OnErrorStatement struct {
	stmt
	ResumeNext bool
	Target     token.Token
}

func (s *OnErrorStatement) Render(sb *strings.Builder) {
	if s.ResumeNext {
		sb.WriteString("ON ERROR RESUME NEXT")
		return
	}
	require(s.Target.Text != "", "OnErrorStatement", "target")
	sb.WriteString("ON ERROR GOTO ")
	sb.WriteString(s.Target.Text)
}

// OnJumpStatement is ON selector GOTO|GOSUB target, target...
type OnJumpStatement struct {
	stmt
	Selector Expression
	Keyword  token.Kind
	Targets  []token.Token
}

func (s *OnJumpStatement) Render(sb *strings.Builder) {
	sb.WriteString("ON ")
	renderExpr(sb, s.Selector, "OnJumpStatement", "selector")
	sb.WriteByte(' ')
	sb.WriteString(s.Keyword.String())
	sb.WriteByte(' ')
	require(len(s.Targets) > 0, "OnJumpStatement", "targets")
	writeTokens(sb, s.Targets)
}
