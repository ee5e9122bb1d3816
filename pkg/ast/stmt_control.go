package ast

import (
	"strings"

	"github.com/yaklabco/gobasic/pkg/token"
)

// IfStatement is the single-line form: IF cond THEN stmts [ELSE stmts], or
// the legacy IF cond GOTO target [ELSE stmts].
type IfStatement struct {
	stmt
	Condition Expression
	// GotoForm marks IF cond GOTO target; Then then holds one JumpStatement.
	GotoForm bool
	Then     []Statement
	Else     []Statement
}

func (s *IfStatement) Render(sb *strings.Builder) {
	sb.WriteString("IF ")
	renderExpr(sb, s.Condition, "IfStatement", "condition")
	if s.GotoForm {
		sb.WriteByte(' ')
	} else {
		sb.WriteString(" THEN ")
	}
	writeStatements(sb, s.Then, "IfStatement")
	if len(s.Else) > 0 {
		sb.WriteString(" ELSE ")
		writeStatements(sb, s.Else, "IfStatement")
	}
}

// IfBlockStatement opens a block IF: IF cond THEN with nothing after it.
type IfBlockStatement struct {
	stmt
	Condition Expression
}

func (s *IfBlockStatement) Render(sb *strings.Builder) {
	sb.WriteString("IF ")
	renderExpr(sb, s.Condition, "IfBlockStatement", "condition")
	sb.WriteString(" THEN")
}

// ElseIfStatement is ELSEIF cond THEN.
type ElseIfStatement struct {
	stmt
	Condition Expression
}

func (s *ElseIfStatement) Render(sb *strings.Builder) {
	sb.WriteString("ELSEIF ")
	renderExpr(sb, s.Condition, "ElseIfStatement", "condition")
	sb.WriteString(" THEN")
}

// ElseStatement is the ELSE of a block IF.
type ElseStatement struct {
	stmt
}

func (s *ElseStatement) Render(sb *strings.Builder) {
	sb.WriteString("ELSE")
}

// ForStatement is FOR counter = start TO end [STEP step].
type ForStatement struct {
	stmt
	Counter Expression
	Start   Expression
	End     Expression
	Step    Expression
}

func (s *ForStatement) Render(sb *strings.Builder) {
	sb.WriteString("FOR ")
	renderExpr(sb, s.Counter, "ForStatement", "counter")
	sb.WriteString(" = ")
	renderExpr(sb, s.Start, "ForStatement", "start")
	sb.WriteString(" TO ")
	renderExpr(sb, s.End, "ForStatement", "end")
	if s.Step != nil {
		sb.WriteString(" STEP ")
		s.Step.Render(sb)
	}
}

// NextStatement is NEXT [counter, counter...].
type NextStatement struct {
	stmt
	Counters []Expression
}

func (s *NextStatement) Render(sb *strings.Builder) {
	sb.WriteString("NEXT")
	if len(s.Counters) > 0 {
		sb.WriteByte(' ')
		writeList(sb, s.Counters, "NextStatement")
	}
}

// LoopCondition is the optional WHILE or UNTIL clause of DO and LOOP.
type LoopCondition struct {
	// Kind is WHILE or UNTIL; zero when there is no clause.
	Kind      token.Kind
	Condition Expression
}

func (c LoopCondition) render(sb *strings.Builder, node string) {
	if c.Kind == 0 {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(c.Kind.String())
	sb.WriteByte(' ')
	renderExpr(sb, c.Condition, node, "condition")
}

// DoStatement is DO [WHILE|UNTIL cond].
type DoStatement struct {
	stmt
	LoopCondition
}

func (s *DoStatement) Render(sb *strings.Builder) {
	sb.WriteString("DO")
	s.render(sb, "DoStatement")
}

// LoopStatement is LOOP [WHILE|UNTIL cond].
type LoopStatement struct {
	stmt
	LoopCondition
}

func (s *LoopStatement) Render(sb *strings.Builder) {
	sb.WriteString("LOOP")
	s.render(sb, "LoopStatement")
}

// WhileStatement is WHILE cond.
type WhileStatement struct {
	stmt
	Condition Expression
}

func (s *WhileStatement) Render(sb *strings.Builder) {
	sb.WriteString("WHILE ")
	renderExpr(sb, s.Condition, "WhileStatement", "condition")
}

// SelectCaseStatement is SELECT CASE subject.
type SelectCaseStatement struct {
	stmt
	Subject Expression
}

func (s *SelectCaseStatement) Render(sb *strings.Builder) {
	sb.WriteString("SELECT CASE ")
	renderExpr(sb, s.Subject, "SelectCaseStatement", "subject")
}

// CaseClause is one test of a CASE statement: value, low TO high, or
// IS op value.
type CaseClause struct {
	// Relational is the operator of an IS clause, zero otherwise.
	Relational token.Kind
	Value      Expression
	// To is the upper bound of a range clause.
	To Expression
}

func (c CaseClause) render(sb *strings.Builder) {
	if c.Relational != 0 {
		sb.WriteString("IS ")
		sb.WriteString(c.Relational.String())
		sb.WriteByte(' ')
	}
	renderExpr(sb, c.Value, "CaseClause", "value")
	if c.To != nil {
		sb.WriteString(" TO ")
		c.To.Render(sb)
	}
}

// CaseStatement is CASE clause, clause... or CASE ELSE.
type CaseStatement struct {
	stmt
	Else    bool
	Clauses []CaseClause
}

func (s *CaseStatement) Render(sb *strings.Builder) {
	if s.Else {
		sb.WriteString("CASE ELSE")
		return
	}
	require(len(s.Clauses) > 0, "CaseStatement", "clauses")
	sb.WriteString("CASE ")
	for i, c := range s.Clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.render(sb)
	}
}
