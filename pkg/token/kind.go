// Package token defines the lexical vocabulary shared by the lexer and the
// parser: token kinds, the token value type, the keyword table and the
// built-in function table.
package token

// Kind classifies a token. The set is closed: every token produced by a
// lexer carries one of the constants below.
type Kind uint16

// Structural and literal kinds.
const (
	Illegal Kind = iota
	EOF
	NewLine
	Whitespace
	Comment  // ' comment or REM comment, text includes the marker
	DataText // raw payload following DATA
	Identifier
	Number
	String

	// Punctuation and operators.
	LeftParen
	RightParen
	Comma
	Colon
	Semicolon
	Hash
	Period
	Plus
	Minus
	Star
	Slash
	Backslash
	Caret
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	keywordStart
)

// Keywords. Names ending in Str carry a trailing $ in source.
const (
	ABS Kind = keywordStart + iota
	ABSOLUTE
	ACCESS
	ALIAS
	AND
	ANY
	APPEND
	AS
	ASC
	ATN
	BASE
	BEEP
	BINARY
	BLOAD
	BSAVE
	BYVAL
	CALL
	CASE
	CDBL
	CDECL
	CHAIN
	CHDIR
	ChrStr
	CINT
	CIRCLE
	CLEAR
	CLNG
	CLOSE
	CLS
	COLOR
	COM
	CommandStr
	COMMON
	CONST
	COS
	CSNG
	CSRLIN
	CVD
	CVDMBF
	CVI
	CVL
	CVS
	CVSMBF
	DATA
	DateStr
	DECLARE
	DEF
	DEFDBL
	DEFINT
	DEFLNG
	DEFSNG
	DEFSTR
	DIM
	DO
	DOUBLE
	DRAW
	DYNAMIC
	ELSE
	ELSEIF
	END
	ENVIRON
	EnvironStr
	EOFFunc
	EQV
	ERASE
	ERDEV
	ErdevStr
	ERL
	ERR
	ERROR
	EXIT
	EXP
	FIELD
	FILEATTR
	FILES
	FIX
	FOR
	FRE
	FREEFILE
	FUNCTION
	GET
	GOSUB
	GOTO
	HexStr
	IF
	IMP
	InkeyStr
	INP
	INPUT
	InputStr
	INSTR
	INT
	INTEGER
	IOCTL
	IoctlStr
	IS
	KEY
	KILL
	LBOUND
	LcaseStr
	LeftStr
	LEN
	LET
	LINE
	LIST
	LOC
	LOCATE
	LOCK
	LOF
	LOG
	LONG
	LOOP
	LPOS
	LPRINT
	LSET
	LtrimStr
	MidStr
	MkdStr
	MKDIR
	MkdmbfStr
	MkiStr
	MklStr
	MksStr
	MksmbfStr
	MOD
	NAME
	NEXT
	NOT
	OctStr
	OFF
	ON
	OPEN
	OPTION
	OR
	OUT
	OUTPUT
	PAINT
	PALETTE
	PCOPY
	PEEK
	PEN
	PLAY
	PMAP
	POINT
	POKE
	POS
	PRESET
	PRINT
	PSET
	PUT
	RANDOM
	RANDOMIZE
	READ
	REDIM
	REM
	RESET
	RESTORE
	RESUME
	RETURN
	RightStr
	RMDIR
	RND
	RSET
	RtrimStr
	RUN
	SADD
	SCREEN
	SEEK
	SEG
	SELECT
	SETMEM
	SGN
	SHARED
	SHELL
	SIGNAL
	SIN
	SINGLE
	SLEEP
	SOUND
	SpaceStr
	SPC
	SQR
	STATIC
	STEP
	STICK
	STOP
	StrStr
	STRIG
	STRING
	StringStr
	SUB
	SWAP
	SYSTEM
	TAB
	TAN
	THEN
	TimeStr
	TIMER
	TO
	TROFF
	TRON
	TYPE
	UBOUND
	UcaseStr
	UEVENT
	UNLOCK
	UNTIL
	USING
	VAL
	VARPTR
	VarptrStr
	VARSEG
	VIEW
	WAIT
	WEND
	WHILE
	WIDTH
	WINDOW
	WRITE
	XOR

	keywordEnd
)

// kindNames holds the display text of every non-keyword kind.
//
//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	Illegal:      "illegal",
	EOF:          "end of input",
	NewLine:      "end of line",
	Whitespace:   "whitespace",
	Comment:      "comment",
	DataText:     "data",
	Identifier:   "identifier",
	Number:       "number",
	String:       "string",
	LeftParen:    "(",
	RightParen:   ")",
	Comma:        ",",
	Colon:        ":",
	Semicolon:    ";",
	Hash:         "#",
	Period:       ".",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Backslash:    "\\",
	Caret:        "^",
	Equal:        "=",
	NotEqual:     "<>",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
}

// String returns the canonical source spelling of keywords and operators and
// a descriptive name for the structural kinds.
func (k Kind) String() string {
	if k.IsKeyword() {
		return keywordText[k-keywordStart]
	}
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= keywordStart && k < keywordEnd
}

// IsOperator reports whether k can appear between two operands.
func (k Kind) IsOperator() bool {
	return Precedence(k) > 0
}

// IsRelational reports whether k is one of = <> < <= > >=.
func (k Kind) IsRelational() bool {
	switch k {
	case Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual:
		return true
	default:
		return false
	}
}

// Binary operator precedence levels, lowest first.
const (
	PrecNone = iota
	PrecImp
	PrecEqv
	PrecOr
	PrecXor
	PrecAnd
	PrecRelational
	PrecAdditive
	PrecMultiplicative
	PrecIntegerDivide
	PrecExponent
	PrecField
)

// Precedence returns the binary precedence of k, or PrecNone if k is not a
// binary operator.
func Precedence(k Kind) int {
	switch k {
	case IMP:
		return PrecImp
	case EQV:
		return PrecEqv
	case OR:
		return PrecOr
	case XOR:
		return PrecXor
	case AND:
		return PrecAnd
	case Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual:
		return PrecRelational
	case Plus, Minus:
		return PrecAdditive
	case Star, Slash, MOD:
		return PrecMultiplicative
	case Backslash:
		return PrecIntegerDivide
	case Caret:
		return PrecExponent
	case Period:
		return PrecField
	default:
		return PrecNone
	}
}

// Prefix operators bind tighter than the binary levels below them.
const (
	// PrecUnaryNot is the level at which a leading NOT claims the rest of
	// the range: NOT A = B is NOT (A = B), NOT A AND B is (NOT A) AND B.
	PrecUnaryNot = PrecAnd
	// PrecUnaryMinus is the level at which a leading minus claims the rest
	// of the range: -A ^ 2 is -(A ^ 2), -A * B is (-A) * B.
	PrecUnaryMinus = PrecIntegerDivide
)
