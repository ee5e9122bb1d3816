package token

import "strings"

// keywordText holds the canonical spelling of each keyword, indexed from
// keywordStart.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywordText = [...]string{
	ABS - keywordStart: "ABS",
	ABSOLUTE - keywordStart: "ABSOLUTE",
	ACCESS - keywordStart: "ACCESS",
	ALIAS - keywordStart: "ALIAS",
	AND - keywordStart: "AND",
	ANY - keywordStart: "ANY",
	APPEND - keywordStart: "APPEND",
	AS - keywordStart: "AS",
	ASC - keywordStart: "ASC",
	ATN - keywordStart: "ATN",
	BASE - keywordStart: "BASE",
	BEEP - keywordStart: "BEEP",
	BINARY - keywordStart: "BINARY",
	BLOAD - keywordStart: "BLOAD",
	BSAVE - keywordStart: "BSAVE",
	BYVAL - keywordStart: "BYVAL",
	CALL - keywordStart: "CALL",
	CASE - keywordStart: "CASE",
	CDBL - keywordStart: "CDBL",
	CDECL - keywordStart: "CDECL",
	CHAIN - keywordStart: "CHAIN",
	CHDIR - keywordStart: "CHDIR",
	ChrStr - keywordStart: "CHR$",
	CINT - keywordStart: "CINT",
	CIRCLE - keywordStart: "CIRCLE",
	CLEAR - keywordStart: "CLEAR",
	CLNG - keywordStart: "CLNG",
	CLOSE - keywordStart: "CLOSE",
	CLS - keywordStart: "CLS",
	COLOR - keywordStart: "COLOR",
	COM - keywordStart: "COM",
	CommandStr - keywordStart: "COMMAND$",
	COMMON - keywordStart: "COMMON",
	CONST - keywordStart: "CONST",
	COS - keywordStart: "COS",
	CSNG - keywordStart: "CSNG",
	CSRLIN - keywordStart: "CSRLIN",
	CVD - keywordStart: "CVD",
	CVDMBF - keywordStart: "CVDMBF",
	CVI - keywordStart: "CVI",
	CVL - keywordStart: "CVL",
	CVS - keywordStart: "CVS",
	CVSMBF - keywordStart: "CVSMBF",
	DATA - keywordStart: "DATA",
	DateStr - keywordStart: "DATE$",
	DECLARE - keywordStart: "DECLARE",
	DEF - keywordStart: "DEF",
	DEFDBL - keywordStart: "DEFDBL",
	DEFINT - keywordStart: "DEFINT",
	DEFLNG - keywordStart: "DEFLNG",
	DEFSNG - keywordStart: "DEFSNG",
	DEFSTR - keywordStart: "DEFSTR",
	DIM - keywordStart: "DIM",
	DO - keywordStart: "DO",
	DOUBLE - keywordStart: "DOUBLE",
	DRAW - keywordStart: "DRAW",
	DYNAMIC - keywordStart: "DYNAMIC",
	ELSE - keywordStart: "ELSE",
	ELSEIF - keywordStart: "ELSEIF",
	END - keywordStart: "END",
	ENVIRON - keywordStart: "ENVIRON",
	EnvironStr - keywordStart: "ENVIRON$",
	EOFFunc - keywordStart: "EOF",
	EQV - keywordStart: "EQV",
	ERASE - keywordStart: "ERASE",
	ERDEV - keywordStart: "ERDEV",
	ErdevStr - keywordStart: "ERDEV$",
	ERL - keywordStart: "ERL",
	ERR - keywordStart: "ERR",
	ERROR - keywordStart: "ERROR",
	EXIT - keywordStart: "EXIT",
	EXP - keywordStart: "EXP",
	FIELD - keywordStart: "FIELD",
	FILEATTR - keywordStart: "FILEATTR",
	FILES - keywordStart: "FILES",
	FIX - keywordStart: "FIX",
	FOR - keywordStart: "FOR",
	FRE - keywordStart: "FRE",
	FREEFILE - keywordStart: "FREEFILE",
	FUNCTION - keywordStart: "FUNCTION",
	GET - keywordStart: "GET",
	GOSUB - keywordStart: "GOSUB",
	GOTO - keywordStart: "GOTO",
	HexStr - keywordStart: "HEX$",
	IF - keywordStart: "IF",
	IMP - keywordStart: "IMP",
	InkeyStr - keywordStart: "INKEY$",
	INP - keywordStart: "INP",
	INPUT - keywordStart: "INPUT",
	InputStr - keywordStart: "INPUT$",
	INSTR - keywordStart: "INSTR",
	INT - keywordStart: "INT",
	INTEGER - keywordStart: "INTEGER",
	IOCTL - keywordStart: "IOCTL",
	IoctlStr - keywordStart: "IOCTL$",
	IS - keywordStart: "IS",
	KEY - keywordStart: "KEY",
	KILL - keywordStart: "KILL",
	LBOUND - keywordStart: "LBOUND",
	LcaseStr - keywordStart: "LCASE$",
	LeftStr - keywordStart: "LEFT$",
	LEN - keywordStart: "LEN",
	LET - keywordStart: "LET",
	LINE - keywordStart: "LINE",
	LIST - keywordStart: "LIST",
	LOC - keywordStart: "LOC",
	LOCATE - keywordStart: "LOCATE",
	LOCK - keywordStart: "LOCK",
	LOF - keywordStart: "LOF",
	LOG - keywordStart: "LOG",
	LONG - keywordStart: "LONG",
	LOOP - keywordStart: "LOOP",
	LPOS - keywordStart: "LPOS",
	LPRINT - keywordStart: "LPRINT",
	LSET - keywordStart: "LSET",
	LtrimStr - keywordStart: "LTRIM$",
	MidStr - keywordStart: "MID$",
	MkdStr - keywordStart: "MKD$",
	MKDIR - keywordStart: "MKDIR",
	MkdmbfStr - keywordStart: "MKDMBF$",
	MkiStr - keywordStart: "MKI$",
	MklStr - keywordStart: "MKL$",
	MksStr - keywordStart: "MKS$",
	MksmbfStr - keywordStart: "MKSMBF$",
	MOD - keywordStart: "MOD",
	NAME - keywordStart: "NAME",
	NEXT - keywordStart: "NEXT",
	NOT - keywordStart: "NOT",
	OctStr - keywordStart: "OCT$",
	OFF - keywordStart: "OFF",
	ON - keywordStart: "ON",
	OPEN - keywordStart: "OPEN",
	OPTION - keywordStart: "OPTION",
	OR - keywordStart: "OR",
	OUT - keywordStart: "OUT",
	OUTPUT - keywordStart: "OUTPUT",
	PAINT - keywordStart: "PAINT",
	PALETTE - keywordStart: "PALETTE",
	PCOPY - keywordStart: "PCOPY",
	PEEK - keywordStart: "PEEK",
	PEN - keywordStart: "PEN",
	PLAY - keywordStart: "PLAY",
	PMAP - keywordStart: "PMAP",
	POINT - keywordStart: "POINT",
	POKE - keywordStart: "POKE",
	POS - keywordStart: "POS",
	PRESET - keywordStart: "PRESET",
	PRINT - keywordStart: "PRINT",
	PSET - keywordStart: "PSET",
	PUT - keywordStart: "PUT",
	RANDOM - keywordStart: "RANDOM",
	RANDOMIZE - keywordStart: "RANDOMIZE",
	READ - keywordStart: "READ",
	REDIM - keywordStart: "REDIM",
	REM - keywordStart: "REM",
	RESET - keywordStart: "RESET",
	RESTORE - keywordStart: "RESTORE",
	RESUME - keywordStart: "RESUME",
	RETURN - keywordStart: "RETURN",
	RightStr - keywordStart: "RIGHT$",
	RMDIR - keywordStart: "RMDIR",
	RND - keywordStart: "RND",
	RSET - keywordStart: "RSET",
	RtrimStr - keywordStart: "RTRIM$",
	RUN - keywordStart: "RUN",
	SADD - keywordStart: "SADD",
	SCREEN - keywordStart: "SCREEN",
	SEEK - keywordStart: "SEEK",
	SEG - keywordStart: "SEG",
	SELECT - keywordStart: "SELECT",
	SETMEM - keywordStart: "SETMEM",
	SGN - keywordStart: "SGN",
	SHARED - keywordStart: "SHARED",
	SHELL - keywordStart: "SHELL",
	SIGNAL - keywordStart: "SIGNAL",
	SIN - keywordStart: "SIN",
	SINGLE - keywordStart: "SINGLE",
	SLEEP - keywordStart: "SLEEP",
	SOUND - keywordStart: "SOUND",
	SpaceStr - keywordStart: "SPACE$",
	SPC - keywordStart: "SPC",
	SQR - keywordStart: "SQR",
	STATIC - keywordStart: "STATIC",
	STEP - keywordStart: "STEP",
	STICK - keywordStart: "STICK",
	STOP - keywordStart: "STOP",
	StrStr - keywordStart: "STR$",
	STRIG - keywordStart: "STRIG",
	STRING - keywordStart: "STRING",
	StringStr - keywordStart: "STRING$",
	SUB - keywordStart: "SUB",
	SWAP - keywordStart: "SWAP",
	SYSTEM - keywordStart: "SYSTEM",
	TAB - keywordStart: "TAB",
	TAN - keywordStart: "TAN",
	THEN - keywordStart: "THEN",
	TimeStr - keywordStart: "TIME$",
	TIMER - keywordStart: "TIMER",
	TO - keywordStart: "TO",
	TROFF - keywordStart: "TROFF",
	TRON - keywordStart: "TRON",
	TYPE - keywordStart: "TYPE",
	UBOUND - keywordStart: "UBOUND",
	UcaseStr - keywordStart: "UCASE$",
	UEVENT - keywordStart: "UEVENT",
	UNLOCK - keywordStart: "UNLOCK",
	UNTIL - keywordStart: "UNTIL",
	USING - keywordStart: "USING",
	VAL - keywordStart: "VAL",
	VARPTR - keywordStart: "VARPTR",
	VarptrStr - keywordStart: "VARPTR$",
	VARSEG - keywordStart: "VARSEG",
	VIEW - keywordStart: "VIEW",
	WAIT - keywordStart: "WAIT",
	WEND - keywordStart: "WEND",
	WHILE - keywordStart: "WHILE",
	WIDTH - keywordStart: "WIDTH",
	WINDOW - keywordStart: "WINDOW",
	WRITE - keywordStart: "WRITE",
	XOR - keywordStart: "XOR",
}

// keywords maps upper-cased source spellings to keyword kinds.
//
//nolint:gochecknoglobals // Built once from keywordText.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordText))
	for i, text := range keywordText {
		m[text] = keywordStart + Kind(i)
	}
	return m
}()

// LookupKeyword returns the keyword kind spelled by word, compared
// case-insensitively. The boolean is false when word is not reserved.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(word)]
	return k, ok
}

// TypeSigils are the characters that may end an identifier to fix its type.
const TypeSigils = "%&!#$@"

// HasTypeSigil reports whether name ends in one of TypeSigils.
func HasTypeSigil(name string) bool {
	return name != "" && strings.IndexByte(TypeSigils, name[len(name)-1]) >= 0
}
