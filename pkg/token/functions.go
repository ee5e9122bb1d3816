package token

// FunctionInfo describes the argument shape of a built-in keyword function.
type FunctionInfo struct {
	// MinArgs and MaxArgs bound the parenthesized argument count.
	MinArgs int
	MaxArgs int

	// Parameterless marks functions that may be written without parentheses.
	Parameterless bool
}

// AcceptsArguments reports whether the function may take a parenthesized list.
func (f FunctionInfo) AcceptsArguments() bool {
	return f.MaxArgs > 0
}

// Functions lists every built-in function keyword.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Functions = map[Kind]FunctionInfo{
	ABS:        {MinArgs: 1, MaxArgs: 1},
	ASC:        {MinArgs: 1, MaxArgs: 1},
	ATN:        {MinArgs: 1, MaxArgs: 1},
	CDBL:       {MinArgs: 1, MaxArgs: 1},
	ChrStr:     {MinArgs: 1, MaxArgs: 1},
	CINT:       {MinArgs: 1, MaxArgs: 1},
	CLNG:       {MinArgs: 1, MaxArgs: 1},
	CommandStr: {Parameterless: true},
	COS:        {MinArgs: 1, MaxArgs: 1},
	CSNG:       {MinArgs: 1, MaxArgs: 1},
	CSRLIN:     {Parameterless: true},
	CVD:        {MinArgs: 1, MaxArgs: 1},
	CVDMBF:     {MinArgs: 1, MaxArgs: 1},
	CVI:        {MinArgs: 1, MaxArgs: 1},
	CVL:        {MinArgs: 1, MaxArgs: 1},
	CVS:        {MinArgs: 1, MaxArgs: 1},
	CVSMBF:     {MinArgs: 1, MaxArgs: 1},
	DateStr:    {Parameterless: true},
	EnvironStr: {MinArgs: 1, MaxArgs: 1},
	EOFFunc:    {MinArgs: 1, MaxArgs: 1},
	ERDEV:      {Parameterless: true},
	ErdevStr:   {Parameterless: true},
	ERL:        {Parameterless: true},
	ERR:        {Parameterless: true},
	EXP:        {MinArgs: 1, MaxArgs: 1},
	FILEATTR:   {MinArgs: 2, MaxArgs: 2},
	FIX:        {MinArgs: 1, MaxArgs: 1},
	FRE:        {MinArgs: 1, MaxArgs: 1},
	FREEFILE:   {Parameterless: true},
	HexStr:     {MinArgs: 1, MaxArgs: 1},
	InkeyStr:   {Parameterless: true},
	INP:        {MinArgs: 1, MaxArgs: 1},
	InputStr:   {MinArgs: 1, MaxArgs: 2},
	INSTR:      {MinArgs: 2, MaxArgs: 3},
	INT:        {MinArgs: 1, MaxArgs: 1},
	IoctlStr:   {MinArgs: 1, MaxArgs: 1},
	LBOUND:     {MinArgs: 1, MaxArgs: 2},
	LcaseStr:   {MinArgs: 1, MaxArgs: 1},
	LeftStr:    {MinArgs: 2, MaxArgs: 2},
	LEN:        {MinArgs: 1, MaxArgs: 1},
	LOC:        {MinArgs: 1, MaxArgs: 1},
	LOF:        {MinArgs: 1, MaxArgs: 1},
	LOG:        {MinArgs: 1, MaxArgs: 1},
	LPOS:       {MinArgs: 1, MaxArgs: 1},
	LtrimStr:   {MinArgs: 1, MaxArgs: 1},
	MidStr:     {MinArgs: 2, MaxArgs: 3},
	MkdStr:     {MinArgs: 1, MaxArgs: 1},
	MkdmbfStr:  {MinArgs: 1, MaxArgs: 1},
	MkiStr:     {MinArgs: 1, MaxArgs: 1},
	MklStr:     {MinArgs: 1, MaxArgs: 1},
	MksStr:     {MinArgs: 1, MaxArgs: 1},
	MksmbfStr:  {MinArgs: 1, MaxArgs: 1},
	OctStr:     {MinArgs: 1, MaxArgs: 1},
	PEEK:       {MinArgs: 1, MaxArgs: 1},
	PEN:        {MinArgs: 1, MaxArgs: 1},
	PLAY:       {MinArgs: 1, MaxArgs: 1},
	PMAP:       {MinArgs: 2, MaxArgs: 2},
	POINT:      {MinArgs: 1, MaxArgs: 2},
	POS:        {MinArgs: 1, MaxArgs: 1},
	RightStr:   {MinArgs: 2, MaxArgs: 2},
	RND:        {MinArgs: 1, MaxArgs: 1, Parameterless: true},
	RtrimStr:   {MinArgs: 1, MaxArgs: 1},
	SADD:       {MinArgs: 1, MaxArgs: 1},
	SCREEN:     {MinArgs: 2, MaxArgs: 3},
	SEEK:       {MinArgs: 1, MaxArgs: 1},
	SETMEM:     {MinArgs: 1, MaxArgs: 1},
	SGN:        {MinArgs: 1, MaxArgs: 1},
	SIN:        {MinArgs: 1, MaxArgs: 1},
	SpaceStr:   {MinArgs: 1, MaxArgs: 1},
	SPC:        {MinArgs: 1, MaxArgs: 1},
	SQR:        {MinArgs: 1, MaxArgs: 1},
	STICK:      {MinArgs: 1, MaxArgs: 1},
	StrStr:     {MinArgs: 1, MaxArgs: 1},
	STRIG:      {MinArgs: 1, MaxArgs: 1},
	StringStr:  {MinArgs: 2, MaxArgs: 2},
	TAB:        {MinArgs: 1, MaxArgs: 1},
	TAN:        {MinArgs: 1, MaxArgs: 1},
	TimeStr:    {Parameterless: true},
	TIMER:      {Parameterless: true},
	UBOUND:     {MinArgs: 1, MaxArgs: 2},
	UcaseStr:   {MinArgs: 1, MaxArgs: 1},
	VAL:        {MinArgs: 1, MaxArgs: 1},
	VARPTR:     {MinArgs: 1, MaxArgs: 1},
	VarptrStr:  {MinArgs: 1, MaxArgs: 1},
	VARSEG:     {MinArgs: 1, MaxArgs: 1},
}

// LookupFunction returns the argument shape of a keyword function.
func LookupFunction(k Kind) (FunctionInfo, bool) {
	info, ok := Functions[k]
	return info, ok
}
