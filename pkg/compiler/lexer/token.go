package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindKeyword
	KindIdentifier
	KindNumber
	KindOperator
	KindDelimiter
	KindString
	KindChar
	KindUnknown
)

var kindNames = [...]string{
	KindEOF:        "EOF",
	KindKeyword:    "Keyword",
	KindIdentifier: "Identifier",
	KindNumber:     "Number",
	KindOperator:   "Operator",
	KindDelimiter:  "Delimiter",
	KindString:     "String",
	KindChar:       "Char",
	KindUnknown:    "Unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token represents a lexical unit pointing back to the source.
// Lexeme is a substring of the scanned input, never a copy.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
	Line   int
}

var keywords = map[string]struct{}{
	// types
	"int": {}, "float": {}, "double": {}, "char": {}, "long": {}, "short": {}, "bool": {}, "void": {},
	// control
	"if": {}, "else": {}, "for": {}, "while": {}, "do": {}, "return": {}, "switch": {}, "case": {}, "break": {}, "continue": {},
	// declarations
	"class": {}, "struct": {}, "public": {}, "private": {}, "protected": {},
	// preprocessor / namespaces
	"include": {}, "namespace": {}, "using": {},
}

// IsKeyword reports whether s is a reserved word. The match is byte-exact.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

var operators = map[string]struct{}{
	"<<=": {}, ">>=": {},
	"==": {}, "!=": {}, "<=": {}, ">=": {}, "++": {}, "--": {}, "+=": {}, "-=": {},
	"*=": {}, "/=": {}, "%=": {}, "<<": {}, ">>": {}, "&&": {}, "||": {},
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {}, "=": {}, "<": {}, ">": {},
	"!": {}, "&": {}, "|": {}, "^": {}, "~": {},
}

// maxOperatorLen is the length of the longest entry in the operator table.
const maxOperatorLen = 3

// IsOperator reports whether s is one of the recognized operators.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// IsDelimiter reports whether ch is one of ;,(){}[]
func IsDelimiter(ch byte) bool {
	switch ch {
	case ';', ',', '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}
