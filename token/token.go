// Package token defines the lexical token vocabulary shared by the lexer,
// preprocessor, and parser.
package token

import "github.com/ayzg/candi/report"

// Token is a single, immutable lexical unit.
type Token struct {
	// Kind is one of the enumerated token kinds below.
	Kind int

	// Literal is the exact source slice the token was lexed from.
	Literal string

	// Span is the source text span the token occupies.
	Span *report.TextSpan
}

// String returns the token's exact source text (its Literal), so a token
// prints the way a diagnostic should reference it.
func (t Token) String() string {
	return t.Literal
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind int) bool {
	return t.Kind == kind
}

// Enumeration of token kinds.
const (
	// Punctuation.
	OPEN_SCOPE = iota // (
	CLOSE_SCOPE       // )
	OPEN_LIST         // {
	CLOSE_LIST        // }
	OPEN_FRAME        // [
	CLOSE_FRAME       // ]
	COMMA             // ,
	EOS               // ;
	ELLIPSIS          // ...
	PERIOD            // .

	// Operators.
	SIMPLE_ASSIGNMENT // =
	ADDITION          // +
	SUBTRACTION       // -
	MULTIPLICATION    // *
	DIVISION          // /
	MODULO            // %
	LOGICAL_AND       // &&
	LOGICAL_OR        // ||
	NEGATION          // !
	EQUALITY          // ==
	INEQUALITY        // !=
	LESS              // <
	LESS_EQ           // <=
	GREATER           // >
	GREATER_EQ        // >=

	// Keywords (bare and directive spellings collapse to the same kind).
	INCLUDE
	MACRO
	ENTER
	START
	TYPE
	VAR
	CLASS
	OBJ
	PRIVATE
	PUBLIC
	FUNC
	CONST
	STATIC
	IF
	ELSE
	ELIF
	WHILE
	FOR
	ON
	BREAK
	CONTINUE
	RETURN
	PRINT
	NONE_LITERAL

	// Intrinsic-type (candi special object) kinds.
	AINT
	AUINT
	AREAL
	AOCTET
	ABIT
	ASTR
	ATYPE
	AVALUE
	AIDENTITY
	APOINTER
	AARRAY

	// Literals.
	NUMBER_LITERAL
	REAL_LITERAL
	STRING_LITERAL
	OCTET_LITERAL
	BIT_LITERAL
	UNSIGNED_LITERAL
	ALNUMUS

	// Sentinels.
	EOF
	INVALID
)

// names maps token kinds back to a human-readable name, used in diagnostics
// and in `candic tokens` dumps.
var names = map[int]string{
	OPEN_SCOPE: "open_scope", CLOSE_SCOPE: "close_scope",
	OPEN_LIST: "open_list", CLOSE_LIST: "close_list",
	OPEN_FRAME: "open_frame", CLOSE_FRAME: "close_frame",
	COMMA: "comma", EOS: "eos", ELLIPSIS: "ellipsis", PERIOD: "period",

	SIMPLE_ASSIGNMENT: "simple_assignment", ADDITION: "addition",
	SUBTRACTION: "subtraction", MULTIPLICATION: "multiplication",
	DIVISION: "division", MODULO: "modulo", LOGICAL_AND: "logical_and",
	LOGICAL_OR: "logical_or", NEGATION: "negation", EQUALITY: "equality",
	INEQUALITY: "inequality", LESS: "less", LESS_EQ: "less_eq",
	GREATER: "greater", GREATER_EQ: "greater_eq",

	INCLUDE: "include", MACRO: "macro", ENTER: "enter", START: "start",
	TYPE: "type", VAR: "var", CLASS: "class", OBJ: "obj", PRIVATE: "private",
	PUBLIC: "public", FUNC: "func", CONST: "const", STATIC: "static",
	IF: "if", ELSE: "else", ELIF: "elif", WHILE: "while", FOR: "for",
	ON: "on", BREAK: "break", CONTINUE: "continue", RETURN: "return",
	PRINT: "print", NONE_LITERAL: "none_literal",

	AINT: "aint", AUINT: "auint", AREAL: "areal", AOCTET: "aoctet",
	ABIT: "abit", ASTR: "astr", ATYPE: "atype", AVALUE: "avalue",
	AIDENTITY: "aidentity", APOINTER: "apointer", AARRAY: "aarray",

	NUMBER_LITERAL: "number_literal", REAL_LITERAL: "real_literal",
	STRING_LITERAL: "string_literal", OCTET_LITERAL: "octet_literal",
	BIT_LITERAL: "bit_literal", UNSIGNED_LITERAL: "unsigned_literal",
	ALNUMUS: "alnumus",

	EOF: "eof", INVALID: "invalid",
}

// KindName returns the human-readable name of a token kind.
func KindName(kind int) string {
	if name, ok := names[kind]; ok {
		return name
	}
	return "unknown"
}

// bareKeywords maps the bare spelling of every directive-capable keyword to
// its token kind.
var bareKeywords = map[string]int{
	"include": INCLUDE, "macro": MACRO, "enter": ENTER, "start": START,
	"type": TYPE, "var": VAR, "class": CLASS, "obj": OBJ,
	"private": PRIVATE, "public": PUBLIC, "func": FUNC, "const": CONST,
	"static": STATIC, "if": IF, "else": ELSE, "elif": ELIF, "while": WHILE,
	"for": FOR, "on": ON, "break": BREAK, "continue": CONTINUE,
	"return": RETURN, "print": PRINT, "none": NONE_LITERAL,
	"int": AINT, "uint": AUINT, "real": AREAL, "byte": AOCTET,
	"bit": ABIT, "str": ASTR, "value": AVALUE, "identity": AIDENTITY,
	"pointer": APOINTER, "array": AARRAY,
}

// LookupBareKeyword resolves a bare-spelled word to its keyword kind.  ok is
// false if word is not a reserved keyword (it should be lexed as alnumus).
func LookupBareKeyword(word string) (int, bool) {
	kind, ok := bareKeywords[word]
	return kind, ok
}

// LookupDirectiveKeyword resolves the word following a `#` to its keyword
// kind. It shares the bare-keyword table since both spellings name the same
// token kinds; only the lexer's mixing check (§4.1) distinguishes them.
func LookupDirectiveKeyword(word string) (int, bool) {
	if kind, ok := bareKeywords[word]; ok {
		return kind, true
	}
	return 0, false
}

// LookupIntrinsicWord resolves the word following an `&` to its intrinsic
// token kind.
func LookupIntrinsicWord(word string) (int, bool) {
	intrinsics := map[string]int{
		"int": AINT, "uint": AUINT, "real": AREAL, "octet": AOCTET,
		"bit": ABIT, "str": ASTR, "type": ATYPE, "value": AVALUE,
		"identity": AIDENTITY, "pointer": APOINTER, "array": AARRAY,
	}
	kind, ok := intrinsics[word]
	return kind, ok
}
