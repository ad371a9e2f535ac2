// Package parser implements the Candi recursive-descent parser: a token
// cursor, scope/statement finders, the precedence-climbing expression
// builder, and the directive parsers that recognise top-level and
// block-level statements (§4 of the front-end design).
package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// opInfo describes an operator's importance ("precedence") and
// associativity (§4.3). Higher importance binds tighter.
type opInfo struct {
	importance int
	rightAssoc bool
	kind       ast.Kind
}

// binaryOps is the importance/associativity table for binary operators,
// lowest importance (loosest binding) first, as enumerated in §4.3's table.
// `.` and `()` (the "member / call (highest)" row) are deliberately absent:
// they are resolved structurally inside parseOperand/parseSuffixChain before
// climbBinary ever sees a leading token, not by comparing importances here.
var binaryOps = map[int]opInfo{
	token.SIMPLE_ASSIGNMENT: {1, true, ast.SimpleAssignment},
	token.LOGICAL_OR:        {2, false, ast.LogicalOr},
	token.LOGICAL_AND:       {3, false, ast.LogicalAnd},
	token.EQUALITY:          {4, false, ast.Equality},
	token.INEQUALITY:        {4, false, ast.Inequality},
	token.LESS:              {5, false, ast.Less},
	token.LESS_EQ:           {5, false, ast.LessEq},
	token.GREATER:           {5, false, ast.Greater},
	token.GREATER_EQ:        {5, false, ast.GreaterEq},
	token.ADDITION:          {6, false, ast.Addition},
	token.SUBTRACTION:       {6, false, ast.Subtraction},
	token.MULTIPLICATION:    {7, false, ast.Multiplication},
	token.DIVISION:          {7, false, ast.Division},
	token.MODULO:            {7, false, ast.Modulo},
}

// unaryOps is the importance/associativity table for prefix unary operators
// (§4.3: "prefix `!` `-`", right-associative, binding tighter than every
// binary operator but looser than member access/call).
var unaryOps = map[int]opInfo{
	token.NEGATION:    {8, true, ast.Negation},
	token.SUBTRACTION: {8, true, ast.Negation},
}

// isBinaryOperator reports whether kind is a recognised binary operator.
func isBinaryOperator(kind int) bool {
	_, ok := binaryOps[kind]
	return ok
}

// isUnaryOperator reports whether kind can head a unary expression. Only `!`
// and `-` qualify (§4.3); callers only consult this at a leading operand
// position, so binary `-` is never mistaken for it.
func isUnaryOperator(kind int) bool {
	_, ok := unaryOps[kind]
	return ok
}

func binaryImportance(kind int) int  { return binaryOps[kind].importance }
func binaryRightAssoc(kind int) bool { return binaryOps[kind].rightAssoc }

// unaryNode builds the AST node for a unary operator token using unaryOps'
// kind (ast.Negation for both `!` and `-`), rather than nodeKindForToken's
// binary-operator-shaped mapping — `-` alone would otherwise come back
// tagged ast.Subtraction, the same kind as binary subtraction, with only
// one child pushed.
func unaryNode(toks []token.Token, i int) *ast.Node {
	tok := toks[i]
	return ast.New(unaryOps[tok.Kind].kind, tok.Literal, tok.Span)
}

// -----------------------------------------------------------------------------

// at returns the token at absolute index i, or the EOF sentinel if i is at
// or past end. This lets callers peek past the edge of a sub-range the way
// the spec's Cursor does without panicking on an out-of-range index.
func at(toks []token.Token, i, end int) token.Token {
	if i >= end || i >= len(toks) {
		return token.Token{Kind: token.EOF}
	}
	return toks[i]
}

// toNode builds a single-token AST node from the token at index i, tagging
// it with the AST kind that corresponds to its token kind.
func toNode(toks []token.Token, i int) *ast.Node {
	tok := toks[i]
	return ast.New(nodeKindForToken(tok.Kind), tok.Literal, tok.Span)
}

// nodeKindForToken maps a token kind to the AST node kind used when that
// token is materialised as a leaf or operator node.
func nodeKindForToken(kind int) ast.Kind {
	switch kind {
	case token.ADDITION:
		return ast.Addition
	case token.SUBTRACTION:
		return ast.Subtraction
	case token.MULTIPLICATION:
		return ast.Multiplication
	case token.DIVISION:
		return ast.Division
	case token.MODULO:
		return ast.Modulo
	case token.LOGICAL_AND:
		return ast.LogicalAnd
	case token.LOGICAL_OR:
		return ast.LogicalOr
	case token.EQUALITY:
		return ast.Equality
	case token.INEQUALITY:
		return ast.Inequality
	case token.LESS:
		return ast.Less
	case token.LESS_EQ:
		return ast.LessEq
	case token.GREATER:
		return ast.Greater
	case token.GREATER_EQ:
		return ast.GreaterEq
	case token.SIMPLE_ASSIGNMENT:
		return ast.SimpleAssignment
	case token.NEGATION:
		return ast.Negation
	case token.PERIOD:
		return ast.Period
	case token.ALNUMUS:
		return ast.Alnumus
	case token.NUMBER_LITERAL:
		return ast.NumberLiteral
	case token.REAL_LITERAL:
		return ast.RealLiteral
	case token.STRING_LITERAL:
		return ast.StringLiteral
	case token.OCTET_LITERAL:
		return ast.OctetLiteral
	case token.BIT_LITERAL:
		return ast.BitLiteral
	case token.UNSIGNED_LITERAL:
		return ast.UnsignedLiteral
	case token.NONE_LITERAL:
		return ast.NoneLiteral
	case token.AINT:
		return ast.AInt
	case token.AUINT:
		return ast.AUint
	case token.AREAL:
		return ast.AReal
	case token.AOCTET:
		return ast.AOctet
	case token.ABIT:
		return ast.ABit
	case token.APOINTER:
		return ast.APointer
	case token.AARRAY:
		return ast.AArray
	case token.ATYPE:
		return ast.AType
	case token.AVALUE:
		return ast.AValue
	case token.AIDENTITY:
		return ast.AIdentity
	default:
		return ast.Invalid
	}
}

// -----------------------------------------------------------------------------

func isOpenBracket(kind int) bool {
	return kind == token.OPEN_SCOPE || kind == token.OPEN_LIST || kind == token.OPEN_FRAME
}

func isCloseBracket(kind int) bool {
	return kind == token.CLOSE_SCOPE || kind == token.CLOSE_LIST || kind == token.CLOSE_FRAME
}

// bracketsMatch reports whether a close bracket kind matches the open
// bracket kind it is meant to close.
func bracketsMatch(open, close int) bool {
	switch open {
	case token.OPEN_SCOPE:
		return close == token.CLOSE_SCOPE
	case token.OPEN_LIST:
		return close == token.CLOSE_LIST
	case token.OPEN_FRAME:
		return close == token.CLOSE_FRAME
	default:
		return false
	}
}
